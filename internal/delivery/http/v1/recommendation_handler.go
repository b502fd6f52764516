package v1

import (
	"net/http"
	"strconv"

	"career-platform-backend/internal/delivery/http/response"
	"career-platform-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RecommendationHandler struct {
	recommendationUC domain.RecommendationUsecase
}

func NewRecommendationHandler(protected *gin.RouterGroup, recommendationUC domain.RecommendationUsecase) {
	handler := &RecommendationHandler{recommendationUC: recommendationUC}

	recommendations := protected.Group("/recommendations")
	{
		recommendations.GET("", handler.List)
		recommendations.GET("/export", handler.Export)
	}
}

// List godoc
// @Summary      Job recommendations
// @Description  Rank live or stored postings against the latest resume analysis
// @Tags         recommendations
// @Produce      json
// @Param        limit  query     int  false  "Maximum recommendations (default 10)"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recommendations [get]
// @Security     BearerAuth
func (h *RecommendationHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	matches, err := h.recommendationUC.GetRecommendations(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job recommendations", gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// Export godoc
// @Summary      Export recommendations to Excel
// @Description  Downloads the current recommendation ranking as an Excel workbook
// @Tags         recommendations
// @Produce      application/octet-stream
// @Param        limit  query     int  false  "Maximum recommendations (default 10)"
// @Success      200    {file}    binary
// @Failure      401    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recommendations/export [get]
// @Security     BearerAuth
func (h *RecommendationHandler) Export(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	data, filename, err := h.recommendationUC.ExportRecommendations(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, data)
}
