package v1

import (
	"net/http"

	"career-platform-backend/internal/delivery/http/response"
	"career-platform-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisUC domain.AnalysisUsecase
}

func NewAnalysisHandler(protected *gin.RouterGroup, analysisUC domain.AnalysisUsecase) {
	handler := &AnalysisHandler{analysisUC: analysisUC}

	analysis := protected.Group("/analysis")
	{
		analysis.GET("/latest", handler.Latest)
	}
}

// Latest godoc
// @Summary      Latest resume analysis
// @Description  Get the analysis produced for the most recently uploaded resume
// @Tags         analysis
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ResumeAnalysis}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /analysis/latest [get]
// @Security     BearerAuth
func (h *AnalysisHandler) Latest(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	analysis, err := h.analysisUC.GetLatest(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Latest analysis", analysis)
}
