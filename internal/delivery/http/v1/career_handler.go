package v1

import (
	"net/http"

	"career-platform-backend/internal/delivery/http/response"
	"career-platform-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CareerHandler struct {
	careerUC domain.CareerUsecase
}

func NewCareerHandler(protected *gin.RouterGroup, careerUC domain.CareerUsecase) {
	handler := &CareerHandler{careerUC: careerUC}

	protected.GET("/career-paths", handler.List)
}

// List godoc
// @Summary      Career path matches
// @Description  Scores the user's analyzed skills against known role profiles
// @Tags         career
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /career-paths [get]
// @Security     BearerAuth
func (h *CareerHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	paths, err := h.careerUC.GetRolePaths(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Career path matches", gin.H{
		"paths": paths,
	})
}
