package v1

import (
	"net/http"

	"career-platform-backend/internal/delivery/http/response"
	"career-platform-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r *gin.Engine, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	r.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Reports the status of the API and its backing services
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())

	if status["status"] == "ok" {
		response.Success(c, http.StatusOK, "System operational", status)
		return
	}

	response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
}
