package v1

import (
	"net/http"
	"strconv"

	"career-platform-backend/internal/delivery/http/response"
	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteUC domain.FavoriteUsecase
}

func NewFavoriteHandler(protected *gin.RouterGroup, favoriteUC domain.FavoriteUsecase) {
	handler := &FavoriteHandler{favoriteUC: favoriteUC}

	favorites := protected.Group("/favorites")
	{
		favorites.GET("", handler.List)
		favorites.POST("/:jobID/toggle", handler.Toggle)
	}
}

// List godoc
// @Summary      Saved jobs
// @Description  Lists the jobs the user has saved, newest first
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /favorites [get]
// @Security     BearerAuth
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	jobs, err := h.favoriteUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved jobs", gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// Toggle godoc
// @Summary      Save or unsave a job
// @Description  Saves the job if it is not saved yet, removes it otherwise
// @Tags         favorites
// @Produce      json
// @Param        jobID  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /favorites/{jobID}/toggle [post]
// @Security     BearerAuth
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	jobID, err := strconv.ParseInt(c.Param("jobID"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	saved, err := h.favoriteUC.Toggle(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Job removed from favorites"
	if saved {
		message = "Job saved"
	}

	response.Success(c, http.StatusOK, message, gin.H{
		"saved":  saved,
		"job_id": jobID,
	})
}
