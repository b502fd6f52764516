package v1

import (
	"net/http"
	"strconv"

	"career-platform-backend/internal/delivery/http/response"
	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - the stored job board is browsable without an account
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.GET("/search", handler.Search)
	}
}

type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required"`
	Company        string   `json:"company" binding:"required"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	SalaryRange    string   `json:"salary_range"`
	JobType        string   `json:"job_type"`
	Source         string   `json:"source"`
	ApplyURL       string   `json:"apply_url"`
}

// List godoc
// @Summary      List stored jobs
// @Description  Get a paginated list of jobs from the local job board
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get detailed info of a stored job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Create godoc
// @Summary      Add a job posting
// @Description  Add a job to the local board, making it available to the recommendation fallback pool
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		SalaryRange:    req.SalaryRange,
		JobType:        req.JobType,
		Source:         req.Source,
		ApplyURL:       req.ApplyURL,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Search godoc
// @Summary      Search live jobs
// @Description  Search the configured job boards for live postings matching a query
// @Tags         jobs
// @Produce      json
// @Param        q         query     string  true   "Search query"
// @Param        location  query     string  false  "Location filter"
// @Param        limit     query     int     false  "Maximum results"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      401       {object}  response.Response
// @Router       /jobs/search [get]
// @Security     BearerAuth
func (h *JobHandler) Search(c *gin.Context) {
	query := c.Query("q")
	location := c.Query("location")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	postings, err := h.jobUC.SearchLiveJobs(c.Request.Context(), query, location, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Live job results", gin.H{
		"jobs":  postings,
		"count": len(postings),
	})
}
