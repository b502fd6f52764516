package v1

import (
	"io"
	"net/http"

	"career-platform-backend/internal/delivery/http/response"
	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, uploadLimiter gin.HandlerFunc, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := protected.Group("/resumes")
	{
		resumes.POST("", uploadLimiter, handler.Upload)
		resumes.GET("/latest", handler.Latest)
		resumes.GET("/details", handler.Details)
		resumes.POST("/enhance", handler.Enhance)
	}
}

type EnhanceRequest struct {
	Text string `json:"text" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=summary experience skills"`
}

// Upload godoc
// @Summary      Upload a resume
// @Description  Upload a PDF or DOCX resume; the document is parsed, analyzed and scored in one pass
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume document (PDF or DOCX)"
// @Success      201   {object}  response.Response{data=domain.UploadResult}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	file, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}

	result, err := h.resumeUC.Upload(c.Request.Context(), userID, file.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume uploaded and analyzed", result)
}

// Latest godoc
// @Summary      Latest resume
// @Description  Get the most recently uploaded resume
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/latest [get]
// @Security     BearerAuth
func (h *ResumeHandler) Latest(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	resume, err := h.resumeUC.GetLatest(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Latest resume", resume)
}

// Details godoc
// @Summary      Structured resume details
// @Description  Extract contact, summary, experience, education and projects from the latest resume
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.StructuredDetails}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/details [get]
// @Security     BearerAuth
func (h *ResumeHandler) Details(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	details, err := h.resumeUC.GetStructuredDetails(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume details", details)
}

// Enhance godoc
// @Summary      Enhance resume text
// @Description  Rewrite a summary or experience fragment; falls back to a deterministic local rewrite when the AI service is unavailable
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        request  body      EnhanceRequest  true  "Text and enhancement kind"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /resumes/enhance [post]
// @Security     BearerAuth
func (h *ResumeHandler) Enhance(c *gin.Context) {
	var req EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	enhanced, err := h.resumeUC.EnhanceText(c.Request.Context(), req.Text, req.Kind)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Text enhanced", gin.H{
		"kind":          req.Kind,
		"enhanced_text": enhanced,
	})
}
