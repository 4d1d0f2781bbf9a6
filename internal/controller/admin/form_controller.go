package admin

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/dto"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// FormController serves the authoring side: creating forms, listing them,
// inspecting a form with its answer keys, browsing submissions and
// uploading images.
type FormController struct {
	formService       service.FormService
	submissionService service.SubmissionService
	uploadService     service.UploadService
}

func NewFormController(
	formService service.FormService,
	submissionService service.SubmissionService,
	uploadService service.UploadService,
) *FormController {
	return &FormController{
		formService:       formService,
		submissionService: submissionService,
		uploadService:     uploadService,
	}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// CreateForm handles POST /api/create-form.
func (c *FormController) CreateForm(ctx *gin.Context) {
	var req dto.FormCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateForm: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	form, err := c.formService.CreateForm(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidForm) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("CreateForm: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateFormResponse{Form: *form})
}

// ListForms handles GET /api/forms, newest first.
func (c *FormController) ListForms(ctx *gin.Context) {
	forms, err := c.formService.ListForms()
	if err != nil {
		log.Error().Err(err).Msg("ListForms: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// GetForm handles GET /api/form/:id, the full admin view.
func (c *FormController) GetForm(ctx *gin.Context) {
	form, err := c.formService.GetForm(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Form not found"})
			return
		}
		log.Error().Err(err).Str("formID", ctx.Param("id")).Msg("GetForm: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// ListSubmissions handles GET /api/submissions, newest first with form
// titles attached.
func (c *FormController) ListSubmissions(ctx *gin.Context) {
	submissions, err := c.submissionService.ListSubmissions()
	if err != nil {
		log.Error().Err(err).Msg("ListSubmissions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// UploadImage handles POST /api/upload-image (multipart field "file").
func (c *FormController) UploadImage(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file uploaded"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unsupported image format"})
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("UploadImage: failed to open multipart file")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
		return
	}
	defer file.Close()

	url, err := c.uploadService.UploadImage(ctx.Request.Context(), file, header.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("UploadImage: upload service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}
