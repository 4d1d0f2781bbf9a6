package user

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/dto"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TestController serves the respondent side: fetching the sanitized form
// and submitting answers for scoring.
type TestController struct {
	formService       service.FormService
	submissionService service.SubmissionService
}

func NewTestController(formService service.FormService, submissionService service.SubmissionService) *TestController {
	return &TestController{formService: formService, submissionService: submissionService}
}

// GetTestForm handles GET /api/test/:id. The response never contains
// belongsTo, correctOptionId or raw blank words.
func (c *TestController) GetTestForm(ctx *gin.Context) {
	form, err := c.formService.GetFormForTest(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Form not found"})
			return
		}
		log.Error().Err(err).Str("formID", ctx.Param("id")).Msg("GetTestForm: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// SubmitTest handles POST /api/submit-test/:id. The username check comes
// before the form lookup, and the form lookup before any scoring.
func (c *TestController) SubmitTest(ctx *gin.Context) {
	var req dto.SubmitTestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Username is required"})
		return
	}

	result, err := c.submissionService.SubmitTest(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Form not found"})
			return
		}
		log.Error().Err(err).Str("formID", ctx.Param("id")).Msg("SubmitTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error", Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
