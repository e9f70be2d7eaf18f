package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerforge/careerforge-backend/internal/dtos"
	"github.com/careerforge/careerforge-backend/internal/letters"
)

// LetterHandler exposes the generation pipeline over HTTP.
// Dependency injection: the service comes in through the constructor.
type LetterHandler struct {
	LetterService *letters.LetterService
}

func NewLetterHandler(s *letters.LetterService) *LetterHandler {
	return &LetterHandler{LetterService: s}
}

// GenerateCoverLetter is the POST /generate-cover-letter endpoint.
func (h *LetterHandler) GenerateCoverLetter(c *gin.Context) {
	var req dtos.CoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
			"code":    letters.CodeValidationError,
		})
		return
	}

	result, err := h.LetterService.Generate(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.CoverLetterResponse{
		Letter:   result.Letter,
		Provider: result.Provider,
		Cached:   result.Cached,
	})
}

// writeError maps pipeline error codes onto HTTP statuses. The pipeline never
// sees HTTP; this is the only place the mapping lives.
func writeError(c *gin.Context, err error) {
	var pErr *letters.PipelineError
	if !errors.As(err, &pErr) {
		log.Printf("[%s] ❌ unexpected error: %v", RequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
			"code":  letters.CodeInternalError,
		})
		return
	}

	switch pErr.Code {
	case letters.CodeValidationError:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   pErr.Message,
			"details": pErr.Message,
			"code":    pErr.Code,
		})
	case letters.CodeLetterValidationError:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": pErr.Message,
			"code":  pErr.Code,
			"meta":  pErr.Meta,
		})
	case letters.CodeGenerationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": pErr.Message,
			"code":  pErr.Code,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": pErr.Message,
			"code":  letters.CodeInternalError,
		})
	}
}
