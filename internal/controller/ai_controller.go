package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/jsliwa/fishcards/internal/middleware"
	"github.com/jsliwa/fishcards/internal/service"
	"github.com/rs/zerolog/log"
)

type AiController struct {
	generator service.AiGeneratorService
}

func NewAiController(generator service.AiGeneratorService) *AiController {
	return &AiController{generator: generator}
}

// Generate godoc
// @Summary Generate flashcard suggestions from source text
// @Description Sends the source text to the configured AI provider and returns validated suggestions. Nothing is persisted.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.GenerateAiFlashcardsDTO true "Source text (1000 to 10000 characters)"
// @Success 200 {object} dto.AiFlashcardSuggestionsDTO
// @Failure 400 {object} dto.ErrorResponse "Source text missing or out of bounds"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "AI response could not be interpreted"
// @Failure 503 {object} dto.ErrorResponse "AI service unavailable"
// @Router /flashcards/generate-ai [post]
func (ctrl *AiController) Generate(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.GenerateAiFlashcardsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: []string{err.Error()}})
		return
	}

	suggestions, err := ctrl.generator.Generate(c.Request.Context(), req.SourceText)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSourceTextLength):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrAiServiceUnavailable):
			log.Warn().Err(err).Str("requestID", requestID).Msg("AI generation: provider unavailable")
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "The AI service is temporarily unavailable. Please try again later."})
		case errors.Is(err, service.ErrAiServiceError):
			log.Error().Err(err).Str("requestID", requestID).Msg("AI generation: provider error")
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "The AI service reported an error. Please try again later."})
		case errors.Is(err, service.ErrAiInvalidResponse):
			log.Error().Err(err).Str("requestID", requestID).Msg("AI generation: malformed provider response")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "The AI response could not be interpreted."})
		default:
			log.Error().Err(err).Str("requestID", requestID).Msg("AI generation: unexpected error")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error."})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AiFlashcardSuggestionsDTO{
		Suggestions:    suggestions,
		SourceTextEcho: req.SourceText,
	})
}
