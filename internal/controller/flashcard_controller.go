package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/jsliwa/fishcards/internal/middleware"
	"github.com/jsliwa/fishcards/internal/service"
	"github.com/rs/zerolog/log"
)

type FlashcardController struct {
	flashcardService service.FlashcardService
}

func NewFlashcardController(flashcardService service.FlashcardService) *FlashcardController {
	return &FlashcardController{flashcardService: flashcardService}
}

// Create godoc
// @Summary Create a new flashcard
// @Description Creates a flashcard for the authenticated user. AI-generated cards must carry their source text.
// @Tags Flashcards
// @Accept json
// @Produce json
// @Param flashcard body dto.CreateFlashcardDTO true "Flashcard data"
// @Success 201 {object} dto.FlashcardResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /flashcards [post]
func (ctrl *FlashcardController) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateFlashcardDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("requestID", middleware.GetRequestID(c)).Msg("Create flashcard: failed to bind JSON")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.flashcardService.Create(req, userID)
	if err != nil {
		if errors.Is(err, service.ErrMissingSourceText) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: []string{err.Error()}})
			return
		}
		log.Error().Err(err).Str("requestID", middleware.GetRequestID(c)).Msg("Create flashcard: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create flashcard due to a server error."})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List flashcards
// @Description Lists the authenticated user's flashcards with search, filtering, sorting and pagination.
// @Tags Flashcards
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, question)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Param search query string false "Case-insensitive substring match on the question"
// @Param isAiGenerated query bool false "Filter by AI-generated flag"
// @Success 200 {object} dto.FlashcardsListDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /flashcards [get]
func (ctrl *FlashcardController) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var query dto.GetFlashcardsQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid query parameters", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.flashcardService.List(userID, query)
	if err != nil {
		log.Error().Err(err).Str("requestID", middleware.GetRequestID(c)).Msg("List flashcards: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve flashcards."})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary Get a single flashcard
// @Tags Flashcards
// @Produce json
// @Param id path string true "Flashcard ID (UUID)"
// @Success 200 {object} dto.FlashcardResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Flashcard not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /flashcards/{id} [get]
func (ctrl *FlashcardController) GetByID(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Flashcard ID must be a valid UUID."})
		return
	}

	resp, err := ctrl.flashcardService.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, service.ErrFlashcardNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Flashcard not found."})
			return
		}
		log.Error().Err(err).Str("requestID", middleware.GetRequestID(c)).Msg("Get flashcard: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error."})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Partially update a flashcard
// @Description Updates the question and/or answer. Rows owned by another user or already deleted report not found.
// @Tags Flashcards
// @Accept json
// @Produce json
// @Param id path string true "Flashcard ID (UUID)"
// @Param flashcard body dto.UpdateFlashcardDTO true "Fields to update (at least one required)"
// @Success 200 {object} dto.FlashcardResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Flashcard not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /flashcards/{id} [patch]
func (ctrl *FlashcardController) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Flashcard ID must be a valid UUID."})
		return
	}

	var req dto.UpdateFlashcardDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.flashcardService.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFieldsToUpdate):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: []string{err.Error()}})
		case errors.Is(err, service.ErrFlashcardNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Flashcard not found."})
		default:
			log.Error().Err(err).Str("requestID", middleware.GetRequestID(c)).Msg("Update flashcard: service error")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error."})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Soft-delete a flashcard
// @Description Marks the flashcard deleted without physical removal. No resurrection path exists.
// @Tags Flashcards
// @Produce json
// @Param id path string true "Flashcard ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Flashcard not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /flashcards/{id} [delete]
func (ctrl *FlashcardController) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Flashcard ID must be a valid UUID."})
		return
	}

	if err := ctrl.flashcardService.SoftDelete(userID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrFlashcardNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Flashcard not found."})
		case errors.Is(err, service.ErrAccessDenied):
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Access denied."})
		default:
			log.Error().Err(err).Str("requestID", middleware.GetRequestID(c)).Msg("Delete flashcard: service error")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error."})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
