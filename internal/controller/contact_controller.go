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

type ContactController struct {
	submissions service.ContactSubmissionService
}

func NewContactController(submissions service.ContactSubmissionService) *ContactController {
	return &ContactController{submissions: submissions}
}

// Submit godoc
// @Summary Submit a contact form message
// @Description Stores a contact submission. Works for anonymous visitors; signed-in users get their ID attached.
// @Tags Contact
// @Accept json
// @Produce json
// @Param submission body dto.CreateContactSubmissionDTO true "Contact form data"
// @Success 201 {object} dto.ContactSubmissionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Submission denied"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contact-submissions [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	var req dto.CreateContactSubmissionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: []string{err.Error()}})
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	resp, err := ctrl.submissions.Submit(req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateSubmission), errors.Is(err, service.ErrInvalidSubmission):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrSubmissionDenied):
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Access denied."})
		default:
			log.Error().Err(err).Str("requestID", middleware.GetRequestID(c)).Msg("Contact submission: service error")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store the submission."})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}
