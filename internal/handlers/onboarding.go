package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hirecharm/onboarding-backend/internal/logger"
	"github.com/hirecharm/onboarding-backend/internal/services"
	"github.com/hirecharm/onboarding-backend/internal/types"
)

type OnboardingHandler struct {
	log               *logger.Logger
	onboardingService services.OnboardingService
}

func NewOnboardingHandler(log *logger.Logger, onboardingService services.OnboardingService) *OnboardingHandler {
	handlerLog := log.With("handler", "OnboardingHandler")
	return &OnboardingHandler{log: handlerLog, onboardingService: onboardingService}
}

func (oh *OnboardingHandler) Submit(c *gin.Context) {
	var req types.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := err.Error()
		c.JSON(http.StatusBadRequest, types.SubmissionResponse{Success: false, Message: &msg})
		return
	}

	submissionID, err := oh.onboardingService.Submit(c.Request.Context(), &req)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, services.ErrMissingClientIdentity) {
			c.JSON(http.StatusBadRequest, types.SubmissionResponse{Success: false, Message: &msg})
			return
		}
		oh.log.Error("Error saving submission", "error", err)
		c.JSON(http.StatusInternalServerError, types.SubmissionResponse{Success: false, Message: &msg})
		return
	}

	id := submissionID.String()
	msg := "Onboarding form submitted successfully"
	c.JSON(http.StatusOK, types.SubmissionResponse{Success: true, SubmissionID: &id, Message: &msg})
}

func (oh *OnboardingHandler) GetByID(c *gin.Context) {
	submissionID, err := uuid.Parse(c.Param("submission_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrSubmissionNotFound.Error()})
		return
	}

	detail, err := oh.onboardingService.GetSubmission(c.Request.Context(), submissionID)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		oh.log.Error("Error retrieving submission", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}
