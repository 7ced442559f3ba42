package handlers

import (
	"context"
	"errors"
	"net/http"

	"quiz-engine/internal/generator"
	"quiz-engine/internal/service"

	"github.com/gin-gonic/gin"
)

type AdaptiveHandler struct {
	Service *service.AdaptiveService
}

func NewAdaptiveHandler(s *service.AdaptiveService) *AdaptiveHandler {
	return &AdaptiveHandler{Service: s}
}

// Start opens an adaptive run with a level-1 medium question.
func (h *AdaptiveHandler) Start(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id"`
		Topic       string `json:"topic"`
		Proficiency string `json:"proficiency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		req.UserID = "anonymous"
	}
	if req.Topic == "" {
		req.Topic = "General Knowledge"
	}
	if req.Proficiency == "" {
		req.Proficiency = "intermediate"
	}

	question, err := h.Service.Start(context.Background(), req.UserID, req.Topic, req.Proficiency)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, generator.ErrGenerationFailure) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error":   "Failed to start adaptive quiz",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

// ManualNext serves the legacy level-1 flow: the ordinal stepper picks the
// next label from the client-tracked state.
func (h *AdaptiveHandler) ManualNext(c *gin.Context) {
	var req service.ManualNextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Topic == "" {
		req.Topic = "General Knowledge"
	}
	if req.Proficiency == "" {
		req.Proficiency = "intermediate"
	}

	question, label, err := h.Service.ManualNext(context.Background(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, generator.ErrGenerationFailure) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error":   "Failed to generate next question",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question":           question,
		"difficulty":         label,
		"difficulty_numeric": question.Difficulty,
	})
}

// Next folds the last outcome into the learner's state and serves the next
// question at the resulting level and difficulty.
func (h *AdaptiveHandler) Next(c *gin.Context) {
	var req service.AdaptiveNextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		req.UserID = c.GetHeader("X-User-ID")
	}
	if req.UserID == "" {
		req.UserID = "anonymous"
	}
	if req.Topic == "" {
		req.Topic = "General Knowledge"
	}
	if req.Proficiency == "" {
		req.Proficiency = "intermediate"
	}

	result, err := h.Service.NextQuestion(context.Background(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, generator.ErrGenerationFailure) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error":   "Failed to generate next question",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
