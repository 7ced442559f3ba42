package handlers

import (
	"context"
	"errors"
	"net/http"

	"quiz-engine/internal/difficulty"
	"quiz-engine/internal/service"

	"github.com/gin-gonic/gin"
)

type SubmitHandler struct {
	Service *service.EngineService
}

func NewSubmitHandler(s *service.EngineService) *SubmitHandler {
	return &SubmitHandler{Service: s}
}

// SubmitAnswer grades one answer through the formula-based difficulty
// pipeline and returns the update trace plus the next question.
func (h *SubmitHandler) SubmitAnswer(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid submission format",
			"details": err.Error(),
		})
		return
	}
	if req.UserID == "" {
		req.UserID = c.GetHeader("X-User-ID")
	}
	if req.UserID == "" {
		req.UserID = "anonymous"
	}

	result, err := h.Service.SubmitAnswer(context.Background(), req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found", "question_id": req.QuestionID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process answer",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLearner exposes the learner's current adaptive position.
func (h *SubmitHandler) GetLearner(c *gin.Context) {
	userID := c.Param("id")

	learner, err := h.Service.GetLearner(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load learner",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"learner": learner,
		"label":   difficulty.LabelOf(learner.CurrentDifficulty),
	})
}
