package handlers

import (
	"context"
	"net/http"

	"quiz-engine/internal/models"
	"quiz-engine/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Store service.QuestionStore
}

func NewQuestionHandler(store service.QuestionStore) *QuestionHandler {
	return &QuestionHandler{Store: store}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if question.Difficulty < 0 || question.Difficulty > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty must be within [0, 10]"})
		return
	}

	if err := h.Store.Create(context.Background(), &question); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id := c.Param("id")
	question, err := h.Store.FindByID(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	topic := c.Query("topic")

	var questions []models.Question
	var err error
	if topic != "" {
		questions, err = h.Store.FindByTopic(context.Background(), topic)
	} else {
		questions, err = h.Store.FindAll(context.Background())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions, "count": len(questions)})
}
