package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dog-personality-quiz/internal/service"
)

// QuizHandler expone el alta de sesiones, las preguntas y las respuestas.
type QuizHandler struct {
	logger *zap.Logger
	quiz   *service.QuizService
}

func NewQuizHandler(logger *zap.Logger, quiz *service.QuizService) *QuizHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizHandler{logger: logger, quiz: quiz}
}

// Start maneja POST /api/quiz/start.
func (h *QuizHandler) Start(c *gin.Context) {
	var req service.StartSessionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid start quiz request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	started, err := h.quiz.StartSession(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.logger, "Failed to start quiz session", err)
		return
	}

	resp := gin.H{
		"success":    true,
		"session_id": started.Slug,
		"message":    "Quiz session started successfully",
	}
	if started.Token != "" {
		resp["session_token"] = started.Token
	}
	c.JSON(http.StatusOK, resp)
}

// Questions maneja GET /api/quiz/:slug/questions.
func (h *QuizHandler) Questions(c *gin.Context) {
	questions, err := h.quiz.Questions(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeServiceError(c, h.logger, "Failed to get questions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
}

// SubmitAnswer maneja POST /api/quiz/:slug/answer.
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		QuestionID     string `json:"question_id"`
		SelectedOption string `json:"selected_option"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.quiz.SubmitAnswer(c.Request.Context(), c.Param("slug"), req.QuestionID, req.SelectedOption); err != nil {
		writeServiceError(c, h.logger, "Failed to save answer", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Answer saved successfully"})
}
