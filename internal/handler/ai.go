package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/office-manager/internal/assistant"
)

type AIHandler struct {
	responder assistant.Responder
	log       *slog.Logger
}

func NewAIHandler(responder assistant.Responder, log *slog.Logger) *AIHandler {
	return &AIHandler{responder: responder, log: log}
}

type processRequest struct {
	Department string `json:"department"`
	Task       string `json:"task" binding:"required,notblank"`
}

func (h *AIHandler) Process(c *gin.Context) {
	var req processRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": h.responder.Process(c.Request.Context(), req.Department, req.Task)})
}
