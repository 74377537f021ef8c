package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CategoryTechnical = "Technical"
	CategoryGeneral   = "General"
)

// ToolsHandler serves the stateless helpers used by the dashboard modules.
type ToolsHandler struct {
	log *slog.Logger
}

func NewToolsHandler(log *slog.Logger) *ToolsHandler {
	return &ToolsHandler{log: log}
}

type textRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}

func (h *ToolsHandler) ClassifyComplaint(c *gin.Context) {
	var req textRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": ClassifyComplaint(req.Text)})
}

func (h *ToolsHandler) ScoreResume(c *gin.Context) {
	var req textRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": ResumeScore(req.Text)})
}

// ClassifyComplaint flags anything mentioning a bug as technical.
func ClassifyComplaint(text string) string {
	if strings.Contains(strings.ToLower(text), "bug") {
		return CategoryTechnical
	}
	return CategoryGeneral
}

// ResumeScore is one point per three words, capped at 100.
func ResumeScore(text string) int {
	return min(100, len(strings.Fields(text))/3)
}
