package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/office-manager/internal/metrics"
	"github.com/psds-microservice/office-manager/internal/model"
	"github.com/psds-microservice/office-manager/internal/service"
)

type TaskHandler struct {
	svc     service.TaskServicer
	metrics metrics.Recorder
	log     *slog.Logger
}

func NewTaskHandler(svc service.TaskServicer, rec metrics.Recorder, log *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, metrics: rec, log: log}
}

type createTaskRequest struct {
	Title    string `json:"title" binding:"required"`
	Owner    string `json:"owner" binding:"required"`
	DueDate  string `json:"due_date" binding:"required"`
	Priority string `json:"priority"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.log, err)
		return
	}
	task := &model.Task{
		Title:    req.Title,
		Owner:    req.Owner,
		DueDate:  req.DueDate,
		Priority: req.Priority,
	}
	if err := h.svc.Create(c.Request.Context(), task); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.metrics.RecordCreated("task")
	c.JSON(http.StatusOK, gin.H{"id": task.ID, "status": task.Status})
}

func (h *TaskHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
