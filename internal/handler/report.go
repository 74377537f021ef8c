package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/office-manager/internal/service"
)

type ReportHandler struct {
	svc service.ReportServicer
	log *slog.Logger
}

func NewReportHandler(svc service.ReportServicer, log *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log}
}

func (h *ReportHandler) Metrics(c *gin.Context) {
	m, err := h.svc.Metrics(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	r, err := h.svc.Monthly(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
