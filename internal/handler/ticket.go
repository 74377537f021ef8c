package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/office-manager/internal/metrics"
	"github.com/psds-microservice/office-manager/internal/model"
	"github.com/psds-microservice/office-manager/internal/service"
)

type TicketHandler struct {
	svc     service.TicketServicer
	metrics metrics.Recorder
	log     *slog.Logger
}

func NewTicketHandler(svc service.TicketServicer, rec metrics.Recorder, log *slog.Logger) *TicketHandler {
	return &TicketHandler{svc: svc, metrics: rec, log: log}
}

type createTicketRequest struct {
	Customer string `json:"customer" binding:"required"`
	Issue    string `json:"issue" binding:"required"`
	Category string `json:"category"`
}

type ticketSummary struct {
	ID        uint64 `json:"id"`
	Customer  string `json:"customer"`
	Issue     string `json:"issue"`
	Status    string `json:"status"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.log, err)
		return
	}
	ticket := &model.Ticket{
		Customer: req.Customer,
		Issue:    req.Issue,
		Category: req.Category,
		Status:   model.TicketStatusOpen,
	}
	if err := h.svc.Create(c.Request.Context(), ticket); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.metrics.RecordCreated("ticket")
	c.JSON(http.StatusOK, gin.H{"id": ticket.ID, "status": ticket.Status})
}

func (h *TicketHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	out := make([]ticketSummary, 0, len(items))
	for _, t := range items {
		out = append(out, ticketSummary{
			ID:        t.ID,
			Customer:  t.Customer,
			Issue:     t.Issue,
			Status:    string(t.Status),
			Category:  t.Category,
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	c.JSON(http.StatusOK, out)
}
