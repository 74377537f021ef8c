package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/office-manager/internal/metrics"
	"github.com/psds-microservice/office-manager/internal/model"
	"github.com/psds-microservice/office-manager/internal/service"
	"gorm.io/datatypes"
)

type LeadHandler struct {
	svc     service.LeadServicer
	metrics metrics.Recorder
	log     *slog.Logger
}

func NewLeadHandler(svc service.LeadServicer, rec metrics.Recorder, log *slog.Logger) *LeadHandler {
	return &LeadHandler{svc: svc, metrics: rec, log: log}
}

// Pointers let a zero deal size or score pass "required".
type createLeadRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Email    string                 `json:"email" binding:"required"`
	Company  string                 `json:"company" binding:"required"`
	Source   string                 `json:"source" binding:"required"`
	DealSize *float64               `json:"deal_size" binding:"required,gte=0"`
	Score    *float64               `json:"score" binding:"required"`
	Extra    map[string]interface{} `json:"extra"`
}

type leadSummary struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Company  string  `json:"company"`
	Source   string  `json:"source"`
	DealSize float64 `json:"deal_size"`
	Score    float64 `json:"score"`
}

type scoreLeadRequest struct {
	DealSize *float64 `json:"deal_size" binding:"required,gte=0"`
	Source   string   `json:"source"`
}

// Create stores the caller's score as is. The dashboard formula lives in Score.
func (h *LeadHandler) Create(c *gin.Context) {
	var req createLeadRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.log, err)
		return
	}
	lead := &model.Lead{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Source:   req.Source,
		DealSize: *req.DealSize,
		Score:    *req.Score,
		Extra:    datatypes.JSONMap(req.Extra),
	}
	if err := h.svc.Create(c.Request.Context(), lead); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.metrics.RecordCreated("lead")
	c.JSON(http.StatusOK, gin.H{"id": lead.ID, "score": lead.Score})
}

func (h *LeadHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	out := make([]leadSummary, 0, len(items))
	for _, l := range items {
		out = append(out, leadSummary{
			ID:       l.ID,
			Name:     l.Name,
			Company:  l.Company,
			Source:   l.Source,
			DealSize: l.DealSize,
			Score:    l.Score,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Score computes the dashboard lead score without persisting anything.
func (h *LeadHandler) Score(c *gin.Context) {
	var req scoreLeadRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": service.LeadScore(*req.DealSize, req.Source)})
}
