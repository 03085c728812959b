package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/granttrack/granttrack/internal/application"
	"github.com/granttrack/granttrack/internal/config"
	"github.com/granttrack/granttrack/pkg/response"
)

type FinanceHandler struct {
	svc      *application.FinanceService
	clusters *application.ClusterService
}

func NewFinanceHandler(svc *application.FinanceService, clusters *application.ClusterService) *FinanceHandler {
	return &FinanceHandler{svc: svc, clusters: clusters}
}

// TopicSummary godoc
// @Summary Payment summary for one topic
// @Tags finance
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} application.FinanceStatus
// @Router /topics/{id}/finance [get]
func (h *FinanceHandler) TopicSummary(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	summary, err := h.svc.PaymentSummary(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"topic_id": id,
		"currency": config.Currency,
		"summary":  summary,
	})
}

func (h *FinanceHandler) GrantSummary(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	summary, err := h.svc.GrantSummary(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"grant_id": id,
		"currency": config.Currency,
		"summary":  summary,
	})
}

// ClusterSums reports the exact database-wide unpaid/paid/overpaid totals.
func (h *FinanceHandler) ClusterSums(c *gin.Context) {
	summary, err := h.svc.ClusterSums()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"currency": config.Currency,
		"summary":  summary,
	})
}

func (h *FinanceHandler) ListClusters(c *gin.Context) {
	clusters, err := h.svc.ListClusters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, clusters)
}

// GetCluster godoc
// @Summary One cluster with its member tickets and transactions
// @Tags finance
// @Produce json
// @Param id path int true "Cluster ID"
// @Success 200 {object} application.ClusterDetail
// @Failure 404 {object} response.ErrorResponse
// @Router /clusters/{id} [get]
func (h *FinanceHandler) GetCluster(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	detail, err := h.svc.ClusterDetail(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// RefreshClusters tears down and rebuilds the whole cluster graph. Admin
// only, meant for recovery after manual database surgery.
func (h *FinanceHandler) RefreshClusters(c *gin.Context) {
	if err := h.clusters.RefreshAll(); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	clusters, err := h.svc.ListClusters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "clusters rebuilt",
		"clusters": len(clusters),
	})
}
