package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/granttrack/granttrack/internal/application"
	"github.com/granttrack/granttrack/internal/domain/transaction"
	"github.com/granttrack/granttrack/internal/repository"
	"github.com/granttrack/granttrack/pkg/response"
	"github.com/granttrack/granttrack/pkg/utils"
)

type TransactionHandler struct {
	svc   *application.TransactionService
	repos *repository.Repos
}

func NewTransactionHandler(svc *application.TransactionService, repos *repository.Repos) *TransactionHandler {
	return &TransactionHandler{svc: svc, repos: repos}
}

// ListTransactions godoc
// @Summary List bank transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} transaction.Transaction
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.svc.ListTransactions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	tr, err := h.svc.GetTransaction(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tr)
}

// TicketIDs lists the tickets a transaction is matched against.
func (h *TransactionHandler) TicketIDs(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	ids, err := h.svc.TicketIDs(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket_ids": ids})
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var input transaction.CreateTransactionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	tr, err := h.svc.CreateTransaction(input)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	utils.LogAuditWithConsole(c, "create", "transaction", strconv.Itoa(int(tr.ID)), nil, tr, "", h.repos.Audit)
	c.JSON(http.StatusCreated, tr)
}

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input transaction.UpdateTransactionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	old, _ := h.svc.GetTransaction(id)
	tr, err := h.svc.UpdateTransaction(id, input)
	if err != nil {
		if errors.Is(err, application.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	utils.LogAuditWithConsole(c, "update", "transaction", strconv.Itoa(int(id)), old, tr, "", h.repos.Audit)
	c.JSON(http.StatusOK, tr)
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.svc.DeleteTransaction(id); err != nil {
		if errors.Is(err, application.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	utils.LogAuditWithConsole(c, "delete", "transaction", strconv.Itoa(int(id)), nil, nil, "", h.repos.Audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "transaction deleted"})
}

// LinkTicket matches a transaction against a ticket and reruns the affected
// part of the cluster graph.
func (h *TransactionHandler) LinkTicket(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	ticketID, err := parseParamID(c, "ticket_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid ticket_id"})
		return
	}
	if err := h.svc.LinkTicket(id, ticketID); err != nil {
		if errors.Is(err, application.ErrTicketNotFound) || errors.Is(err, application.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	utils.LogAuditWithConsole(c, "link", "transaction", strconv.Itoa(int(id)), nil, gin.H{"ticket_id": ticketID}, "", h.repos.Audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ticket linked"})
}

func (h *TransactionHandler) UnlinkTicket(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	ticketID, err := parseParamID(c, "ticket_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid ticket_id"})
		return
	}
	if err := h.svc.UnlinkTicket(id, ticketID); err != nil {
		if errors.Is(err, application.ErrTicketNotFound) || errors.Is(err, application.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	utils.LogAuditWithConsole(c, "unlink", "transaction", strconv.Itoa(int(id)), gin.H{"ticket_id": ticketID}, nil, "", h.repos.Audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ticket unlinked"})
}
