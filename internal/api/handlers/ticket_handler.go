package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/granttrack/granttrack/internal/application"
	"github.com/granttrack/granttrack/internal/domain/ticket"
	"github.com/granttrack/granttrack/internal/repository"
	"github.com/granttrack/granttrack/pkg/response"
	"github.com/granttrack/granttrack/pkg/utils"
)

type TicketHandler struct {
	svc   *application.TicketService
	repos *repository.Repos
}

func NewTicketHandler(svc *application.TicketService, repos *repository.Repos) *TicketHandler {
	return &TicketHandler{svc: svc, repos: repos}
}

// ListTickets godoc
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Success 200 {array} ticket.Ticket
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	if topicID := c.Query("topic_id"); topicID != "" {
		id, err := strconv.ParseUint(topicID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid topic_id"})
			return
		}
		tickets, err := h.svc.ListTicketsByTopic(uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, tickets)
		return
	}
	tickets, err := h.svc.ListTickets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// GetTicket godoc
// @Summary Get one ticket with its expenditures
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	t, err := h.svc.GetTicket(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input ticket.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	var requestedBy *uint
	if userID, err := utils.GetUserIDFromContext(c); err == nil {
		requestedBy = &userID
	}
	t, err := h.svc.CreateTicket(requestedBy, input)
	if err != nil {
		if errors.Is(err, application.ErrTopicClosed) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	utils.LogAuditWithConsole(c, "create", "ticket", strconv.Itoa(int(t.ID)), nil, t, "", h.repos.Audit)
	c.JSON(http.StatusCreated, t)
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input ticket.UpdateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	old, _ := h.svc.GetTicket(id)
	t, err := h.svc.UpdateTicket(id, input)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	utils.LogAuditWithConsole(c, "update", "ticket", strconv.Itoa(int(id)), old, t, "", h.repos.Audit)
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.svc.DeleteTicket(id); err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	utils.LogAuditWithConsole(c, "delete", "ticket", strconv.Itoa(int(id)), nil, nil, "", h.repos.Audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ticket deleted"})
}

func (h *TicketHandler) ListExpenditures(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	expenditures, err := h.svc.ListExpenditures(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, expenditures)
}

func (h *TicketHandler) CreateExpenditure(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input ticket.CreateExpenditureDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	e, err := h.svc.CreateExpenditure(id, input)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *TicketHandler) UpdateExpenditure(c *gin.Context) {
	id, err := parseParamID(c, "expenditure_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input ticket.UpdateExpenditureDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	e, err := h.svc.UpdateExpenditure(id, input)
	if err != nil {
		if errors.Is(err, application.ErrExpenditureNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *TicketHandler) DeleteExpenditure(c *gin.Context) {
	id, err := parseParamID(c, "expenditure_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.svc.DeleteExpenditure(id); err != nil {
		if errors.Is(err, application.ErrExpenditureNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "expenditure deleted"})
}

func parseID(c *gin.Context) (uint, error) {
	return parseParamID(c, "id")
}

func parseParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}
