package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/granttrack/granttrack/internal/application"
	"github.com/granttrack/granttrack/pkg/response"
)

const maxDocumentSize = 32 << 20 // 32 MiB

type DocumentHandler struct {
	svc *application.DocumentService
}

func NewDocumentHandler(svc *application.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	ticketID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	docs, err := h.svc.ListDocuments(ticketID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Upload godoc
// @Summary Attach a file to a ticket
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Ticket ID"
// @Param file formData file true "File"
// @Success 201 {object} document.Document
// @Router /tickets/{id}/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	ticketID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "missing file"})
		return
	}
	if header.Size > maxDocumentSize {
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: "file too large"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	d, err := h.svc.Upload(c.Request.Context(), ticketID, header.Filename, contentType, header.Size, file)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	d, reader, err := h.svc.Open(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Filename))
	c.DataFromReader(http.StatusOK, d.Size, d.ContentType, reader, nil)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "document deleted"})
}
