package application

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/granttrack/granttrack/internal/domain/document"
	"github.com/granttrack/granttrack/internal/repository"
	"github.com/granttrack/granttrack/internal/storage"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentService stores ticket attachments: a metadata row in the database
// and the payload in object storage. Documents never participate in
// clustering.
type DocumentService struct {
	Repos *repository.Repos
}

func NewDocumentService(repos *repository.Repos) *DocumentService {
	return &DocumentService{Repos: repos}
}

func (s *DocumentService) ListDocuments(ticketID uint) ([]document.Document, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(ticketID); err != nil {
		return nil, ErrTicketNotFound
	}
	return s.Repos.Document.ListDocumentsByTicket(ticketID)
}

func (s *DocumentService) Upload(ctx context.Context, ticketID uint, filename, contentType string, size int64, reader io.Reader) (*document.Document, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(ticketID); err != nil {
		return nil, ErrTicketNotFound
	}
	d := &document.Document{
		TicketID:    ticketID,
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		ObjectKey:   uuid.NewString(),
	}
	if err := storage.Upload(ctx, d.ObjectKey, reader, size, contentType); err != nil {
		return nil, err
	}
	if err := s.Repos.Document.CreateDocument(d); err != nil {
		// Orphaned object; best effort removal.
		_ = storage.Remove(ctx, d.ObjectKey)
		return nil, err
	}
	return d, nil
}

func (s *DocumentService) Open(ctx context.Context, id uint) (*document.Document, io.ReadCloser, error) {
	d, err := s.Repos.Document.GetDocumentByID(id)
	if err != nil {
		return nil, nil, ErrDocumentNotFound
	}
	reader, err := storage.Download(ctx, d.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return &d, reader, nil
}

func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	d, err := s.Repos.Document.GetDocumentByID(id)
	if err != nil {
		return ErrDocumentNotFound
	}
	if err := s.Repos.Document.DeleteDocument(id); err != nil {
		return err
	}
	return storage.Remove(ctx, d.ObjectKey)
}
