package repository

import (
	"github.com/granttrack/granttrack/internal/domain/document"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	GetDocumentByID(id uint) (document.Document, error)
	ListDocumentsByTicket(ticketID uint) ([]document.Document, error)
	CreateDocument(d *document.Document) error
	DeleteDocument(id uint) error
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{db: db}
}

func (r *DBDocumentRepo) GetDocumentByID(id uint) (document.Document, error) {
	var d document.Document
	err := r.db.First(&d, id).Error
	return d, err
}

func (r *DBDocumentRepo) ListDocumentsByTicket(ticketID uint) ([]document.Document, error) {
	var docs []document.Document
	err := r.db.Where("ticket_id = ?", ticketID).Order("filename").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) CreateDocument(d *document.Document) error {
	return r.db.Create(d).Error
}

func (r *DBDocumentRepo) DeleteDocument(id uint) error {
	return r.db.Delete(&document.Document{}, id).Error
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{db: tx}
}
