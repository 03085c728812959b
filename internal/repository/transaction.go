package repository

import (
	"github.com/granttrack/granttrack/internal/domain/transaction"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepo interface {
	GetTransactionByID(id uint) (transaction.Transaction, error)
	ListTransactions() ([]transaction.Transaction, error)
	ListTransactionIDs() ([]uint, error)
	ListTransactionsByCluster(clusterID uint) ([]transaction.Transaction, error)
	TransactionIDsByCluster(clusterID uint) ([]uint, error)
	CreateTransaction(tr *transaction.Transaction) error
	UpdateTransaction(tr *transaction.Transaction) error
	DeleteTransaction(id uint) error
	LinkedTicketIDs(transactionID uint) ([]uint, error)
	LinkTicket(transactionID, ticketID uint) error
	UnlinkTicket(transactionID, ticketID uint) error
	ClearTicketLinks(transactionID uint) error
	SetCluster(ids []uint, clusterID *uint) error
	WithTx(tx *gorm.DB) TransactionRepo
}

type DBTransactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) *DBTransactionRepo {
	return &DBTransactionRepo{db: db}
}

func (r *DBTransactionRepo) GetTransactionByID(id uint) (transaction.Transaction, error) {
	var tr transaction.Transaction
	err := r.db.First(&tr, id).Error
	return tr, err
}

func (r *DBTransactionRepo) ListTransactions() ([]transaction.Transaction, error) {
	var trs []transaction.Transaction
	err := r.db.Order("date desc").Find(&trs).Error
	return trs, err
}

func (r *DBTransactionRepo) ListTransactionIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&transaction.Transaction{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *DBTransactionRepo) ListTransactionsByCluster(clusterID uint) ([]transaction.Transaction, error) {
	var trs []transaction.Transaction
	err := r.db.Where("cluster_id = ?", clusterID).Order("id").Find(&trs).Error
	return trs, err
}

func (r *DBTransactionRepo) TransactionIDsByCluster(clusterID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&transaction.Transaction{}).Where("cluster_id = ?", clusterID).
		Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *DBTransactionRepo) CreateTransaction(tr *transaction.Transaction) error {
	return r.db.Create(tr).Error
}

func (r *DBTransactionRepo) UpdateTransaction(tr *transaction.Transaction) error {
	return r.db.Save(tr).Error
}

func (r *DBTransactionRepo) DeleteTransaction(id uint) error {
	return r.db.Delete(&transaction.Transaction{}, id).Error
}

func (r *DBTransactionRepo) LinkedTicketIDs(transactionID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&transaction.TicketLink{}).
		Where("transaction_id = ?", transactionID).
		Order("ticket_id").
		Pluck("ticket_id", &ids).Error
	return ids, err
}

// LinkTicket is idempotent; re-linking an existing pair is a no-op.
func (r *DBTransactionRepo) LinkTicket(transactionID, ticketID uint) error {
	link := transaction.TicketLink{TransactionID: transactionID, TicketID: ticketID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

func (r *DBTransactionRepo) UnlinkTicket(transactionID, ticketID uint) error {
	return r.db.Where("transaction_id = ? AND ticket_id = ?", transactionID, ticketID).
		Delete(&transaction.TicketLink{}).Error
}

func (r *DBTransactionRepo) ClearTicketLinks(transactionID uint) error {
	return r.db.Where("transaction_id = ?", transactionID).Delete(&transaction.TicketLink{}).Error
}

func (r *DBTransactionRepo) SetCluster(ids []uint, clusterID *uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&transaction.Transaction{}).Where("id IN ?", ids).
		UpdateColumn("cluster_id", clusterID).Error
}

func (r *DBTransactionRepo) WithTx(tx *gorm.DB) TransactionRepo {
	if tx == nil {
		return r
	}
	return &DBTransactionRepo{db: tx}
}
