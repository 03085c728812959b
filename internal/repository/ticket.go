package repository

import (
	"github.com/granttrack/granttrack/internal/domain/ticket"
	"github.com/granttrack/granttrack/internal/domain/transaction"
	"gorm.io/gorm"
)

type TicketRepo interface {
	GetTicketByID(id uint) (ticket.Ticket, error)
	ListTickets() ([]ticket.Ticket, error)
	ListTicketIDs() ([]uint, error)
	ListTicketsByTopic(topicID uint) ([]ticket.Ticket, error)
	ListTicketsByCluster(clusterID uint) ([]ticket.Ticket, error)
	TicketIDsByCluster(clusterID uint) ([]uint, error)
	CreateTicket(t *ticket.Ticket) error
	UpdateTicket(t *ticket.Ticket) error
	DeleteTicket(id uint) error
	LinkedTransactionIDs(ticketID uint) ([]uint, error)
	ClearTransactionLinks(ticketID uint) error

	// SetCluster and SetPaymentStatus are the cluster-assignment-only write
	// path: they touch nothing but the named column, so callers inside the
	// cluster update cannot re-trigger it.
	SetCluster(ids []uint, clusterID *uint) error
	SetPaymentStatus(ids []uint, status ticket.PaymentStatus) error

	GetExpenditureByID(id uint) (ticket.Expenditure, error)
	CreateExpenditure(e *ticket.Expenditure) error
	UpdateExpenditure(e *ticket.Expenditure) error
	DeleteExpenditure(id uint) error

	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) GetTicketByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("Expenditures").First(&t, id).Error
	return t, err
}

func (r *DBTicketRepo) ListTickets() ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Preload("Expenditures").Order("sort_date desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&ticket.Ticket{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *DBTicketRepo) ListTicketsByTopic(topicID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Preload("Expenditures").Where("topic_id = ?", topicID).Order("id").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketsByCluster(clusterID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Preload("Expenditures").Where("cluster_id = ?", clusterID).Order("id").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) TicketIDsByCluster(clusterID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&ticket.Ticket{}).Where("cluster_id = ?", clusterID).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) UpdateTicket(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *DBTicketRepo) LinkedTransactionIDs(ticketID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&transaction.TicketLink{}).
		Where("ticket_id = ?", ticketID).
		Order("transaction_id").
		Pluck("transaction_id", &ids).Error
	return ids, err
}

func (r *DBTicketRepo) ClearTransactionLinks(ticketID uint) error {
	return r.db.Where("ticket_id = ?", ticketID).Delete(&transaction.TicketLink{}).Error
}

func (r *DBTicketRepo) SetCluster(ids []uint, clusterID *uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&ticket.Ticket{}).Where("id IN ?", ids).
		UpdateColumn("cluster_id", clusterID).Error
}

func (r *DBTicketRepo) SetPaymentStatus(ids []uint, status ticket.PaymentStatus) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&ticket.Ticket{}).Where("id IN ?", ids).
		UpdateColumn("payment_status", status).Error
}

func (r *DBTicketRepo) GetExpenditureByID(id uint) (ticket.Expenditure, error) {
	var e ticket.Expenditure
	err := r.db.First(&e, id).Error
	return e, err
}

func (r *DBTicketRepo) CreateExpenditure(e *ticket.Expenditure) error {
	return r.db.Create(e).Error
}

func (r *DBTicketRepo) UpdateExpenditure(e *ticket.Expenditure) error {
	return r.db.Save(e).Error
}

func (r *DBTicketRepo) DeleteExpenditure(id uint) error {
	return r.db.Delete(&ticket.Expenditure{}, id).Error
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
