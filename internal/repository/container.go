package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Ticket      TicketRepo
	Transaction TransactionRepo
	Cluster     ClusterRepo
	Topic       TopicRepo
	User        UserRepo
	Audit       AuditRepo
	Document    DocumentRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Ticket:      NewTicketRepo(db),
		Transaction: NewTransactionRepo(db),
		Cluster:     NewClusterRepo(db),
		Topic:       NewTopicRepo(db),
		User:        NewUserRepo(db),
		Audit:       NewAuditRepo(db),
		Document:    NewDocumentRepo(db),
		db:          db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Ticket:      r.Ticket.WithTx(tx),
		Transaction: r.Transaction.WithTx(tx),
		Cluster:     r.Cluster.WithTx(tx),
		Topic:       r.Topic.WithTx(tx),
		User:        r.User.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		Document:    r.Document.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn against a transactional copy of every repository. The
// cluster update relies on this: teardown and rebuild of a component must
// never be visible half-done to other readers.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
