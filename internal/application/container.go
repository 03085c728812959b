package application

import (
	"github.com/granttrack/granttrack/internal/events"
	"github.com/granttrack/granttrack/internal/repository"
)

type Services struct {
	Cluster     *ClusterService
	Finance     *FinanceService
	Ticket      *TicketService
	Transaction *TransactionService
	Topic       *TopicService
	User        *UserService
	Audit       *AuditService
	Document    *DocumentService
}

func New(repos *repository.Repos, hub *events.Hub) *Services {
	clusters := NewClusterService(repos, hub)
	return &Services{
		Cluster:     clusters,
		Finance:     NewFinanceService(repos),
		Ticket:      NewTicketService(repos, clusters),
		Transaction: NewTransactionService(repos, clusters),
		Topic:       NewTopicService(repos),
		User:        NewUserService(repos),
		Audit:       NewAuditService(repos),
		Document:    NewDocumentService(repos),
	}
}
