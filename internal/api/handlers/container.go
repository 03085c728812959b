package handlers

import (
	"github.com/granttrack/granttrack/internal/application"
	"github.com/granttrack/granttrack/internal/events"
	"github.com/granttrack/granttrack/internal/repository"
)

type Handlers struct {
	Ticket      *TicketHandler
	Transaction *TransactionHandler
	Finance     *FinanceHandler
	Topic       *TopicHandler
	User        *UserHandler
	Document    *DocumentHandler
	Audit       *AuditHandler
	Events      *EventsHandler
}

func New(services *application.Services, repos *repository.Repos, hub *events.Hub) *Handlers {
	return &Handlers{
		Ticket:      NewTicketHandler(services.Ticket, repos),
		Transaction: NewTransactionHandler(services.Transaction, repos),
		Finance:     NewFinanceHandler(services.Finance, services.Cluster),
		Topic:       NewTopicHandler(services.Topic),
		User:        NewUserHandler(services.User),
		Document:    NewDocumentHandler(services.Document),
		Audit:       NewAuditHandler(services.Audit),
		Events:      NewEventsHandler(hub),
	}
}
