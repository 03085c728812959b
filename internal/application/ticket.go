package application

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/granttrack/granttrack/internal/domain/ticket"
	"github.com/granttrack/granttrack/internal/repository"
)

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrExpenditureNotFound = errors.New("expenditure not found")
	ErrTopicClosed         = errors.New("topic is not open for tickets")
)

// TicketService owns ticket and expenditure mutations. Every write that can
// change cluster membership or accepted amounts triggers the cluster update
// in the same transaction, so readers never observe a ticket whose cluster
// or payment status is stale.
type TicketService struct {
	Repos    *repository.Repos
	Clusters *ClusterService
}

func NewTicketService(repos *repository.Repos, clusters *ClusterService) *TicketService {
	return &TicketService{Repos: repos, Clusters: clusters}
}

func (s *TicketService) GetTicket(id uint) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	return &t, nil
}

func (s *TicketService) ListTickets() ([]ticket.Ticket, error) {
	return s.Repos.Ticket.ListTickets()
}

func (s *TicketService) ListTicketsByTopic(topicID uint) ([]ticket.Ticket, error) {
	return s.Repos.Ticket.ListTicketsByTopic(topicID)
}

func (s *TicketService) CreateTicket(requestedUserID *uint, input ticket.CreateTicketDTO) (*ticket.Ticket, error) {
	topic, err := s.Repos.Topic.GetTopicByID(input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("create ticket: topic %d: %w", input.TopicID, err)
	}
	if !topic.OpenForTickets {
		return nil, ErrTopicClosed
	}

	t := &ticket.Ticket{
		Summary:         input.Summary,
		TopicID:         input.TopicID,
		RequestedUserID: requestedUserID,
		State:           ticket.StateDraft,
		PaymentStatus:   ticket.PaymentStatusNA,
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.RequestedText != nil {
		t.RequestedText = *input.RequestedText
	}
	if input.State != nil {
		t.State = ticket.TicketState(*input.State)
	}
	if input.RatingPercentage != nil {
		t.RatingPercentage = input.RatingPercentage
	}
	if input.EventDate != nil {
		d, err := time.Parse("2006-01-02", *input.EventDate)
		if err != nil {
			return nil, fmt.Errorf("create ticket: event date: %w", err)
		}
		t.EventDate = &d
	}
	applySortDate(t)

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.CreateTicket(t); err != nil {
			return err
		}
		return s.Clusters.performIn(r, []uint{t.ID}, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.GetTicket(t.ID)
}

func (s *TicketService) UpdateTicket(id uint, input ticket.UpdateTicketDTO) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	if input.Summary != nil {
		t.Summary = *input.Summary
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.SupervisorNotes != nil {
		t.SupervisorNotes = *input.SupervisorNotes
	}
	if input.State != nil {
		t.State = ticket.TicketState(*input.State)
	}
	if input.CustomState != nil {
		t.CustomState = *input.CustomState
	}
	if input.RatingPercentage != nil {
		t.RatingPercentage = input.RatingPercentage
	}
	if input.EventDate != nil {
		d, err := time.Parse("2006-01-02", *input.EventDate)
		if err != nil {
			return nil, fmt.Errorf("update ticket: event date: %w", err)
		}
		t.EventDate = &d
	}
	applySortDate(&t)

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.UpdateTicket(&t); err != nil {
			return err
		}
		// State or rating changes move the accepted amount, which moves the
		// cluster's payment status.
		return s.Clusters.performIn(r, []uint{t.ID}, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.GetTicket(t.ID)
}

// DeleteTicket severs the ticket's transaction links, removes the row, and
// rebuilds whatever remains of its old component. The rebuild runs after the
// row is gone so the traversal never sees a half-deleted ticket.
func (s *TicketService) DeleteTicket(id uint) error {
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		t, err := r.Ticket.GetTicketByID(id)
		if err != nil {
			return ErrTicketNotFound
		}
		linked, err := r.Ticket.LinkedTransactionIDs(id)
		if err != nil {
			return err
		}
		if err := r.Ticket.ClearTransactionLinks(id); err != nil {
			return err
		}
		oldCluster := t.ClusterID
		if err := r.Ticket.DeleteTicket(id); err != nil {
			return err
		}
		if len(linked) > 0 {
			return s.Clusters.performIn(r, nil, linked)
		}
		if oldCluster != nil {
			// The ticket was the only member of its cluster; nothing is left
			// to rebuild, only the stale row to drop.
			if err := r.Cluster.DeleteCluster(*oldCluster); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		return nil
	})
}

func (s *TicketService) ListExpenditures(ticketID uint) ([]ticket.Expenditure, error) {
	t, err := s.Repos.Ticket.GetTicketByID(ticketID)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	return t.Expenditures, nil
}

func (s *TicketService) CreateExpenditure(ticketID uint, input ticket.CreateExpenditureDTO) (*ticket.Expenditure, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(ticketID); err != nil {
		return nil, ErrTicketNotFound
	}
	e := &ticket.Expenditure{
		TicketID:    ticketID,
		Description: input.Description,
		Amount:      input.Amount,
	}
	if input.AccountingInfo != nil {
		e.AccountingInfo = *input.AccountingInfo
	}
	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.CreateExpenditure(e); err != nil {
			return err
		}
		return s.Clusters.performIn(r, []uint{ticketID}, nil)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *TicketService) UpdateExpenditure(id uint, input ticket.UpdateExpenditureDTO) (*ticket.Expenditure, error) {
	e, err := s.Repos.Ticket.GetExpenditureByID(id)
	if err != nil {
		return nil, ErrExpenditureNotFound
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.Amount != nil {
		e.Amount = *input.Amount
	}
	if input.AccountingInfo != nil {
		e.AccountingInfo = *input.AccountingInfo
	}
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.UpdateExpenditure(&e); err != nil {
			return err
		}
		return s.Clusters.performIn(r, []uint{e.TicketID}, nil)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *TicketService) DeleteExpenditure(id uint) error {
	e, err := s.Repos.Ticket.GetExpenditureByID(id)
	if err != nil {
		return ErrExpenditureNotFound
	}
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.DeleteExpenditure(id); err != nil {
			return err
		}
		return s.Clusters.performIn(r, []uint{e.TicketID}, nil)
	})
}

// applySortDate keeps the listing order stable: tickets sort by their event
// date when present, by creation date otherwise.
func applySortDate(t *ticket.Ticket) {
	switch {
	case t.EventDate != nil:
		t.SortDate = *t.EventDate
	case !t.CreatedAt.IsZero():
		t.SortDate = t.CreatedAt
	default:
		t.SortDate = time.Now()
	}
}
