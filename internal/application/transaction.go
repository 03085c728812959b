package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/granttrack/granttrack/internal/domain/transaction"
	"github.com/granttrack/granttrack/internal/repository"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionService owns payment mutations and the ticket-transaction
// links. Linking and unlinking are the edits that merge and split clusters.
type TransactionService struct {
	Repos    *repository.Repos
	Clusters *ClusterService
}

func NewTransactionService(repos *repository.Repos, clusters *ClusterService) *TransactionService {
	return &TransactionService{Repos: repos, Clusters: clusters}
}

func (s *TransactionService) GetTransaction(id uint) (*transaction.Transaction, error) {
	tr, err := s.Repos.Transaction.GetTransactionByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return &tr, nil
}

func (s *TransactionService) ListTransactions() ([]transaction.Transaction, error) {
	return s.Repos.Transaction.ListTransactions()
}

func (s *TransactionService) TicketIDs(id uint) ([]uint, error) {
	if _, err := s.Repos.Transaction.GetTransactionByID(id); err != nil {
		return nil, ErrTransactionNotFound
	}
	return s.Repos.Transaction.LinkedTicketIDs(id)
}

func (s *TransactionService) CreateTransaction(input transaction.CreateTransactionDTO) (*transaction.Transaction, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, fmt.Errorf("create transaction: date: %w", err)
	}
	tr := &transaction.Transaction{
		Date:        date,
		OtherUserID: input.OtherUserID,
		Amount:      input.Amount,
	}
	if input.Description != nil {
		tr.Description = *input.Description
	}
	if input.AccountingInfo != nil {
		tr.AccountingInfo = *input.AccountingInfo
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Transaction.CreateTransaction(tr); err != nil {
			return err
		}
		for _, ticketID := range input.TicketIDs {
			if _, err := r.Ticket.GetTicketByID(ticketID); err != nil {
				return fmt.Errorf("create transaction: link ticket %d: %w", ticketID, err)
			}
			if err := r.Transaction.LinkTicket(tr.ID, ticketID); err != nil {
				return err
			}
		}
		return s.Clusters.performIn(r, nil, []uint{tr.ID})
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

func (s *TransactionService) UpdateTransaction(id uint, input transaction.UpdateTransactionDTO) (*transaction.Transaction, error) {
	tr, err := s.Repos.Transaction.GetTransactionByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	if input.Date != nil {
		date, err := time.Parse("2006-01-02", *input.Date)
		if err != nil {
			return nil, fmt.Errorf("update transaction: date: %w", err)
		}
		tr.Date = date
	}
	if input.OtherUserID != nil {
		tr.OtherUserID = input.OtherUserID
	}
	if input.Amount != nil {
		tr.Amount = *input.Amount
	}
	if input.Description != nil {
		tr.Description = *input.Description
	}
	if input.AccountingInfo != nil {
		tr.AccountingInfo = *input.AccountingInfo
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Transaction.UpdateTransaction(&tr); err != nil {
			return err
		}
		// An amount change shifts the cluster totals.
		return s.Clusters.performIn(r, nil, []uint{tr.ID})
	})
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// DeleteTransaction severs all ticket links first, then removes the row and
// rebuilds the components the linked tickets remain in.
func (s *TransactionService) DeleteTransaction(id uint) error {
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		tr, err := r.Transaction.GetTransactionByID(id)
		if err != nil {
			return ErrTransactionNotFound
		}
		linked, err := r.Transaction.LinkedTicketIDs(id)
		if err != nil {
			return err
		}
		if err := r.Transaction.ClearTicketLinks(id); err != nil {
			return err
		}
		if err := r.Transaction.DeleteTransaction(tr.ID); err != nil {
			return err
		}
		if len(linked) > 0 {
			return s.Clusters.performIn(r, linked, nil)
		}
		return nil
	})
}

// LinkTicket adds one edge of the many-to-many association and rebuilds the
// affected components; linking two previously separate clusters merges them.
func (s *TransactionService) LinkTicket(transactionID, ticketID uint) error {
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		if _, err := r.Transaction.GetTransactionByID(transactionID); err != nil {
			return ErrTransactionNotFound
		}
		if _, err := r.Ticket.GetTicketByID(ticketID); err != nil {
			return ErrTicketNotFound
		}
		if err := r.Transaction.LinkTicket(transactionID, ticketID); err != nil {
			return err
		}
		return s.Clusters.performIn(r, nil, []uint{transactionID})
	})
}

// UnlinkTicket removes one edge; the rebuild splits the component if the
// edge was its only bridge.
func (s *TransactionService) UnlinkTicket(transactionID, ticketID uint) error {
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		if _, err := r.Transaction.GetTransactionByID(transactionID); err != nil {
			return ErrTransactionNotFound
		}
		if _, err := r.Ticket.GetTicketByID(ticketID); err != nil {
			return ErrTicketNotFound
		}
		if err := r.Transaction.UnlinkTicket(transactionID, ticketID); err != nil {
			return err
		}
		// Seed with both ends: the rebuild starting from the transaction no
		// longer reaches the unlinked ticket.
		return s.Clusters.performIn(r, []uint{ticketID}, []uint{transactionID})
	})
}
