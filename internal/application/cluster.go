package application

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/granttrack/granttrack/internal/domain/cluster"
	"github.com/granttrack/granttrack/internal/events"
	"github.com/granttrack/granttrack/internal/repository"
)

// ClusterService maintains the cluster table: every connected component of
// the ticket-transaction link graph that contains at least one ticket has
// exactly one cluster row, identified by its lowest ticket ID, and every
// member points at it. Mutation sites call Perform with the IDs they
// touched; the service tears down and rebuilds exactly the affected
// components and recomputes their payment status.
type ClusterService struct {
	Repos  *repository.Repos
	Events *events.Hub
}

func NewClusterService(repos *repository.Repos, hub *events.Hub) *ClusterService {
	return &ClusterService{Repos: repos, Events: hub}
}

// Perform runs a propagating cluster update for the mentioned tickets and
// transactions inside a single database transaction. Passing an ID that does
// not exist in the store is a caller bug and fails loudly.
func (s *ClusterService) Perform(ticketIDs, transactionIDs []uint) error {
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		return s.performIn(r, ticketIDs, transactionIDs)
	})
}

// performIn is Perform against an already-transactional repository set, for
// callers that mutate rows and rebuild clusters in one transaction.
func (s *ClusterService) performIn(r *repository.Repos, ticketIDs, transactionIDs []uint) error {
	u := &clusterUpdate{
		repos: r,
		todo:  cluster.NewGroup(),
		done:  cluster.NewGroup(),
		hub:   s.Events,
	}
	for _, id := range ticketIDs {
		u.todo.Tickets.Add(id)
	}
	for _, id := range transactionIDs {
		u.todo.Transactions.Add(id)
	}

	for u.todo.HasItems() {
		seed := cluster.NewGroup()
		if u.todo.HasTickets() {
			seed.Tickets.Add(u.todo.Tickets.PopMin())
		} else {
			seed.Transactions.Add(u.todo.Transactions.PopMin())
		}
		if err := u.makeOneCluster(seed); err != nil {
			return err
		}
	}
	return nil
}

// RefreshAll rebuilds every cluster from scratch. This is the recovery path
// for drifted state: it seeds the update with every ticket and transaction
// in the store.
func (s *ClusterService) RefreshAll() error {
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		ticketIDs, err := r.Ticket.ListTicketIDs()
		if err != nil {
			return fmt.Errorf("cluster refresh: list tickets: %w", err)
		}
		transactionIDs, err := r.Transaction.ListTransactionIDs()
		if err != nil {
			return fmt.Errorf("cluster refresh: list transactions: %w", err)
		}
		return s.performIn(r, ticketIDs, transactionIDs)
	})
}

// clusterUpdate holds the context of one propagating update: the todo
// frontier of IDs still waiting for a component traversal, and the done set
// of IDs already assigned to a finished component.
type clusterUpdate struct {
	repos *repository.Repos
	todo  cluster.Group
	done  cluster.Group
	hub   *events.Hub
}

// makeOneCluster expands seed into a full connected component, tears down
// the stale clusters of its members, and persists a fresh cluster if the
// component contains any tickets.
func (u *clusterUpdate) makeOneCluster(seed cluster.Group) error {
	precluster := cluster.NewGroup()

	for seed.HasItems() {
		if seed.HasTickets() {
			id := seed.Tickets.PopMin()
			if _, err := u.repos.Ticket.GetTicketByID(id); err != nil {
				return fmt.Errorf("cluster update: ticket %d: %w", id, err)
			}
			linked, err := u.repos.Ticket.LinkedTransactionIDs(id)
			if err != nil {
				return fmt.Errorf("cluster update: links of ticket %d: %w", id, err)
			}
			for _, trID := range linked {
				if !precluster.Transactions.Has(trID) {
					seed.Transactions.Add(trID)
					u.todo.Transactions.Remove(trID)
				}
			}
			precluster.Tickets.Add(id)
		} else {
			id := seed.Transactions.PopMin()
			if _, err := u.repos.Transaction.GetTransactionByID(id); err != nil {
				return fmt.Errorf("cluster update: transaction %d: %w", id, err)
			}
			linked, err := u.repos.Transaction.LinkedTicketIDs(id)
			if err != nil {
				return fmt.Errorf("cluster update: links of transaction %d: %w", id, err)
			}
			for _, tID := range linked {
				if !precluster.Tickets.Has(tID) {
					seed.Tickets.Add(tID)
					u.todo.Tickets.Remove(tID)
				}
			}
			precluster.Transactions.Add(id)
		}
	}

	// The component is complete; its members are settled in the big picture.
	u.done.Update(precluster)

	// Tear down whatever clusters the members used to belong to. Members of
	// those old clusters that are not part of any finished component get
	// re-queued: severing their cluster can only be resolved by running the
	// component discovery on them too.
	for _, id := range precluster.Tickets.IDs() {
		t, err := u.repos.Ticket.GetTicketByID(id)
		if err != nil {
			return fmt.Errorf("cluster update: ticket %d: %w", id, err)
		}
		if err := u.resetItemCluster(t.ClusterID); err != nil {
			return err
		}
	}
	for _, id := range precluster.Transactions.IDs() {
		tr, err := u.repos.Transaction.GetTransactionByID(id)
		if err != nil {
			return fmt.Errorf("cluster update: transaction %d: %w", id, err)
		}
		if err := u.resetItemCluster(tr.ClusterID); err != nil {
			return err
		}
	}

	if precluster.Tickets.Len() == 0 {
		// No tickets, no cluster; the transactions stay clusterless.
		return nil
	}

	c := &cluster.Cluster{
		ID:          precluster.Tickets.Min(),
		MoreTickets: precluster.Tickets.Len() > 1,
	}
	if err := u.repos.Cluster.CreateCluster(c); err != nil {
		return fmt.Errorf("cluster update: create cluster %d: %w", c.ID, err)
	}
	if err := u.repos.Ticket.SetCluster(precluster.Tickets.IDs(), &c.ID); err != nil {
		return fmt.Errorf("cluster update: assign tickets to cluster %d: %w", c.ID, err)
	}
	if err := u.repos.Transaction.SetCluster(precluster.Transactions.IDs(), &c.ID); err != nil {
		return fmt.Errorf("cluster update: assign transactions to cluster %d: %w", c.ID, err)
	}

	return u.updateStatus(c)
}

// resetItemCluster destroys the cluster a member used to belong to and
// queues all its other members for update, unless they are already done. A
// missing cluster row means an earlier teardown in this same update already
// handled it.
func (u *clusterUpdate) resetItemCluster(clusterID *uint) error {
	if clusterID == nil {
		return nil
	}
	c, err := u.repos.Cluster.GetClusterByID(*clusterID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cluster update: load cluster %d: %w", *clusterID, err)
	}

	ticketIDs, err := u.repos.Ticket.TicketIDsByCluster(c.ID)
	if err != nil {
		return fmt.Errorf("cluster update: members of cluster %d: %w", c.ID, err)
	}
	for _, id := range ticketIDs {
		if !u.done.Tickets.Has(id) {
			u.todo.Tickets.Add(id)
		}
	}

	transactionIDs, err := u.repos.Transaction.TransactionIDsByCluster(c.ID)
	if err != nil {
		return fmt.Errorf("cluster update: members of cluster %d: %w", c.ID, err)
	}
	for _, id := range transactionIDs {
		if !u.done.Transactions.Has(id) {
			u.todo.Transactions.Add(id)
		}
	}

	return u.repos.Cluster.DeleteCluster(c.ID)
}

// updateStatus recomputes the cluster's cached totals from current
// membership, derives the payment status, and writes the status back to
// every member ticket. Ticket writes go through the assignment-only path so
// they cannot re-enter the cluster update.
func (u *clusterUpdate) updateStatus(c *cluster.Cluster) error {
	tickets, err := u.repos.Ticket.ListTicketsByCluster(c.ID)
	if err != nil {
		return fmt.Errorf("cluster status: tickets of cluster %d: %w", c.ID, err)
	}
	totalTickets := decimal.Zero
	ids := make([]uint, 0, len(tickets))
	for i := range tickets {
		totalTickets = totalTickets.Add(tickets[i].AcceptedAmount())
		ids = append(ids, tickets[i].ID)
	}

	transactions, err := u.repos.Transaction.ListTransactionsByCluster(c.ID)
	if err != nil {
		return fmt.Errorf("cluster status: transactions of cluster %d: %w", c.ID, err)
	}
	totalTransactions := decimal.Zero
	for i := range transactions {
		totalTransactions = totalTransactions.Add(transactions[i].Amount)
	}

	c.TotalTickets = totalTickets
	c.TotalTransactions = totalTransactions
	status := c.Status()

	if err := u.repos.Ticket.SetPaymentStatus(ids, status); err != nil {
		return fmt.Errorf("cluster status: update tickets of cluster %d: %w", c.ID, err)
	}
	if err := u.repos.Cluster.SaveCluster(c); err != nil {
		return fmt.Errorf("cluster status: save cluster %d: %w", c.ID, err)
	}

	if u.hub != nil {
		u.hub.Broadcast(events.ClusterStatusEvent{
			ClusterID:         c.ID,
			PaymentStatus:     string(status),
			TotalTickets:      c.TotalTickets.String(),
			TotalTransactions: c.TotalTransactions.String(),
		})
	}
	return nil
}
