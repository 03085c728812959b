package application

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/granttrack/granttrack/internal/domain/cluster"
	"github.com/granttrack/granttrack/internal/domain/ticket"
	"github.com/granttrack/granttrack/internal/domain/transaction"
	"github.com/granttrack/granttrack/internal/repository"
)

// FinanceStatus is a payment summary over a set of tickets. When a cluster
// spans tickets from more than one topic, its totals are split evenly across
// those topics, which is an approximation; Fuzzy flags summaries carrying
// such apportioned amounts so callers can mark the figures as uncertain.
type FinanceStatus struct {
	Fuzzy    bool            `json:"fuzzy"`
	Unpaid   decimal.Decimal `json:"unpaid"`
	Paid     decimal.Decimal `json:"paid"`
	Overpaid decimal.Decimal `json:"overpaid"`

	seenClusters cluster.IDSet
}

func NewFinanceStatus() *FinanceStatus {
	return &FinanceStatus{
		Unpaid:       decimal.Zero,
		Paid:         decimal.Zero,
		Overpaid:     decimal.Zero,
		seenClusters: cluster.NewIDSet(),
	}
}

// AddFinance merges another summary into this one, used to roll a grant's
// figures up from its topics.
func (f *FinanceStatus) AddFinance(other *FinanceStatus) {
	f.Fuzzy = f.Fuzzy || other.Fuzzy
	f.Unpaid = f.Unpaid.Add(other.Unpaid)
	f.Paid = f.Paid.Add(other.Paid)
	f.Overpaid = f.Overpaid.Add(other.Overpaid)
	f.seenClusters.Update(other.seenClusters)
}

type FinanceService struct {
	Repos *repository.Repos
}

func NewFinanceService(repos *repository.Repos) *FinanceService {
	return &FinanceService{Repos: repos}
}

// PaymentSummary folds every ticket of the topic into a FinanceStatus. It is
// read-only and reflects the last completed cluster update.
func (s *FinanceService) PaymentSummary(topicID uint) (*FinanceStatus, error) {
	tickets, err := s.Repos.Ticket.ListTicketsByTopic(topicID)
	if err != nil {
		return nil, fmt.Errorf("payment summary: tickets of topic %d: %w", topicID, err)
	}
	f := NewFinanceStatus()
	for i := range tickets {
		if err := s.addTicket(f, &tickets[i]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// GrantSummary merges the payment summaries of all the grant's topics.
func (s *FinanceService) GrantSummary(grantID uint) (*FinanceStatus, error) {
	topics, err := s.Repos.Topic.ListTopicsByGrant(grantID)
	if err != nil {
		return nil, fmt.Errorf("grant summary: topics of grant %d: %w", grantID, err)
	}
	f := NewFinanceStatus()
	for _, t := range topics {
		topicFinance, err := s.PaymentSummary(t.ID)
		if err != nil {
			return nil, err
		}
		f.AddFinance(topicFinance)
	}
	return f, nil
}

// addTicket accumulates one ticket. Unpaid and paid tickets contribute their
// own accepted amount. Partially paid and overpaid tickets sit in clusters
// whose totals have to be apportioned instead, and each such cluster is
// counted only once per summary.
func (s *FinanceService) addTicket(f *FinanceStatus, t *ticket.Ticket) error {
	switch t.PaymentStatus {
	case ticket.PaymentStatusUnpaid:
		f.Unpaid = f.Unpaid.Add(t.AcceptedAmount())
	case ticket.PaymentStatusPaid:
		f.Paid = f.Paid.Add(t.AcceptedAmount())
	case ticket.PaymentStatusPartiallyPaid, ticket.PaymentStatusOverpaid:
		if t.ClusterID == nil {
			return fmt.Errorf("payment summary: ticket %d is %q but has no cluster", t.ID, t.PaymentStatus)
		}
		if f.seenClusters.Has(*t.ClusterID) {
			return nil
		}
		f.seenClusters.Add(*t.ClusterID)

		c, err := s.Repos.Cluster.GetClusterByID(*t.ClusterID)
		if err != nil {
			return fmt.Errorf("payment summary: cluster %d: %w", *t.ClusterID, err)
		}
		topicCount, err := s.Repos.Cluster.DistinctTopicCount(c.ID)
		if err != nil {
			return fmt.Errorf("payment summary: topic count of cluster %d: %w", c.ID, err)
		}
		if topicCount > 1 {
			f.Fuzzy = true
		}
		share := decimal.NewFromInt(int64(topicCount))
		if t.PaymentStatus == ticket.PaymentStatusPartiallyPaid {
			f.Paid = f.Paid.Add(c.TotalTransactions.Div(share))
			f.Unpaid = f.Unpaid.Add(c.TotalTickets.Sub(c.TotalTransactions).Div(share))
		} else {
			f.Paid = f.Paid.Add(c.TotalTickets.Div(share))
			f.Overpaid = f.Overpaid.Add(c.TotalTransactions.Sub(c.TotalTickets).Div(share))
		}
	}
	// n/a tickets carry no money either way.
	return nil
}

// ClusterSums aggregates unpaid/paid/overpaid across every cluster straight
// from the cached totals. At the whole-database level no apportionment is
// needed, so the result is exact.
func (s *FinanceService) ClusterSums() (*FinanceStatus, error) {
	clusters, err := s.Repos.Cluster.ListClusters()
	if err != nil {
		return nil, fmt.Errorf("cluster sums: %w", err)
	}
	f := NewFinanceStatus()
	for i := range clusters {
		c := &clusters[i]
		paid := c.TotalTransactions
		owed := c.TotalTickets
		switch {
		case paid.LessThan(owed):
			f.Paid = f.Paid.Add(paid)
			f.Unpaid = f.Unpaid.Add(owed.Sub(paid))
		case paid.Equal(owed):
			f.Paid = f.Paid.Add(owed)
		default:
			f.Paid = f.Paid.Add(owed)
			f.Overpaid = f.Overpaid.Add(paid.Sub(owed))
		}
	}
	return f, nil
}

// ClusterDetail is a cluster together with its member tickets and
// transactions, as served by the reconciliation API.
type ClusterDetail struct {
	Cluster      cluster.Cluster           `json:"cluster"`
	Tickets      []ticket.Ticket           `json:"tickets"`
	Transactions []transaction.Transaction `json:"transactions"`
}

func (s *FinanceService) ClusterDetail(id uint) (*ClusterDetail, error) {
	c, err := s.Repos.Cluster.GetClusterByID(id)
	if err != nil {
		return nil, fmt.Errorf("cluster %d: %w", id, err)
	}
	tickets, err := s.Repos.Ticket.ListTicketsByCluster(id)
	if err != nil {
		return nil, fmt.Errorf("cluster %d tickets: %w", id, err)
	}
	transactions, err := s.Repos.Transaction.ListTransactionsByCluster(id)
	if err != nil {
		return nil, fmt.Errorf("cluster %d transactions: %w", id, err)
	}
	return &ClusterDetail{Cluster: c, Tickets: tickets, Transactions: transactions}, nil
}

func (s *FinanceService) ListClusters() ([]cluster.Cluster, error) {
	return s.Repos.Cluster.ListClusters()
}
