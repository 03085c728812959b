package cluster

import (
	"github.com/shopspring/decimal"

	"github.com/granttrack/granttrack/internal/domain/ticket"
)

// Cluster is a cache row tracking one connected component of the
// ticket-transaction link graph. Its ID is always the ID of the
// lowest-numbered member ticket, so cluster IDs are derivable and stable.
// Clusters are only ever written by the cluster update; users never edit them.
type Cluster struct {
	ID                uint            `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MoreTickets       bool            `gorm:"not null" json:"more_tickets"`
	TotalTickets      decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_tickets"`
	TotalTransactions decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_transactions"`
}

func (Cluster) TableName() string {
	return "clusters"
}

// Status classifies the cluster's cached totals. Comparisons are exact
// decimal comparisons; amounts are fixed-point currency values.
func (c *Cluster) Status() ticket.PaymentStatus {
	paid := c.TotalTransactions
	owed := c.TotalTickets
	switch {
	case paid.LessThan(owed):
		if paid.IsZero() {
			return ticket.PaymentStatusUnpaid
		}
		return ticket.PaymentStatusPartiallyPaid
	case paid.Equal(owed):
		if owed.IsZero() {
			return ticket.PaymentStatusNA
		}
		return ticket.PaymentStatusPaid
	default:
		return ticket.PaymentStatusOverpaid
	}
}
