package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one payment to or from a user. A positive amount is money
// paid to the requester, a negative amount is money paid back by them.
type Transaction struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Date           time.Time       `gorm:"not null" json:"date"`
	OtherUserID    *uint           `json:"other_user_id"`
	Amount         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Description    string          `gorm:"size:255" json:"description"`
	AccountingInfo string          `gorm:"size:255" json:"accounting_info"`
	ClusterID      *uint           `gorm:"index" json:"cluster_id"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TicketLink is one row of the ticket-transaction many-to-many join table.
// The cluster update walks these rows in both directions.
type TicketLink struct {
	TransactionID uint `gorm:"primaryKey;autoIncrement:false" json:"transaction_id"`
	TicketID      uint `gorm:"primaryKey;autoIncrement:false" json:"ticket_id"`
}

func (TicketLink) TableName() string {
	return "ticket_transactions"
}
