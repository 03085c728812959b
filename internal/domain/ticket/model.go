package ticket

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketState tracks a ticket through its review lifecycle.
type TicketState string

const (
	StateDraft            TicketState = "draft"
	StateForConsideration TicketState = "for consideration"
	StateAccepted         TicketState = "accepted"
	StateExpensesFiled    TicketState = "expenses filed"
	StateClosed           TicketState = "closed"
	StateCustom           TicketState = "custom"
)

// PaymentStatus is derived from the ticket's cluster totals; it is only
// ever written by the cluster status update, never by users.
type PaymentStatus string

const (
	PaymentStatusNA            PaymentStatus = "n/a"
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially paid"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusOverpaid      PaymentStatus = "overpaid"
)

// Ticket is one unit of tracked / paid stuff.
type Ticket struct {
	ID               uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Summary          string        `gorm:"size:100;not null" json:"summary"`
	Description      string        `gorm:"type:text" json:"description"`
	SupervisorNotes  string        `gorm:"type:text" json:"supervisor_notes"`
	TopicID          uint          `gorm:"not null;index" json:"topic_id"`
	RequestedUserID  *uint         `json:"requested_user_id"`
	RequestedText    string        `gorm:"size:30" json:"requested_text"`
	State            TicketState   `gorm:"size:20;not null;default:'draft'" json:"state"`
	CustomState      string        `gorm:"size:100" json:"custom_state"`
	RatingPercentage *int          `json:"rating_percentage"`
	EventDate        *time.Time    `json:"event_date"`
	SortDate         time.Time     `json:"sort_date"`
	ClusterID        *uint         `gorm:"index" json:"cluster_id"`
	PaymentStatus    PaymentStatus `gorm:"size:20;not null;default:'n/a'" json:"payment_status"`
	Expenditures     []Expenditure `gorm:"foreignKey:TicketID" json:"expenditures,omitempty"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// ExpenditureTotal sums the filed expenditure amounts regardless of state.
func (t *Ticket) ExpenditureTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Expenditures {
		total = total.Add(e.Amount)
	}
	return total
}

// AcceptedAmount is the money owed to the requester: the expenditure total
// scaled by the topic administrator's rating percentage. Anything not yet in
// the "expenses filed" state, or without a rating, is worth zero.
// Requires Expenditures to be loaded.
func (t *Ticket) AcceptedAmount() decimal.Decimal {
	if t.State != StateExpensesFiled || t.RatingPercentage == nil {
		return decimal.Zero
	}
	rating := decimal.NewFromInt(int64(*t.RatingPercentage))
	return t.ExpenditureTotal().Mul(rating).Div(decimal.NewFromInt(100))
}

// RequestedBy prefers the linked user, falling back to the free-text field.
func (t *Ticket) RequestedBy(username string) string {
	if t.RequestedUserID != nil && username != "" {
		return username
	}
	return t.RequestedText
}

// Expenditure is one expense line filed against a ticket.
type Expenditure struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID       uint            `gorm:"not null;index" json:"ticket_id"`
	Description    string          `gorm:"size:255;not null" json:"description"`
	Amount         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	AccountingInfo string          `gorm:"size:255" json:"accounting_info"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Expenditure) TableName() string {
	return "expenditures"
}
