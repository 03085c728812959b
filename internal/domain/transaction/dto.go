package transaction

import "github.com/shopspring/decimal"

type CreateTransactionDTO struct {
	Date           string          `json:"date" binding:"required"` // RFC 3339 date
	OtherUserID    *uint           `json:"other_user_id,omitempty"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Description    *string         `json:"description,omitempty"`
	AccountingInfo *string         `json:"accounting_info,omitempty"`
	TicketIDs      []uint          `json:"ticket_ids,omitempty"`
}

type UpdateTransactionDTO struct {
	Date           *string          `json:"date,omitempty"`
	OtherUserID    *uint            `json:"other_user_id,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Description    *string          `json:"description,omitempty"`
	AccountingInfo *string          `json:"accounting_info,omitempty"`
}

type LinkTicketDTO struct {
	TicketID uint `json:"ticket_id" binding:"required"`
}
