package ticket

import "github.com/shopspring/decimal"

type CreateTicketDTO struct {
	Summary          string  `json:"summary" binding:"required"`
	Description      *string `json:"description,omitempty"`
	TopicID          uint    `json:"topic_id" binding:"required"`
	EventDate        *string `json:"event_date,omitempty"` // RFC 3339 date
	RequestedText    *string `json:"requested_text,omitempty"`
	State            *string `json:"state,omitempty"`
	RatingPercentage *int    `json:"rating_percentage,omitempty"`
}

type UpdateTicketDTO struct {
	Summary          *string `json:"summary,omitempty"`
	Description      *string `json:"description,omitempty"`
	SupervisorNotes  *string `json:"supervisor_notes,omitempty"`
	State            *string `json:"state,omitempty"`
	CustomState      *string `json:"custom_state,omitempty"`
	RatingPercentage *int    `json:"rating_percentage,omitempty"`
	EventDate        *string `json:"event_date,omitempty"`
}

type CreateExpenditureDTO struct {
	Description    string          `json:"description" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	AccountingInfo *string         `json:"accounting_info,omitempty"`
}

type UpdateExpenditureDTO struct {
	Description    *string          `json:"description,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	AccountingInfo *string          `json:"accounting_info,omitempty"`
}
