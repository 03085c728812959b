package topic

import "time"

// Grant is a funding programme; its financial summary rolls up from the
// summaries of its topics.
type Grant struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"size:255;not null" json:"full_name"`
	ShortName string    `gorm:"size:80;not null" json:"short_name"`
	Slug      string    `gorm:"size:80;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Grant) TableName() string {
	return "grants"
}

// Topic groups tickets inside a grant.
type Topic struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"size:80;not null" json:"name"`
	GrantID         uint      `gorm:"not null;index" json:"grant_id"`
	OpenForTickets  bool      `json:"open_for_tickets"`
	TicketMedia     bool      `json:"ticket_media"`
	TicketExpenses  bool      `json:"ticket_expenses"`
	Description     string    `gorm:"type:text" json:"description"`
	FormDescription string    `gorm:"type:text" json:"form_description"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}
