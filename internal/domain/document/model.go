package document

import "time"

// Document is the metadata row for one uploaded ticket attachment. The
// payload itself lives in object storage under ObjectKey.
type Document struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID    uint      `gorm:"not null;index" json:"ticket_id"`
	Filename    string    `gorm:"size:120;not null" json:"filename"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `json:"size"`
	ObjectKey   string    `gorm:"size:80;uniqueIndex;not null" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Document) TableName() string {
	return "documents"
}
