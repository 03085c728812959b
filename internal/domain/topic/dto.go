package topic

type CreateTopicDTO struct {
	Name            string  `json:"name" binding:"required"`
	GrantID         uint    `json:"grant_id" binding:"required"`
	OpenForTickets  *bool   `json:"open_for_tickets,omitempty"`
	TicketMedia     *bool   `json:"ticket_media,omitempty"`
	TicketExpenses  *bool   `json:"ticket_expenses,omitempty"`
	Description     *string `json:"description,omitempty"`
	FormDescription *string `json:"form_description,omitempty"`
}

type UpdateTopicDTO struct {
	Name            *string `json:"name,omitempty"`
	OpenForTickets  *bool   `json:"open_for_tickets,omitempty"`
	TicketMedia     *bool   `json:"ticket_media,omitempty"`
	TicketExpenses  *bool   `json:"ticket_expenses,omitempty"`
	Description     *string `json:"description,omitempty"`
	FormDescription *string `json:"form_description,omitempty"`
}

type CreateGrantDTO struct {
	FullName  string `json:"full_name" binding:"required"`
	ShortName string `json:"short_name" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
}
