package application

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/granttrack/granttrack/internal/domain/topic"
	"github.com/granttrack/granttrack/internal/repository"
)

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrGrantNotFound = errors.New("grant not found")
)

type TopicService struct {
	Repos *repository.Repos
}

func NewTopicService(repos *repository.Repos) *TopicService {
	return &TopicService{Repos: repos}
}

func (s *TopicService) GetTopic(id uint) (*topic.Topic, error) {
	t, err := s.Repos.Topic.GetTopicByID(id)
	if err != nil {
		return nil, ErrTopicNotFound
	}
	return &t, nil
}

func (s *TopicService) ListTopics() ([]topic.Topic, error) {
	return s.Repos.Topic.ListTopics()
}

func (s *TopicService) CreateTopic(input topic.CreateTopicDTO) (*topic.Topic, error) {
	if _, err := s.Repos.Topic.GetGrantByID(input.GrantID); err != nil {
		return nil, ErrGrantNotFound
	}
	t := &topic.Topic{
		Name:    input.Name,
		GrantID: input.GrantID,
	}
	if input.OpenForTickets != nil {
		t.OpenForTickets = *input.OpenForTickets
	}
	if input.TicketMedia != nil {
		t.TicketMedia = *input.TicketMedia
	}
	if input.TicketExpenses != nil {
		t.TicketExpenses = *input.TicketExpenses
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.FormDescription != nil {
		t.FormDescription = *input.FormDescription
	}
	if err := s.Repos.Topic.CreateTopic(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TopicService) UpdateTopic(id uint, input topic.UpdateTopicDTO) (*topic.Topic, error) {
	t, err := s.Repos.Topic.GetTopicByID(id)
	if err != nil {
		return nil, ErrTopicNotFound
	}
	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.OpenForTickets != nil {
		t.OpenForTickets = *input.OpenForTickets
	}
	if input.TicketMedia != nil {
		t.TicketMedia = *input.TicketMedia
	}
	if input.TicketExpenses != nil {
		t.TicketExpenses = *input.TicketExpenses
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.FormDescription != nil {
		t.FormDescription = *input.FormDescription
	}
	if err := s.Repos.Topic.UpdateTopic(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TopicService) DeleteTopic(id uint) error {
	if _, err := s.Repos.Topic.GetTopicByID(id); err != nil {
		return ErrTopicNotFound
	}
	return s.Repos.Topic.DeleteTopic(id)
}

// AcceptedExpenditures sums the accepted amounts of the topic's tickets.
func (s *TopicService) AcceptedExpenditures(id uint) (decimal.Decimal, error) {
	tickets, err := s.Repos.Ticket.ListTicketsByTopic(id)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range tickets {
		total = total.Add(tickets[i].AcceptedAmount())
	}
	return total, nil
}

func (s *TopicService) GetGrant(id uint) (*topic.Grant, error) {
	g, err := s.Repos.Topic.GetGrantByID(id)
	if err != nil {
		return nil, ErrGrantNotFound
	}
	return &g, nil
}

func (s *TopicService) ListGrants() ([]topic.Grant, error) {
	return s.Repos.Topic.ListGrants()
}

func (s *TopicService) CreateGrant(input topic.CreateGrantDTO) (*topic.Grant, error) {
	g := &topic.Grant{
		FullName:  input.FullName,
		ShortName: input.ShortName,
		Slug:      input.Slug,
	}
	if err := s.Repos.Topic.CreateGrant(g); err != nil {
		return nil, err
	}
	return g, nil
}
