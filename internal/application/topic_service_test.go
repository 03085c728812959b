package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/granttrack/granttrack/internal/domain/topic"
	"github.com/granttrack/granttrack/internal/repository"
	"github.com/granttrack/granttrack/internal/repository/mock"
)

func setupTopicServiceMocks(t *testing.T) (*TopicService, *mock.MockTopicRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTopic := mock.NewMockTopicRepo(ctrl)
	repos := &repository.Repos{
		Topic: mockTopic,
	}
	svc := NewTopicService(repos)
	return svc, mockTopic
}

func TestCreateTopic_Success(t *testing.T) {
	svc, mockTopic := setupTopicServiceMocks(t)

	open := true
	mockTopic.EXPECT().GetGrantByID(uint(1)).Return(topic.Grant{ID: 1}, nil)
	mockTopic.EXPECT().CreateTopic(gomock.Any()).Return(nil)

	created, err := svc.CreateTopic(topic.CreateTopicDTO{
		Name:           "festival",
		GrantID:        1,
		OpenForTickets: &open,
	})
	assert.NoError(t, err)
	assert.Equal(t, "festival", created.Name)
	assert.True(t, created.OpenForTickets)
}

func TestCreateTopic_UnknownGrant(t *testing.T) {
	svc, mockTopic := setupTopicServiceMocks(t)

	mockTopic.EXPECT().GetGrantByID(uint(404)).Return(topic.Grant{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateTopic(topic.CreateTopicDTO{Name: "orphan", GrantID: 404})
	assert.Equal(t, ErrGrantNotFound, err)
}

func TestUpdateTopic_NotFound(t *testing.T) {
	svc, mockTopic := setupTopicServiceMocks(t)

	mockTopic.EXPECT().GetTopicByID(uint(7)).Return(topic.Topic{}, gorm.ErrRecordNotFound)

	name := "renamed"
	_, err := svc.UpdateTopic(7, topic.UpdateTopicDTO{Name: &name})
	assert.Equal(t, ErrTopicNotFound, err)
}

func TestUpdateTopic_PartialPatch(t *testing.T) {
	svc, mockTopic := setupTopicServiceMocks(t)

	existing := topic.Topic{ID: 3, Name: "before", OpenForTickets: true}
	mockTopic.EXPECT().GetTopicByID(uint(3)).Return(existing, nil)
	mockTopic.EXPECT().UpdateTopic(gomock.Any()).Return(nil)

	closed := false
	updated, err := svc.UpdateTopic(3, topic.UpdateTopicDTO{OpenForTickets: &closed})
	assert.NoError(t, err)
	assert.Equal(t, "before", updated.Name)
	assert.False(t, updated.OpenForTickets)
}

func TestDeleteTopic_Success(t *testing.T) {
	svc, mockTopic := setupTopicServiceMocks(t)

	mockTopic.EXPECT().GetTopicByID(uint(2)).Return(topic.Topic{ID: 2}, nil)
	mockTopic.EXPECT().DeleteTopic(uint(2)).Return(nil)

	assert.NoError(t, svc.DeleteTopic(2))
}
