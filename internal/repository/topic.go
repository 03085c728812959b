package repository

import (
	"github.com/granttrack/granttrack/internal/domain/topic"
	"gorm.io/gorm"
)

type TopicRepo interface {
	GetTopicByID(id uint) (topic.Topic, error)
	ListTopics() ([]topic.Topic, error)
	ListTopicsByGrant(grantID uint) ([]topic.Topic, error)
	CreateTopic(t *topic.Topic) error
	UpdateTopic(t *topic.Topic) error
	DeleteTopic(id uint) error
	GetGrantByID(id uint) (topic.Grant, error)
	ListGrants() ([]topic.Grant, error)
	CreateGrant(g *topic.Grant) error
	WithTx(tx *gorm.DB) TopicRepo
}

type DBTopicRepo struct {
	db *gorm.DB
}

func NewTopicRepo(db *gorm.DB) *DBTopicRepo {
	return &DBTopicRepo{db: db}
}

func (r *DBTopicRepo) GetTopicByID(id uint) (topic.Topic, error) {
	var t topic.Topic
	err := r.db.First(&t, id).Error
	return t, err
}

func (r *DBTopicRepo) ListTopics() ([]topic.Topic, error) {
	var topics []topic.Topic
	err := r.db.Order("name").Find(&topics).Error
	return topics, err
}

func (r *DBTopicRepo) ListTopicsByGrant(grantID uint) ([]topic.Topic, error) {
	var topics []topic.Topic
	err := r.db.Where("grant_id = ?", grantID).Order("name").Find(&topics).Error
	return topics, err
}

func (r *DBTopicRepo) CreateTopic(t *topic.Topic) error {
	return r.db.Create(t).Error
}

func (r *DBTopicRepo) UpdateTopic(t *topic.Topic) error {
	return r.db.Save(t).Error
}

func (r *DBTopicRepo) DeleteTopic(id uint) error {
	return r.db.Delete(&topic.Topic{}, id).Error
}

func (r *DBTopicRepo) GetGrantByID(id uint) (topic.Grant, error) {
	var g topic.Grant
	err := r.db.First(&g, id).Error
	return g, err
}

func (r *DBTopicRepo) ListGrants() ([]topic.Grant, error) {
	var grants []topic.Grant
	err := r.db.Order("short_name").Find(&grants).Error
	return grants, err
}

func (r *DBTopicRepo) CreateGrant(g *topic.Grant) error {
	return r.db.Create(g).Error
}

func (r *DBTopicRepo) WithTx(tx *gorm.DB) TopicRepo {
	if tx == nil {
		return r
	}
	return &DBTopicRepo{db: tx}
}
