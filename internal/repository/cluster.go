package repository

import (
	"github.com/granttrack/granttrack/internal/domain/cluster"
	"github.com/granttrack/granttrack/internal/domain/ticket"
	"github.com/granttrack/granttrack/internal/domain/transaction"
	"gorm.io/gorm"
)

type ClusterRepo interface {
	GetClusterByID(id uint) (cluster.Cluster, error)
	ListClusters() ([]cluster.Cluster, error)
	CreateCluster(c *cluster.Cluster) error
	SaveCluster(c *cluster.Cluster) error
	DeleteCluster(id uint) error
	DistinctTopicCount(clusterID uint) (int, error)
	WithTx(tx *gorm.DB) ClusterRepo
}

type DBClusterRepo struct {
	db *gorm.DB
}

func NewClusterRepo(db *gorm.DB) *DBClusterRepo {
	return &DBClusterRepo{db: db}
}

func (r *DBClusterRepo) GetClusterByID(id uint) (cluster.Cluster, error) {
	var c cluster.Cluster
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBClusterRepo) ListClusters() ([]cluster.Cluster, error) {
	var clusters []cluster.Cluster
	err := r.db.Order("id").Find(&clusters).Error
	return clusters, err
}

func (r *DBClusterRepo) CreateCluster(c *cluster.Cluster) error {
	return r.db.Create(c).Error
}

func (r *DBClusterRepo) SaveCluster(c *cluster.Cluster) error {
	return r.db.Save(c).Error
}

// DeleteCluster nulls the cluster reference of every member before removing
// the row, mirroring ON DELETE SET NULL. Members that survive in a rebuilt
// component get reassigned immediately afterwards; members that do not
// (transactions left without tickets) must end up clusterless.
func (r *DBClusterRepo) DeleteCluster(id uint) error {
	if err := r.db.Model(&ticket.Ticket{}).Where("cluster_id = ?", id).
		UpdateColumn("cluster_id", nil).Error; err != nil {
		return err
	}
	if err := r.db.Model(&transaction.Transaction{}).Where("cluster_id = ?", id).
		UpdateColumn("cluster_id", nil).Error; err != nil {
		return err
	}
	return r.db.Delete(&cluster.Cluster{}, id).Error
}

func (r *DBClusterRepo) DistinctTopicCount(clusterID uint) (int, error) {
	var count int64
	err := r.db.Model(&ticket.Ticket{}).Where("cluster_id = ?", clusterID).
		Distinct("topic_id").Count(&count).Error
	return int(count), err
}

func (r *DBClusterRepo) WithTx(tx *gorm.DB) ClusterRepo {
	if tx == nil {
		return r
	}
	return &DBClusterRepo{db: tx}
}
