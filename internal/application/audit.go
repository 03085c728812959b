package application

import (
	"log"

	"github.com/granttrack/granttrack/internal/domain/audit"
	"github.com/granttrack/granttrack/internal/repository"
)

const auditRetentionDays = 180

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) GetAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

// CleanupOldLogs drops entries past the retention window.
func (s *AuditService) CleanupOldLogs() error {
	if err := s.Repos.Audit.DeleteOldAuditLogs(auditRetentionDays); err != nil {
		log.Printf("audit cleanup failed: %v", err)
		return err
	}
	return nil
}
