package cron

import (
	"log"
	"time"

	"github.com/granttrack/granttrack/internal/application"
)

// StartCleanupTask prunes expired audit rows once at startup and then daily.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		if err := auditService.CleanupOldLogs(); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}
