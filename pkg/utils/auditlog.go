package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/granttrack/granttrack/internal/domain/audit"
	"github.com/granttrack/granttrack/internal/repository"
)

// LogAuditWithConsole captures request context synchronously, then writes
// the audit row in the background so mutations never wait on it.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(userID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repos); err != nil {
			log.Printf("[LogAudit] error: %v", err)
		}
	}()
}

var LogAudit = func(
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	msg string,
	repos repository.AuditRepo,
) error {
	entry := &audit.AuditLog{
		UserID:       userID,
		IP:           ip,
		UserAgent:    ua,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      msg,
	}
	if before != nil {
		if data, err := json.Marshal(before); err == nil {
			entry.OldData = data
		}
	}
	if after != nil {
		if data, err := json.Marshal(after); err == nil {
			entry.NewData = data
		}
	}
	return repos.CreateAuditLog(entry)
}
