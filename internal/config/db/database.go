package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/granttrack/granttrack/internal/config"
	"github.com/granttrack/granttrack/internal/domain/audit"
	"github.com/granttrack/granttrack/internal/domain/cluster"
	"github.com/granttrack/granttrack/internal/domain/document"
	"github.com/granttrack/granttrack/internal/domain/ticket"
	"github.com/granttrack/granttrack/internal/domain/topic"
	"github.com/granttrack/granttrack/internal/domain/transaction"
	"github.com/granttrack/granttrack/internal/domain/user"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate creates or updates the schema for every tracked model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&topic.Grant{},
		&topic.Topic{},
		&ticket.Ticket{},
		&ticket.Expenditure{},
		&transaction.Transaction{},
		&transaction.TicketLink{},
		&cluster.Cluster{},
		&document.Document{},
		&audit.AuditLog{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
