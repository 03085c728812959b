package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/granttrack/granttrack/internal/api/handlers"
	"github.com/granttrack/granttrack/internal/api/middleware"
	"github.com/granttrack/granttrack/internal/application"
	"github.com/granttrack/granttrack/internal/config/db"
	"github.com/granttrack/granttrack/internal/cron"
	"github.com/granttrack/granttrack/internal/events"
	"github.com/granttrack/granttrack/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	repos := repository.NewRepositories(db.DB)
	hub := events.NewHub()
	services := application.New(repos, hub)
	h := handlers.New(services, repos, hub)

	cron.StartCleanupTask(services.Audit)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.User.Me)
		auth.GET("/users", middleware.AdminOnly(), h.User.ListUsers)

		auth.GET("/ws/clusters", h.Events.Stream)

		grants := auth.Group("/grants")
		{
			grants.GET("", h.Topic.ListGrants)
			grants.GET("/:id", h.Topic.GetGrant)
			grants.POST("", middleware.AdminOnly(), h.Topic.CreateGrant)
			grants.GET("/:id/finance", h.Finance.GrantSummary)
		}

		topics := auth.Group("/topics")
		{
			topics.GET("", h.Topic.ListTopics)
			topics.GET("/:id", h.Topic.GetTopic)
			topics.POST("", middleware.AdminOnly(), h.Topic.CreateTopic)
			topics.PUT("/:id", middleware.AdminOnly(), h.Topic.UpdateTopic)
			topics.DELETE("/:id", middleware.AdminOnly(), h.Topic.DeleteTopic)
			topics.GET("/:id/finance", h.Finance.TopicSummary)
			topics.GET("/:id/accepted-expenditures", h.Topic.AcceptedExpenditures)
		}

		tickets := auth.Group("/tickets")
		{
			tickets.GET("", h.Ticket.ListTickets)
			tickets.GET("/:id", h.Ticket.GetTicket)
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.PUT("/:id", h.Ticket.UpdateTicket)
			tickets.DELETE("/:id", middleware.AdminOnly(), h.Ticket.DeleteTicket)

			tickets.GET("/:id/expenditures", h.Ticket.ListExpenditures)
			tickets.POST("/:id/expenditures", h.Ticket.CreateExpenditure)
			tickets.PUT("/:id/expenditures/:expenditure_id", h.Ticket.UpdateExpenditure)
			tickets.DELETE("/:id/expenditures/:expenditure_id", h.Ticket.DeleteExpenditure)

			tickets.GET("/:id/documents", h.Document.ListDocuments)
			tickets.POST("/:id/documents", h.Document.Upload)
		}

		documents := auth.Group("/documents")
		{
			documents.GET("/:id", h.Document.Download)
			documents.DELETE("/:id", h.Document.Delete)
		}

		transactions := auth.Group("/transactions")
		transactions.Use(middleware.AdminOnly())
		{
			transactions.GET("", h.Transaction.ListTransactions)
			transactions.GET("/:id", h.Transaction.GetTransaction)
			transactions.GET("/:id/tickets", h.Transaction.TicketIDs)
			transactions.POST("", h.Transaction.CreateTransaction)
			transactions.PUT("/:id", h.Transaction.UpdateTransaction)
			transactions.DELETE("/:id", h.Transaction.DeleteTransaction)
			transactions.PUT("/:id/tickets/:ticket_id", h.Transaction.LinkTicket)
			transactions.DELETE("/:id/tickets/:ticket_id", h.Transaction.UnlinkTicket)
		}

		clusters := auth.Group("/clusters")
		{
			clusters.GET("", h.Finance.ListClusters)
			clusters.GET("/:id", h.Finance.GetCluster)
			clusters.POST("/refresh", middleware.AdminOnly(), h.Finance.RefreshClusters)
		}
		auth.GET("/finance/sums", h.Finance.ClusterSums)

		auditLogs := auth.Group("/audit")
		auditLogs.Use(middleware.AdminOnly())
		{
			auditLogs.GET("/logs", h.Audit.GetAuditLogs)
			auditLogs.DELETE("/logs", h.Audit.CleanupOldLogs)
		}
	}
}
