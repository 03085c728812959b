package testutils

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/granttrack/granttrack/internal/api/routes"
	"github.com/granttrack/granttrack/internal/config/db"
)

func SetupRouter(gdb *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db.InitWithGormDB(gdb)
	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}
