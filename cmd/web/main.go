// cmd/web/main.go
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/viniciusgf/painelcontabil/internal/api/handlers"
	"github.com/viniciusgf/painelcontabil/internal/api/middleware"
	"github.com/viniciusgf/painelcontabil/internal/api/responses"
	"github.com/viniciusgf/painelcontabil/internal/core/ingest"
	"github.com/viniciusgf/painelcontabil/internal/core/state"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()
	responses.InitLogger()

	store := state.NewStore()
	ingestService := ingest.NewService()

	clientHandler := handlers.NewClientHandler(store)
	taskHandler := handlers.NewTaskHandler(store)
	dashboardHandler := handlers.NewDashboardHandler(store)
	importHandler := handlers.NewImportHandler(store, ingestService)

	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/clients", clientHandler.List)
		apiV1.POST("/clients", clientHandler.Create)
		apiV1.GET("/clients/:id", clientHandler.Get)
		apiV1.GET("/clients/:id/financials", clientHandler.Financials)
		apiV1.GET("/clients/:id/dashboard", clientHandler.Dashboard)
		apiV1.POST("/clients/:id/import", middleware.RateLimit(rate.Limit(1), 3), importHandler.HandleImport)

		apiV1.GET("/employees", dashboardHandler.Employees)
		apiV1.GET("/office/dashboard", dashboardHandler.Office)

		apiV1.GET("/tasks", taskHandler.List)
		apiV1.POST("/tasks", taskHandler.Create)
		apiV1.PATCH("/tasks/:id", taskHandler.Update)
		apiV1.POST("/tasks/:id/advance", taskHandler.Advance)
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Servidor iniciado e escutando na porta %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Falha ao iniciar o servidor: ", err)
	}
}
