package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"schedulepro-backend/config"
	"schedulepro-backend/controllers"
	"schedulepro-backend/docstore"
	"schedulepro-backend/routes"
	"schedulepro-backend/scheduling"
	"schedulepro-backend/services"
	"schedulepro-backend/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	docs, err := docstore.New(cfg.DocumentsDir)
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}

	sys, err := scheduling.NewSystem(store, docs)
	if err != nil {
		log.Fatalf("Failed to load scheduling data: %v", err)
	}

	reminders := services.NewReminderService(sys, cfg)
	reminders.StartScheduler()

	api := controllers.NewAPI(sys, docs, store)
	r := routes.SetupRouter(api)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "postgres":
		return storage.NewGormStore(cfg.DBURL)
	case "json", "":
		return storage.NewJSONFileStore(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
