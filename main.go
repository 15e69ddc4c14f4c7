package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Norne9/pravda-server/config"
	"github.com/Norne9/pravda-server/middlewares"
	"github.com/Norne9/pravda-server/models"
	"github.com/Norne9/pravda-server/router"
	"github.com/Norne9/pravda-server/services"
	"github.com/Norne9/pravda-server/store"
	"github.com/Norne9/pravda-server/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	st := store.NewGormStore(db)
	seedAdmin(st)

	r := router.SetupRouter(st)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.ScheduleEntry{},
		&models.RevenueEntry{},
		&models.PayoutRecord{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedAdmin creates the initial admin account on an empty database so a
// fresh instance can be logged into at all.
func seedAdmin(st store.Store) {
	users, err := st.GetUsers(nil)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to read users: %v", err)
	}
	if len(users) > 0 {
		return
	}

	auth := services.NewAuthService(st)
	admin := models.User{
		Login:   "admin",
		Name:    "Administrator",
		IsAdmin: true,
	}
	if err := auth.AddUser(&admin); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed admin user: %v", err)
	}
	utils.InfoLogger.Printf("Seeded admin user %q with the default password, change it immediately", admin.Login)
}
