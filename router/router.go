package router

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Norne9/pravda-server/controllers"
	"github.com/Norne9/pravda-server/middlewares"
	"github.com/Norne9/pravda-server/services"
	"github.com/Norne9/pravda-server/store"
)

func SetupRouter(st store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	auth := services.NewAuthService(st)
	salary := services.NewSalaryService(st)

	authCtrl := controllers.NewAuthController(auth)
	userCtrl := controllers.NewUserController(st, auth)
	scheduleCtrl := controllers.NewScheduleController(st)
	revenueCtrl := controllers.NewRevenueController(st)
	payoutCtrl := controllers.NewPayoutController(st)
	salaryCtrl := controllers.NewSalaryController(salary)

	// Frontend assets, if deployed next to the binary
	if assets := os.Getenv("ASSETS_PATH"); assets != "" {
		r.Static("/assets", assets)
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/assets/index.html")
		})
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(auth))
	{
		api.GET("/user", userCtrl.GetUserInfo)
		api.POST("/user/password", userCtrl.ChangePassword)
		api.POST("/user/names", userCtrl.GetUserNames)
		api.GET("/schedule/:year/:month", scheduleCtrl.GetSchedule)
		api.POST("/schedule/workday", scheduleCtrl.SetWorkday)

		// ------------------------------------------------------------
		//                      ADMIN ROUTES
		// ------------------------------------------------------------
		admin := api.Group("/admin")
		admin.Use(middlewares.AdminCheck())
		{
			admin.GET("/users", userCtrl.GetUsers)
			admin.POST("/users", userCtrl.AddUser)
			admin.PATCH("/users", userCtrl.UpdateUser)
			admin.POST("/users/reset-password", userCtrl.ResetPassword)
			admin.GET("/revenue/:year/:month", revenueCtrl.GetRevenue)
			admin.POST("/revenue", revenueCtrl.SetRevenue)
			admin.GET("/payouts/:year/:month", payoutCtrl.GetPayouts)
			admin.POST("/payouts", payoutCtrl.SetPayout)
			admin.GET("/salary/:year/:month", salaryCtrl.GetSalaryCalculation)
		}
	}

	return r
}
