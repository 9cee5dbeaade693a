package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/config"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/controllers"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/middleware"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/models"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/santa"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("store open error: %v", err)
	}
	log.Println("Connected to MongoDB:", cfg.MongoDB)

	router := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		log.Printf("🎅 Server started on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt (Ctrl+C)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server forced to shutdown:", err)
	}

	if err := db.Close(ctx); err != nil {
		log.Println("Error disconnecting MongoDB:", err)
	} else {
		log.Println("MongoDB disconnected")
	}

	log.Println("Server exited properly")
}

// setupRouter builds the Gin engine with every route wired to its
// controller. Controllers share the one store handle; nothing is global.
func setupRouter(db *store.Store, cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	engine := santa.NewEngine(db)
	authCtl := controllers.NewAuthController(db, cfg.AdminName, cfg.AdminEmail)
	adminCtl := controllers.NewAdminController(db, db, db, db, engine)
	taskCtl := controllers.NewTaskController(db)
	userCtl := controllers.NewUserController(db, db, db)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🎄 Welcome to the Secret Santa Game API!",
			"routes":  []string{"/api/login", "/api/tasks", "/api/admin"},
		})
	})

	api := router.Group("/api")
	{
		api.POST("/login", authCtl.Login)
		api.GET("/init-admin", authCtl.InitAdmin)
		api.GET("/pairings/revealed", userCtl.PairingsRevealed)
		api.GET("/tasks/all", taskCtl.All)

		admin := api.Group("/admin", middleware.Auth(), middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/register-users", adminCtl.RegisterUsers)
			admin.POST("/create-pairings", adminCtl.CreatePairings)
			admin.POST("/clear-data", adminCtl.ClearData)
			admin.GET("/users", adminCtl.ListUsers)
			admin.GET("/pairings", adminCtl.ListPairings)
			admin.POST("/toggle-reveal", adminCtl.ToggleReveal)
		}

		tasks := api.Group("/tasks", middleware.Auth())
		{
			tasks.POST("/create", taskCtl.Create)
			tasks.GET("/user", taskCtl.UserTasks)
			tasks.POST("/:id/assign", taskCtl.Assign)
			tasks.POST("/:id/complete", taskCtl.Complete)
		}

		user := api.Group("/user", middleware.Auth())
		{
			user.GET("/paired-info", userCtl.PairedInfo)
			user.GET("/my-santa", userCtl.MySanta)
			user.GET("/check-password-status", authCtl.CheckPasswordStatus)
			user.POST("/change-password", authCtl.ChangePassword)
		}
	}

	return router
}
