package main

import (
	"context"
	"log"
	"os"
	"time"

	"hungryhouse/internal/auth"
	"hungryhouse/internal/category"
	"hungryhouse/internal/db"
	"hungryhouse/internal/images"
	"hungryhouse/internal/ingest"
	"hungryhouse/internal/llm"
	"hungryhouse/internal/menu"
	"hungryhouse/internal/middleware"
	"hungryhouse/internal/order"
	"hungryhouse/internal/storage"
	"hungryhouse/internal/table"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	if os.Getenv("LLM_PROVIDER") == "llama" {
		required = append(required, "LLAMA_API_URL", "LLAMA_MODEL")
	} else {
		required = append(required, "GEMINI_API_KEY", "GEMINI_MODEL")
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	categoryRepo := category.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	tableRepo := table.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	menuService := menu.NewService(menuRepo, r2Client)
	orderService := order.NewService(orderRepo, tableRepo)

	var extractor llm.Extractor = llm.NewGeminiClient()
	if os.Getenv("LLM_PROVIDER") == "llama" {
		extractor = llm.NewLlamaClient()
	}

	ingestPipeline := ingest.NewPipeline(
		extractor,
		images.NewLookup(),
		categoryRepo,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	categoryHandler := category.NewHandler(categoryRepo)
	menuHandler := menu.NewHandler(menuService)
	tableHandler := table.NewHandler(tableRepo)
	orderHandler := order.NewHandler(orderService)
	ingestHandler := ingest.NewHandler(ingestPipeline, menuService)

	staffOnly := []gin.HandlerFunc{
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleStaff, auth.RoleAdmin),
	}
	adminOnly := []gin.HandlerFunc{
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/menu")
	menus.Use(staffOnly...)
	{
		menus.GET("/items", menuHandler.List)
	}

	menuAdmin := r.Group("/menu")
	menuAdmin.Use(adminOnly...)
	{
		menuAdmin.POST("/items", menuHandler.Create)
		menuAdmin.PUT("/items/:id", menuHandler.Update)
		menuAdmin.DELETE("/items/:id", menuHandler.Delete)
		menuAdmin.POST("/items/:id/image", menuHandler.UploadImage)

		// Bulk AI upload: parse free text, review, then commit.
		menuAdmin.POST("/bulk/parse", ingestHandler.Parse)
		menuAdmin.POST("/bulk/commit", ingestHandler.CommitBatch)
	}

	// ───────────────────────── CATEGORY ROUTES ─────────────────────────
	categories := r.Group("/categories")
	categories.Use(staffOnly...)
	{
		categories.GET("", categoryHandler.List)
	}

	categoryAdmin := r.Group("/categories")
	categoryAdmin.Use(adminOnly...)
	{
		categoryAdmin.POST("", categoryHandler.Create)
		categoryAdmin.DELETE("/:id", categoryHandler.Delete)
	}

	// ───────────────────────── TABLE ROUTES ─────────────────────────
	tables := r.Group("/tables")
	tables.Use(staffOnly...)
	{
		tables.GET("", tableHandler.List)
		tables.PATCH("/:id/status", tableHandler.UpdateStatus)
	}

	tableAdmin := r.Group("/tables")
	tableAdmin.Use(adminOnly...)
	{
		tableAdmin.POST("", tableHandler.Create)
		tableAdmin.DELETE("/:id", tableHandler.Delete)
	}

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	orders.Use(staffOnly...)
	{
		orders.POST("", orderHandler.Place)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.DELETE("/:id", orderHandler.Delete)
		orders.GET("/:id/invoice", orderHandler.Invoice)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}
