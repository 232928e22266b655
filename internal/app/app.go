package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "imovel-hub/internal/controller/http"
	"imovel-hub/internal/repo/persistent"
	"imovel-hub/internal/upload"
	"imovel-hub/internal/usecase"
	"imovel-hub/pkg/cache"
	"imovel-hub/pkg/config"
	"imovel-hub/pkg/database"
	"imovel-hub/pkg/jwt"
	"imovel-hub/pkg/logger"
	"imovel-hub/pkg/middleware"
	"imovel-hub/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "imovel-hub/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, login rate limiting disabled: %v", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	usuarioRepo := persistent.NewUsuarioRepository(a.db)
	tipoRepo := persistent.NewTipoRepository(a.db)
	finalidadeRepo := persistent.NewFinalidadeRepository(a.db)
	categoriaRepo := persistent.NewCategoriaRepository(a.db)
	blogCategoriaRepo := persistent.NewBlogCategoriaRepository(a.db)
	imovelRepo := persistent.NewImovelRepository(a.db)
	destaqueRepo := persistent.NewDestaqueRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)

	gateway := upload.NewGateway(a.s3Client)

	authUseCase := usecase.NewAuthUseCase(usuarioRepo, a.jwtService, a.log)
	usuarioUseCase := usecase.NewUsuarioUseCase(usuarioRepo, a.log)
	tipoUseCase := usecase.NewTipoUseCase(tipoRepo)
	finalidadeUseCase := usecase.NewFinalidadeUseCase(finalidadeRepo)
	categoriaUseCase := usecase.NewCategoriaUseCase(categoriaRepo)
	blogCategoriaUseCase := usecase.NewBlogCategoriaUseCase(blogCategoriaRepo)
	imovelUseCase := usecase.NewImovelUseCase(imovelRepo, gateway, a.log)
	destaqueUseCase := usecase.NewDestaqueUseCase(destaqueRepo, gateway, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, gateway, a.log)

	authHandler := controller.NewAuthHandler(authUseCase)
	usuarioHandler := controller.NewUsuarioHandler(usuarioUseCase)
	tipoHandler := controller.NewTipoHandler(tipoUseCase)
	finalidadeHandler := controller.NewFinalidadeHandler(finalidadeUseCase)
	categoriaHandler := controller.NewCategoriaHandler(categoriaUseCase)
	blogCategoriaHandler := controller.NewBlogCategoriaHandler(blogCategoriaUseCase)
	imovelHandler := controller.NewImovelHandler(imovelUseCase)
	destaqueHandler := controller.NewDestaqueHandler(destaqueUseCase)
	postHandler := controller.NewPostHandler(postUseCase)

	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Legacy local uploads, kept readable for listings created before
	// object storage.
	r.Static("/uploads", "./uploads")

	authRequired := middleware.AuthMiddleware(a.jwtService)

	api := r.Group("/api")
	{
		api.POST("/login", middleware.RateLimitMiddleware(a.redisClient, 10, time.Minute), authHandler.Login)
		api.POST("/refresh", authHandler.Refresh)

		usuarios := api.Group("/usuarios", authRequired)
		{
			usuarios.POST("", usuarioHandler.Create)
			usuarios.GET("", usuarioHandler.List)
			usuarios.GET("/:id", usuarioHandler.GetByID)
			usuarios.PUT("/:id", usuarioHandler.Update)
			usuarios.DELETE("/:id", usuarioHandler.Delete)
		}

		api.GET("/tipo", tipoHandler.List)
		api.POST("/tipo", authRequired, tipoHandler.Create)
		api.PUT("/tipo/:id", authRequired, tipoHandler.Update)
		api.DELETE("/tipo/:id", authRequired, tipoHandler.Delete)

		api.GET("/finalidade", finalidadeHandler.List)
		api.POST("/finalidade", authRequired, finalidadeHandler.Create)
		api.PUT("/finalidade/:id", authRequired, finalidadeHandler.Update)
		api.DELETE("/finalidade/:id", authRequired, finalidadeHandler.Delete)

		api.GET("/categorias", categoriaHandler.List)
		api.POST("/categorias", authRequired, categoriaHandler.Create)
		api.PUT("/categorias/:id", authRequired, categoriaHandler.Update)
		api.DELETE("/categorias/:id", authRequired, categoriaHandler.Delete)

		api.GET("/blog-categorias", blogCategoriaHandler.List)
		api.POST("/blog-categorias", authRequired, blogCategoriaHandler.Create)
		api.PUT("/blog-categorias/:id", authRequired, blogCategoriaHandler.Update)
		api.DELETE("/blog-categorias/:id", authRequired, blogCategoriaHandler.Delete)

		api.GET("/imoveis", imovelHandler.List)
		api.GET("/imoveis/id/:id", imovelHandler.GetByID)
		api.GET("/imoveis/:codigo", imovelHandler.GetByCodigo)
		api.POST("/imoveis", authRequired, imovelHandler.Create)
		api.PUT("/imoveis/:id", authRequired, imovelHandler.Update)
		api.DELETE("/imoveis/:id", authRequired, imovelHandler.Delete)

		api.GET("/destaques", destaqueHandler.ListPublic)
		api.GET("/destaques/admin", authRequired, destaqueHandler.ListAdmin)
		api.GET("/destaques/:id", destaqueHandler.GetByID)
		api.POST("/destaques", authRequired, destaqueHandler.Create)
		api.PUT("/destaques/:id", authRequired, destaqueHandler.Update)
		api.DELETE("/destaques/:id", authRequired, destaqueHandler.Delete)

		api.GET("/posts", postHandler.List)
		api.GET("/posts/id/:id", postHandler.GetByID)
		api.GET("/posts/:slug", postHandler.GetBySlug)
		api.POST("/posts", authRequired, postHandler.Create)
		api.PUT("/posts/:id", authRequired, postHandler.Update)
		api.DELETE("/posts/:id", authRequired, postHandler.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Rota não encontrada",
			"message": c.Request.Method + " " + c.Request.URL.Path,
		})
	})

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}
