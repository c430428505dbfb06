package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "kanban/docs"
	"kanban/internal/auth"
	"kanban/internal/config"
	"kanban/internal/handler"
	"kanban/internal/live"
	"kanban/internal/middleware"
	"kanban/internal/migrations"
	"kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Hub    *live.Hub
	Config *config.Config
	log    *zap.Logger
}

func Init(cfg *config.Config, log *zap.Logger) (*Server, error) {
	if cfg.DBAutoMigrate {
		version, err := migrations.Up(cfg.MigrateURL())
		if err != nil {
			return nil, fmt.Errorf("failed to migrate DB: %w", err)
		}
		log.Info("database schema up to date", zap.Uint("version", version))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("connected to database", zap.String("host", cfg.DBHost), zap.String("name", cfg.DBName))

	hub := live.NewHub(log)
	return &Server{
		Engine: NewEngine(cfg, db, hub, log),
		DB:     db,
		Hub:    hub,
		Config: cfg,
		log:    log,
	}, nil
}

// OpenDB connects gorm to the configured postgres database.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	gormLog := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLog = logger.Default.LogMode(logger.Error)
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormLog,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	return db, nil
}

// AdminFromConfig builds the admin credential set from server configuration.
func AdminFromConfig(cfg *config.Config) auth.Admin {
	return auth.Admin{
		Password:      cfg.AdminPassword,
		PasswordHash:  cfg.AdminPasswordHash,
		SessionSecret: []byte(cfg.AdminSessionSecret),
		SessionTTL:    cfg.AdminSessionTTL,
	}
}

// NewEngine wires repositories, handlers and middleware into a gin engine.
func NewEngine(cfg *config.Config, db *gorm.DB, hub *live.Hub, log *zap.Logger) *gin.Engine {
	admin := AdminFromConfig(cfg)

	r := gin.New()
	r.Use(middleware.Logger(log), gin.Recovery())
	r.Use(middleware.AdminContext(admin))
	r.Use(middleware.Notify(hub))

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(db)
	accessRepo := repository.NewBoardAccessRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardRepo, accessRepo, log)
	listHandler := handler.NewListHandler(listRepo, boardRepo, log)
	cardHandler := handler.NewCardHandler(cardRepo, listRepo, memberRepo, labelRepo, log)
	memberHandler := handler.NewTeamMemberHandler(memberRepo, boardRepo, log)
	labelHandler := handler.NewLabelHandler(labelRepo, boardRepo, log)
	checklistHandler := handler.NewChecklistHandler(checklistRepo, cardRepo, log)
	adminHandler := handler.NewAdminHandler(admin, log)
	setupHandler := handler.NewSetupHandler(statsRepo, log)

	// Board routes
	r.GET("/boards", boardHandler.GetAll)
	r.POST("/boards", boardHandler.Create)
	r.GET("/boards/:id", boardHandler.GetByID)
	r.PUT("/boards/:id", boardHandler.Update)
	r.DELETE("/boards/:id", middleware.RequireAdmin(handler.AdminDeleteBoardsMessage), boardHandler.Delete)
	r.POST("/boards/:id/access", boardHandler.ValidateAccess)
	r.POST("/boards/:id/lists/reorder", listHandler.Reorder)

	// List routes
	r.GET("/lists", listHandler.GetByBoard)
	r.POST("/lists", listHandler.Create)
	r.PUT("/lists/:id", listHandler.Update)
	r.DELETE("/lists/:id", listHandler.Delete)

	// Card routes
	r.GET("/cards", cardHandler.GetAll)
	r.POST("/cards", cardHandler.Create)
	r.GET("/cards/:id", cardHandler.GetByID)
	r.PUT("/cards/:id", cardHandler.Update)
	r.DELETE("/cards/:id", cardHandler.Delete)
	r.POST("/cards/:id/assignments", cardHandler.Assign)
	r.DELETE("/cards/:id/assignments", cardHandler.Unassign)
	r.POST("/cards/:id/labels/:labelId", cardHandler.AddLabel)
	r.DELETE("/cards/:id/labels/:labelId", cardHandler.RemoveLabel)

	// Team member routes
	r.GET("/team-members", memberHandler.GetByBoard)
	r.POST("/team-members", memberHandler.Create)
	r.PUT("/team-members/:id", memberHandler.Update)
	r.DELETE("/team-members/:id", memberHandler.Delete)

	// Label routes
	r.GET("/labels", labelHandler.GetByBoard)
	r.POST("/labels", labelHandler.Create)
	r.PUT("/labels/:id", labelHandler.Update)
	r.DELETE("/labels/:id", labelHandler.Delete)

	// Checklist routes
	r.POST("/checklist", checklistHandler.Create)
	r.PUT("/checklist/:id", checklistHandler.Update)
	r.DELETE("/checklist/:id", checklistHandler.Delete)

	r.POST("/admin/login", adminHandler.Login)
	r.GET("/setup/status", setupHandler.Status)
	r.GET("/events", live.ServeWS(hub))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// Handler returns the engine behind the CORS layer.
func (s *Server) Handler() http.Handler {
	return newCORS(s.Config.CORSAllowedOrigins).Handler(s.Engine)
}

func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Content-Type", "Authorization",
			middleware.HeaderAdminSession, middleware.HeaderAdminPassword,
		},
	})
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Hub.Run(ctx)
		return nil
	})
	g.Go(func() error {
		s.log.Info("server listening", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Info("server exited properly")
	return nil
}
