package appServer

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventsphere/server/config"
	repository "github.com/eventsphere/server/internal/database/memory"
	"github.com/eventsphere/server/internal/service"
	"github.com/eventsphere/server/internal/session"
	"github.com/eventsphere/server/internal/transport"
	"github.com/eventsphere/server/internal/worker"
	"github.com/eventsphere/server/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Хранилище живет в памяти процесса: перезапуск теряет все данные,
	// это задокументированное ограничение, а не ошибка
	userRepo := repository.NewUserRepository()
	eventRepo := repository.NewEventRepository()
	registrationRepo := repository.NewRegistrationRepository()
	notificationRepo := repository.NewNotificationRepository()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.App.SeedSampleData {
		if err := repository.SeedSampleData(ctx, userRepo); err != nil {
			logrus.Fatalf("Failed to seed sample data: %v", err)
		}
	}

	// Хранилище сессий: Redis с TTL на стороне сервера либо память
	// процесса с фоновой очисткой
	var sessions session.Store
	switch cfg.Session.Store {
	case "redis":
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()

		redisStore, err := session.NewRedisStore(redisClient, cfg.Session.TTL)
		if err != nil {
			logrus.Fatalf("Failed to connect to Redis: %v", err)
		}
		sessions = redisStore
		logrus.Info("Redis session store initialized")
	default:
		memoryStore := session.NewMemoryStore(cfg.Session.TTL)
		sessions = memoryStore

		cleanupWorker := worker.NewSessionCleanupWorker(memoryStore, cfg.Session.CleanupInterval)
		go cleanupWorker.Start(ctx)
		logrus.Info("In-memory session store initialized")
	}

	// Initialize services
	userService := service.NewUserService(userRepo, registrationRepo)
	eventService := service.NewEventService(eventRepo, registrationRepo)
	registrationService := service.NewRegistrationService(registrationRepo, eventRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// Initialize handlers
	handlers := &transport.Handlers{
		Auth:          transport.NewAuthHandler(userService, sessions, int(cfg.Session.TTL.Seconds()), cfg.Session.CookieSecure),
		Users:         transport.NewUserHandler(userService),
		Events:        transport.NewEventHandler(eventService),
		Registrations: transport.NewRegistrationHandler(registrationService),
		Notifications: transport.NewNotificationHandler(notificationService),
		Analytics:     transport.NewAnalyticsHandler(userService, eventService),
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		router := transport.InitRoutes(handlers, sessions, userService, cfg.Server.Timeout)
		if err := srv.Run(cfg, router); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
