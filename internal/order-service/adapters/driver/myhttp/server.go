package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"fuelgo/internal/config"
	"fuelgo/internal/mylogger"
	"fuelgo/internal/order-service/adapters/driven/bm"
	"fuelgo/internal/order-service/adapters/driven/cache"
	"fuelgo/internal/order-service/adapters/driven/consumer"
	"fuelgo/internal/order-service/adapters/driven/db"
	"fuelgo/internal/order-service/adapters/driver/myhttp/handle"
	"fuelgo/internal/order-service/adapters/driver/myhttp/middleware"
	"fuelgo/internal/order-service/adapters/driver/myhttp/ws"
	"fuelgo/internal/order-service/core/ports"
	"fuelgo/internal/order-service/core/services"
)

const WaitTime = 10

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     *db.DB
	mb     ports.IOrderBroker
	cache  ports.ICacheRepo
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	s := &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}

	return s
}

// Run initializes routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	// Initialize database connection
	database, err := db.New(s.ctx, s.cfg.DB, mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = database
	mylog.Info("Successful database connection")

	// Initialize RabbitMQ connection
	mb, err := bm.New(s.appCtx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	mylog.Info("Successful message broker connection")

	// Initialize Redis connection
	redisCache, err := cache.New(s.ctx, s.cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	s.cache = redisCache
	mylog.Info("Successful redis connection")

	// Configure routes and handlers
	if err := s.Configure(); err != nil {
		return err
	}

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.OrderServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.OrderServicePort)

	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	s.wg.Wait()

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Info("Database closed")
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
			return fmt.Errorf("broker close: %w", err)
		}
		s.mylog.Info("Message broker closed")
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.mylog.Error("Failed to close redis", err)
			return fmt.Errorf("redis close: %w", err)
		}
		s.mylog.Info("Redis closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure sets up repositories, core services and the HTTP routes.
func (s *Server) Configure() error {
	// Repositories
	orderRepo := db.NewOrderRepo(s.db)
	ratingRepo := db.NewRatingRepo(s.db)

	// services
	orderService := services.NewOrderService(s.mylog, orderRepo, s.mb, s.cache)
	ratingService := services.NewRatingService(s.mylog, ratingRepo, orderRepo)

	// handlers
	orderHandler := handle.NewOrderHandler(orderService, s.mylog)
	ratingHandler := handle.NewRatingHandler(ratingService, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.JwtSecret)

	dispatcher := ws.NewDispatcher(s.appCtx, s.mylog, s.cfg.App.JwtSecret)

	// broker -> websocket notification pump
	notifications := consumer.New(s.appCtx, s.mylog, dispatcher, s.mb)
	if err := notifications.Run(); err != nil {
		return fmt.Errorf("failed to start notification consumer: %w", err)
	}

	// Register routes
	s.mux.Handle("POST /orders", authMiddleware.Wrap(orderHandler.CreateOrder()))
	s.mux.Handle("GET /orders", authMiddleware.Wrap(orderHandler.ListOrders()))
	s.mux.Handle("GET /orders/{order_id}", authMiddleware.Wrap(orderHandler.GetOrder()))
	s.mux.Handle("PATCH /orders/{order_id}/status", authMiddleware.Wrap(orderHandler.UpdateStatus()))

	s.mux.Handle("POST /ratings", authMiddleware.Wrap(ratingHandler.CreateRating()))
	s.mux.Handle("GET /ratings", authMiddleware.Wrap(ratingHandler.ListRatings()))

	s.mux.Handle("GET /health", handle.Health())

	// websocket routes
	s.mux.Handle("/ws/customers/{customer_id}", dispatcher.WsHandler())

	return nil
}
