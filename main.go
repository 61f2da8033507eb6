package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"castlechat/config"
	"castlechat/cron"
	"castlechat/handlers"
	"castlechat/routes"
	"castlechat/services/concierge"
	"castlechat/services/pubdata"
	"castlechat/services/reservation"
	"castlechat/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Session store: in-memory by default, Redis when configured.
	var store reservation.SessionStore
	var redisClients []*redis.Client
	if config.AppConfig.SessionBackend == "redis" {
		utils.InitSessionCache()
		sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		store = reservation.NewRedisStore(utils.GetSessionClient(), sessionTTL)
		redisClients = append(redisClients, utils.GetSessionClient())
	} else {
		store = reservation.NewMemoryStore()
	}

	// Reservation conversation.
	bookingClient := reservation.NewHTTPClient(reservation.ClientOptions{})
	manager := reservation.NewManager(bookingClient)
	reservationHandler := handlers.NewReservationChatHandler(manager, store)

	// Concierge.
	beerFetcher := pubdata.NewBeerFetcher()
	var overview pubdata.OverviewProvider = pubdata.StaticOverviewProvider{}

	llm, err := concierge.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	conciergeSvc := concierge.NewDefaultService(llm, beerFetcher, overview, nil)

	handlerBundle := &handlers.HandlerBundle{
		ReservationChat: reservationHandler,
		Chat:            handlers.NewChatHandler(conciergeSvc),
		StaffChat:       handlers.NewStaffChatHandler(conciergeSvc),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background cache refresh needs the Redis-backed task queue.
	if config.AppConfig.SessionBackend == "redis" {
		cron.InitRefreshWorker(beerFetcher)
	}
	if len(redisClients) > 0 {
		utils.StartHealthMonitor(redisClients)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
