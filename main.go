// File: bot9palace/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bot9palace/config"
	"bot9palace/database"
	roomRepo "bot9palace/database/repository/room"
	transcriptRepo "bot9palace/database/repository/transcript"
	"bot9palace/handlers"
	"bot9palace/routes"
	"bot9palace/services/assistant"
	"bot9palace/services/hotel"
	"bot9palace/services/notification"
	"bot9palace/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitChatContextCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	transcripts := transcriptRepo.NewMongoTranscriptRepo()
	rooms := roomRepo.NewMongoRoomRepo()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := rooms.EnsureSeedData(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed room inventory: %v", err)
	}
	cancelSeed()

	// services.
	hotelService := &hotel.DefaultHotelService{
		Rooms: rooms,
	}

	mailer := notification.NewEmailJSMailer()

	historyStore := assistant.NewRedisHistoryStore(
		utils.GetChatContextCacheClient(),
		time.Duration(config.AppConfig.ChatContextTTLMins)*time.Minute,
	)

	assistantService := &assistant.DefaultAssistantService{
		Completion:   assistant.NewCompletionClientFromConfig(),
		Transcript:   transcripts,
		Hotel:        hotelService,
		Mailer:       mailer,
		History:      historyStore,
		HotelName:    config.AppConfig.HotelName,
		HistoryLimit: config.AppConfig.ChatHistoryLimit,
	}

	chatHandler := handlers.NewChatHandler(assistantService, logger)
	roomsHandler := handlers.NewRoomsHandler(hotelService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:      chatHandler.HandleChat,
		ListRoomsHandler: roomsHandler.ListRoomsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
