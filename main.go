package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/tmondal/trvl-backend/amadeus"
	"github.com/tmondal/trvl-backend/config"
	"github.com/tmondal/trvl-backend/routes"
	"github.com/tmondal/trvl-backend/store"
	"github.com/tmondal/trvl-backend/utils"
)

func main() {
	godotenv.Load()
	logger := utils.NewLogger()

	client, err := config.ConnectDB()
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to the database")
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			logger.WithError(err).Error("error closing MongoDB connection")
			return
		}
		logger.Info("MongoDB connection closed")
	}()

	db := config.Database(client)
	deps := routes.Deps{
		Users:  store.NewUserMongoDBStore(db),
		Hotels: store.NewHotelMongoDBStore(db),
		Cache:  store.NewCatalogCache(config.InitRedis(logger), logger),
		Logger: logger,
	}

	flights, err := amadeus.New(os.Getenv("AMADEUS_BASE"), os.Getenv("AMADEUS_ID"), os.Getenv("AMADEUS_SECRET"), logger)
	if err != nil {
		logger.WithError(err).Warn("flight search disabled")
	} else {
		deps.Flights = flights
	}

	router := mux.NewRouter()
	routes.Routes(router, deps)

	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Infof("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("error starting server")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("error during server shutdown")
	}
	logger.Info("Server gracefully stopped")
}
