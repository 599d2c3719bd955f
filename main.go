package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/config"
	"github.com/VersaceXcodes/todo-app/middleware"
	"github.com/VersaceXcodes/todo-app/routes"
	"github.com/VersaceXcodes/todo-app/services"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := config.OpenDB(conf)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	gateway := store.New(db)

	if err := store.Bootstrap(context.Background(), gateway); err != nil {
		log.Fatalf("failed to bootstrap database: %v", err)
	}

	if conf.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r, conf)
	routes.RegisterRoutes(r, routes.Deps{
		DB:       gateway,
		Tokens:   utils.NewTokenManager(conf.JWTSecret, time.Duration(conf.TokenTTLHours)*time.Hour),
		Notifier: &services.LogNotifier{Logger: config.Logger},
	})

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server starting", "port", conf.ServerPort, "environment", conf.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	config.Logger.Infow("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Logger.Errorw("forced shutdown", "error", err)
	}
}
