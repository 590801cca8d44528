package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-retail-erp/internal/bootstrap"
	"go-retail-erp/internal/config"
	"go-retail-erp/internal/ws"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Store
	store, err := bootstrap.OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer store.Close()
	log.Printf("Using %s store", cfg.StoreDriver)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	services := bootstrap.NewServices(cfg, store, wsHub)

	// 5. Setup Fiber + Routes
	app := bootstrap.NewApp(cfg, services, wsHub)

	// 6. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
