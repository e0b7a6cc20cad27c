package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"justeat-backend/cache"
	"justeat-backend/configs"
	"justeat-backend/middlewares"
	"justeat-backend/notify"
	"justeat-backend/routes"
	"justeat-backend/services"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDemoData(db); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	// Notification sink (optional)
	var notifier services.Notifier = services.NopNotifier{}
	if len(cfg.KafkaBrokers) > 0 {
		kn := notify.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kn.Close()
		notifier = kn
	}

	// Menu cache (optional)
	var kv services.KVCache
	if cfg.RedisAddr != "" {
		rc := cache.NewRedisCache(cfg.RedisAddr)
		defer rc.Close()
		kv = rc
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, notifier, kv)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
