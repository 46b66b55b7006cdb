package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"roomstayAdmin/internal/realtime"
	"roomstayAdmin/internal/router"
	"roomstayAdmin/internal/storage/postgres"
	"roomstayAdmin/internal/storage/redis"
)

func main() {
	_ = godotenv.Load()

	database, err := postgres.New()
	if err != nil {
		log.Fatal(err)
	}

	defer database.Db.Close()

	cache, err := redis.New()
	if err != nil {
		log.Fatal(err)
	}

	defer cache.Client.Close()

	hub := realtime.NewHub(cache.Client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx, realtime.PendingCountTopic, realtime.SystemLogTopic)

	handler := router.New(database, cache, cache, hub)

	addr := os.Getenv(`LISTEN_ADDR`)
	if addr == `` {
		addr = `:8080`
	}

	slog.Info(`Admin API listening`, `addr`, addr)

	log.Fatal(http.ListenAndServe(addr, handler))
}
