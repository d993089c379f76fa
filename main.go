package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/huddle/cliparse"
	"github.com/danielhkuo/huddle/db"
	"github.com/danielhkuo/huddle/gateway"
	"github.com/danielhkuo/huddle/poll"
	"github.com/danielhkuo/huddle/router"
	"github.com/danielhkuo/huddle/standup"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured database
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Wire the engine and standup service. The logging gateway stands in
	// until a chat-platform binding is configured.
	var gw gateway.Gateway = gateway.Logging{}
	engine := poll.NewEngine(poll.NewStore(), gw)
	standupStore := standup.NewStore(dbConn)
	svc := standup.NewService(standupStore, gw, cfg.ReplyTimeout)

	// Start the daily summary scheduler
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go standup.NewScheduler(svc).Run(ctx)

	// Create router
	mux := router.NewRouter(engine, svc)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
