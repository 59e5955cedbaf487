package main

import (
	"chat-relay/auth"
	"chat-relay/domain"
	pb "chat-relay/infrastructure/grpc/relaypb"
	grpcserver "chat-relay/infrastructure/grpc/server"
	"chat-relay/infrastructure/websocket"
	"chat-relay/moderation"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning errors instead of exiting lets every deferred cleanup, like closing the
// database, run before the process stops.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	db, err := badger.Open(withBadgerLevel(badger.DefaultOptions(config.BadgerFilepath).
		WithLogger(repositories.NewBadgerLogger(log)), config.LogLevel))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if log.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		log.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, RelayMapper)
	}

	// 3. Collaborators
	tokens := auth.NewTokenManager(config.JwtSecret, config.JwtIssuer)
	messageRepository := repositories.NewMessageRepository(db, log, config.LimitMessages)
	signalRepository := repositories.NewCallSignalRepository(db, log, config.SignalTTL)
	moderator, err := moderation.NewModerator(list(config.CensoredWords), config.CensorCharacter, log)
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}

	// 4. Relay state, built once and shared by every connection
	hub := websocket.NewHub(log)
	registry := runtime.NewRegistry()
	dedup := runtime.NewDedupCache(config.DedupWindow)
	policy := domain.NewSignalPolicy(
		list(config.RoomScopedSignals),
		list(config.MultiTargetSignals),
		list(config.DedupSignals),
	)
	tasks := workers.NewTaskRunner(log, config.TaskBufferSize, config.TaskBufferSize, config.TaskTimeout)

	router := runtime.NewSignalRouter(log, registry, dedup, hub, policy,
		runtime.WithOfflineNotifier(tasks, services.NewLogOfflineNotifier(log)))
	chat := runtime.NewChatRelay(log, messageRepository, hub, moderator, config.MaxContentLength)
	presence := runtime.NewPresenceTracker(hub, log)
	relay := services.NewRelayService(log, tokens, registry, hub, presence, router, chat,
		signalRepository, config.AllowAnonymousJoin)

	// 5. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewTaskReporter(log, tasks.Errors()),
		workers.NewHeartbeatWorker(log, config.HeartbeatInterval,
			func() []any {
				stats := hub.Stats()
				return []any{"connections", stats.Connections, "rooms", stats.Rooms}
			},
			func() []any {
				stats := registry.Stats()
				return []any{"users", stats.Users, "sessions", relay.SessionCount()}
			},
			func() []any { return []any{"dedup_entries", dedup.Len()} },
		),
	)
	go sup.Run(ctx)

	// 6. WebSocket server
	wsServer := websocket.NewServer(log, hub, relay, websocket.Config{
		SendBufferSize:     config.SendBufferSize,
		WriteTimeout:       config.WriteTimeout,
		PongTimeout:        config.PongTimeout,
		MaxFrameBytes:      config.MaxFrameBytes,
		MaxFramesPerSecond: config.MaxFramesPerSecond,
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:           wsServer.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 7. gRPC collaborator API
	grpcAddress := fmt.Sprintf("%s:%d", config.Host, config.GrpcPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}
	s := grpc.NewServer(grpc.UnaryInterceptor(auth.NewAuthInterceptor(tokens, auth.ServiceRole)))
	pb.RegisterNotifierServer(s, grpcserver.NewNotifierServer(log, router))

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting websocket server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("websocket server error: %w", err)
		}
	}()
	go func() {
		log.Info("Starting gRPC server", "address", grpcAddress, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err = <-errChan:
		log.Error("Server failed, shutting down", "error", err)
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Warn("Websocket server did not stop cleanly", "error", shutdownErr)
	}
	s.GracefulStop()
	tasks.Wait()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return err
}

// withBadgerLevel applies the badger logging level matching level; badger's
// level type is unexported, so the options are set here rather than returned.
func withBadgerLevel(opts badger.Options, level string) badger.Options {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return opts.WithLoggingLevel(badger.DEBUG)
	case "WARN", "WARNING":
		return opts.WithLoggingLevel(badger.WARNING)
	case "ERROR":
		return opts.WithLoggingLevel(badger.ERROR)
	default:
		return opts.WithLoggingLevel(badger.INFO)
	}
}

// RelayMapper labels the rows of the debug inspector by key family.
func RelayMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, "msg:"):
		row.Type = "CHAT"
		if message, err := repositories.DecodeMessage(val); err == nil {
			row.Detail = fmt.Sprintf("%s: %s", message.SenderID, message.Content)
		}
	case strings.HasPrefix(key, "sig:"):
		row.Type = "SIGNAL"
		row.Detail = string(val)
	case strings.HasPrefix(key, "idx:"):
		row.Type = "INDEX"
		row.Detail = string(val)
	}
	return row
}
