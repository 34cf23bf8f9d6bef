package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/xtding233/ticket-odds/internal/api"
	"github.com/xtding233/ticket-odds/internal/economy"
	"github.com/xtding233/ticket-odds/internal/events"
	"github.com/xtding233/ticket-odds/internal/game"
	"github.com/xtding233/ticket-odds/internal/logger"
	"github.com/xtding233/ticket-odds/internal/rpc"
)

type serveOptions struct {
	configDir     string
	profile       string
	httpAddr      string
	grpcAddr      string
	natsURL       string
	natsSubject   string
	watchInterval time.Duration
	debug         bool
}

func main() {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:           "ticket-odds-server",
		Short:         "Serve ticket economy odds over HTTP and gRPC",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configDir, "config-dir", "configs", "directory holding games/<profile>.yaml")
	f.StringVar(&opts.profile, "profile", game.DefaultProfile, "game profile to serve")
	f.StringVar(&opts.httpAddr, "http-addr", ":8080", "HTTP listen address")
	f.StringVar(&opts.grpcAddr, "grpc-addr", ":9090", "gRPC listen address; empty disables gRPC")
	f.StringVar(&opts.natsURL, "nats-url", "", "publish calculation events to this NATS server")
	f.StringVar(&opts.natsSubject, "nats-subject", events.DefaultSubject, "NATS subject for calculation events")
	f.DurationVar(&opts.watchInterval, "watch-interval", 2*time.Second, "config poll interval; 0 disables hot reload")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Error("Server exited", "err", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, opts serveOptions) error {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Options{Level: level, TimeFormat: time.RFC3339})
	log := logger.L()

	hooks := []economy.Hook{logger.TraceHook(log)}
	if opts.natsURL != "" {
		em, nc, err := events.Connect(opts.natsURL, opts.natsSubject, opts.profile, log)
		if err != nil {
			return err
		}
		defer nc.Close()
		hooks = append(hooks, em.Hook())
		log.Info("Publishing calculation events", "url", opts.natsURL, "subject", opts.natsSubject)
	}

	live, err := game.NewLive(game.NewLoader(opts.configDir), opts.profile, game.Overrides{}, logger.Chain(hooks...))
	if err != nil {
		return err
	}
	log.Info("Config loaded", "profile", live.Profile(), "version", live.Version())

	if opts.watchInterval > 0 {
		w := game.NewFileWatcher(live.Paths(), opts.watchInterval, func(path string) {
			if err := live.Reload(); err != nil {
				log.Error("Reload config failed, keeping previous", "path", path, "err", err)
				return
			}
			log.Info("Config reloaded", "path", path, "version", live.Version())
		})
		w.Start()
		defer w.Stop()
	}

	errCh := make(chan error, 2)

	httpSrv := &http.Server{
		Addr:              opts.httpAddr,
		Handler:           api.NewServer(live, log).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("HTTP listening", "addr", opts.httpAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var grpcSrv *grpc.Server
	if opts.grpcAddr != "" {
		lis, err := net.Listen("tcp", opts.grpcAddr)
		if err != nil {
			return err
		}
		grpcSrv = grpc.NewServer()
		rpc.Register(grpcSrv, rpc.NewServer(live))
		go func() {
			log.Info("gRPC listening", "addr", opts.grpcAddr)
			if err := grpcSrv.Serve(lis); err != nil {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("Shutting down")
	case err = <-errCh:
		log.Error("Listener failed", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	if serr := httpSrv.Shutdown(shutdownCtx); serr != nil {
		log.Error("HTTP shutdown failed", "err", serr)
	}
	return err
}
