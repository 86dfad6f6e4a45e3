package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/aretw0/fluix"
	"github.com/aretw0/fluix/internal/config"
	httpAdapter "github.com/aretw0/fluix/pkg/adapters/http"
	redisAdapter "github.com/aretw0/fluix/pkg/adapters/redis"
	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/observability"
	"github.com/aretw0/fluix/pkg/spring"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts a toaster exposed as a JSON API over HTTP, with SSE and WebSocket
snapshot streams and Prometheus metrics.

Settings are read from FLUIX_* environment variables; flags take precedence.
When FLUIX_REDIS_ADDR is set, every snapshot is saved to Redis and published
on the snapshot channel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadServer()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("metrics-addr") {
			cfg.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		}
		if cmd.Flags().Changed("redis") {
			cfg.RedisAddr, _ = cmd.Flags().GetString("redis")
		}

		logger, err := newLogger(cmd, cfg.LogLevel)
		if err != nil {
			return err
		}
		file, err := loadFile(cmd, cfg.ConfigFile)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, file, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (FLUIX_ADDR)")
	serveCmd.Flags().String("metrics-addr", "", "Separate address for /metrics (FLUIX_METRICS_ADDR)")
	serveCmd.Flags().String("redis", "", "Redis address for snapshot mirroring (FLUIX_REDIS_ADDR)")
}

func serve(ctx context.Context, cfg config.Server, file *config.File, logger *slog.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	m := machine.New(
		machine.WithLogger(logger),
		machine.WithConfig(file.Config),
		machine.WithAutoDismiss(cfg.AutoDismiss),
		machine.WithLifecycleHooks(domain.Combine(metrics.Hooks(), observability.LoggingHooks(logger))),
	)
	defer m.Destroy()

	var httpOpts []httpAdapter.Option
	httpOpts = append(httpOpts, httpAdapter.WithLogger(logger))
	if file.Spring != (spring.Config{}) {
		httpOpts = append(httpOpts, httpAdapter.WithSpring(file.Spring))
	}
	api := httpAdapter.New(m, httpOpts...)
	defer api.Close()

	sinks := []fluix.Sink{func(_ context.Context, s *domain.Snapshot) error {
		metrics.Observe(s)
		return nil
	}}
	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis unreachable at %s: %w", cfg.RedisAddr, err)
		}
		store := redisAdapter.NewFromClient(client)
		publisher := redisAdapter.NewPublisher(client, redisAdapter.WithPublisherLogger(logger))
		sinks = append(sinks, fluix.SaveTo(store, cfg.SnapshotKey), publisher.Publish)
		logger.Info("Mirroring snapshots to Redis", "address", cfg.RedisAddr, "key", cfg.SnapshotKey)
	}

	mirrorCtx, cancelMirror := context.WithCancel(ctx)
	mirrorDone := make(chan struct{})
	go func() {
		defer close(mirrorDone)
		fluix.Mirror(mirrorCtx, m, logger, sinks...)
	}()
	defer func() {
		cancelMirror()
		<-mirrorDone
	}()

	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	mux := http.NewServeMux()
	mux.Handle("/", api.Handler())

	// Request contexts derive from ctx so streaming clients end on shutdown.
	baseContext := func(net.Listener) context.Context { return ctx }
	servers := []*http.Server{{Addr: cfg.Addr, Handler: mux, BaseContext: baseContext}}
	if cfg.MetricsAddr == "" {
		mux.Handle("/metrics", metricsHandler)
	} else {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", metricsHandler)
		servers = append(servers, &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux})
	}

	// Channel to listen for errors coming from the listeners.
	serverErrors := make(chan error, len(servers))
	for _, srv := range servers {
		go func() {
			logger.Info("Starting Fluix Server", "address", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()
	}

	select {
	case err := <-serverErrors:
		shutdown(servers, cfg, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Start shutdown...")
		shutdown(servers, cfg, logger)
		logger.Info("Fluix Server stopped gracefully")
		return nil
	}
}

// shutdown gives outstanding requests cfg.ShutdownTimeout to complete.
func shutdown(servers []*http.Server, cfg config.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "address", srv.Addr, "timeout", cfg.ShutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				logger.Error("Error killing server", "address", srv.Addr, "error", err)
			}
		}
	}
}
