package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/finiq/backend/internal/advisor"
	"github.com/finiq/backend/internal/config"
	v1 "github.com/finiq/backend/internal/controllers/v1"
	"github.com/finiq/backend/internal/market"
	"github.com/finiq/backend/internal/models"
	"github.com/finiq/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// newsRefreshInterval is the time between two fetches of financial news.
const newsRefreshInterval = 15 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GinMode == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(filepath.Join(cfg.DataDir, "gorm.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := v1.Controller{
		Feed: market.NewSimulator(cfg.MarketTick, nil),
	}

	if cfg.AdvisorURL != "" {
		co.Advisor = advisor.NewService(advisor.NewClient(cfg.AdvisorURL, cfg.AdvisorTimeout))
	} else {
		log.Warn().Msg("ADVISOR_URL is not set, messages are answered locally")
		co.Advisor = advisor.NewService(nil)
	}

	if cfg.NewsEnabled() {
		co.News = market.NewNewsCache(market.NewNewsClient(cfg.NewsURL, cfg.NewsAPIToken, cfg.AdvisorTimeout))
	} else {
		log.Info().Msg("NEWS_API_TOKEN is not set, financial news are disabled")
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(co, r.Group("/"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, r, co); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// run serves the API and runs the market feed and the news refresh until
// ctx is cancelled or one of them fails.
func run(ctx context.Context, cfg config.Config, handler http.Handler, co v1.Controller) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return co.Feed.Run(ctx)
	})

	if co.News != nil {
		g.Go(func() error {
			refreshNews(ctx, co.News)
			return nil
		})
	}

	return g.Wait()
}

// refreshNews fetches the news once and then on every interval. Failures
// are logged by the cache and retried on the next tick.
func refreshNews(ctx context.Context, news *market.NewsCache) {
	_ = news.Refresh(ctx)

	ticker := time.NewTicker(newsRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = news.Refresh(ctx)
		}
	}
}
