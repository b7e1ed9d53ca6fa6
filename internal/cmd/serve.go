package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jagjotsingh7935/linkedInScrapper/internal/config"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/network"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/scraper"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/server"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/storage"
)

type ServeCmd struct {
	Addr        string `help:"Listen address." env:"LINKEDINSCRAPER_ADDR"`
	DatabaseURL string `help:"Postgres connection string. Empty disables the persisted routes." env:"LINKEDINSCRAPER_DATABASE_URL"`
	Proxies     string `help:"Comma-separated proxy URLs." env:"LINKEDINSCRAPER_PROXIES"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	addr := firstNonEmpty(s.Addr, ctx.Config.ListenAddr, ":8000")
	databaseURL := firstNonEmpty(s.DatabaseURL, ctx.Config.DatabaseURL)

	sc, err := buildScraper(ctx, s.Proxies)
	if err != nil {
		return err
	}

	var store server.JobStore
	if databaseURL != "" {
		pg, err := storage.New(context.Background(), databaseURL)
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.EnsureSchema(context.Background()); err != nil {
			return err
		}
		store = pg
	} else {
		ctx.UI.Warnf("No database configured; persisted routes disabled")
	}

	srv := server.New(sc, store, ctx.Logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildScraper(ctx *Context, proxiesFlag string) (*scraper.Scraper, error) {
	proxies, err := config.LoadProxies(proxiesFlag)
	if err != nil {
		return nil, err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return nil, err
		}
		ctx.Logger.Debug().Int("proxies", rotator.Size()).Msg("proxy rotation enabled")
	}

	client, err := network.NewClient(rotator)
	if err != nil {
		return nil, err
	}
	return scraper.New(client, ctx.Logger), nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
