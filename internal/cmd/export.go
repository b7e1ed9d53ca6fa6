package cmd

import (
	"context"
	"os"

	"github.com/jagjotsingh7935/linkedInScrapper/internal/export"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/storage"
)

type ExportCmd struct {
	DatabaseURL string `help:"Postgres connection string." env:"LINKEDINSCRAPER_DATABASE_URL"`
	Output      string `name:"output" short:"o" help:"Destination CSV file." default:"jobs_data.csv"`
}

// Run dumps the persisted collection to a CSV file using the fixed
// stored-schema column list.
func (e *ExportCmd) Run(ctx *Context) error {
	databaseURL := firstNonEmpty(e.DatabaseURL, ctx.Config.DatabaseURL)
	if databaseURL == "" {
		return errNoDatabase
	}

	store, err := storage.New(context.Background(), databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background())
	if err != nil {
		return err
	}

	file, err := os.Create(e.Output)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := export.WriteCSV(file, records, export.StoredColumns(), ','); err != nil {
		return err
	}

	ctx.UI.Successf("Exported %d jobs to %s", len(records), e.Output)
	return nil
}
