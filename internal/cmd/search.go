package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jagjotsingh7935/linkedInScrapper/internal/export"
	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
	"github.com/muesli/termenv"
)

const maxSearchLimit = 1000

type SearchCmd struct {
	Keywords string `arg:"" help:"Search keywords."`
	Location string `help:"Job location." required:""`
	Limit    int    `help:"Maximum jobs to collect." env:"LINKEDINSCRAPER_DEFAULT_LIMIT"`
	Format   string `help:"Output format: table, csv, tsv, json." enum:",table,csv,tsv,json" default:""`
	Output   string `name:"output" short:"o" help:"Write output to a file."`
	Proxies  string `help:"Comma-separated proxy URLs." env:"LINKEDINSCRAPER_PROXIES"`
}

func (s *SearchCmd) Run(ctx *Context) error {
	keywords := strings.TrimSpace(s.Keywords)
	location := strings.TrimSpace(s.Location)
	if keywords == "" || location == "" {
		return fmt.Errorf("both keywords and location are required")
	}

	limit := defaultInt(s.Limit, ctx.Config.DefaultLimit)
	if limit < 1 || limit > maxSearchLimit {
		return fmt.Errorf("job limit must be between 1 and %d", maxSearchLimit)
	}

	sc, err := buildScraper(ctx, s.Proxies)
	if err != nil {
		return err
	}

	records := sc.Search(context.Background(), models.SearchParams{
		Keywords: keywords,
		Location: location,
		Limit:    limit,
	})

	writer := ctx.Out
	var file *os.File
	if s.Output != "" {
		file, err = os.Create(s.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	format, err := resolveFormat(ctx, s.Format, s.Output)
	if err != nil {
		return err
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	if err := export.WriteRecords(writer, records, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(writer),
	}); err != nil {
		return err
	}

	if ctx.Err != nil {
		fmt.Fprintf(ctx.Err, "summary: jobs=%d keywords=%q location=%q\n", len(records), keywords, location)
	}
	return nil
}

func resolveFormat(ctx *Context, flagValue string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if flagValue != "" {
		return parseFormat(flagValue)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "tsv":
		return export.FormatTSV, nil
	case "json":
		return export.FormatJSON, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
