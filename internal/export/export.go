package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
	FormatJSON  Format = "json"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
}

// Canonical field order. Union columns preserve this order, so encoding the
// same record sequence twice yields byte-identical output.
var fieldOrder = []string{
	"company",
	"company_url",
	"job_title",
	"job_url",
	"location",
	"posted_date",
	"job_description",
	"applicant_count",
	"level",
	"employment_type",
	"industry",
	"job_function",
	"salary",
	"skills",
	"recruiters",
}

// StoredColumns is the fixed column list used when exporting the persisted
// collection; it matches the stored schema.
func StoredColumns() []string {
	return append([]string(nil), fieldOrder...)
}

// UnionColumns returns the columns present in at least one record, in
// canonical order. Used for ad hoc exports where the set of populated fields
// varies run to run.
func UnionColumns(records []models.JobRecord) []string {
	var columns []string
	for _, field := range fieldOrder {
		for i := range records {
			if fieldValue(&records[i], field) != nil {
				columns = append(columns, field)
				break
			}
		}
	}
	return columns
}

func WriteRecords(w io.Writer, records []models.JobRecord, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, records)
	case FormatCSV:
		return WriteCSV(w, records, UnionColumns(records), ',')
	case FormatTSV:
		return WriteCSV(w, records, UnionColumns(records), '\t')
	default:
		return writeTable(w, records, opts)
	}
}

func writeJSON(w io.Writer, records []models.JobRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteCSV renders one header row plus one row per record. A nil field
// renders as an empty cell, which makes the nil/blank distinction lossy on
// the way out; decoding gives "" for both.
func WriteCSV(w io.Writer, records []models.JobRecord, columns []string, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(columns); err != nil {
		return err
	}
	for i := range records {
		if err := writer.Write(csvRow(&records[i], columns)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func csvRow(rec *models.JobRecord, columns []string) []string {
	row := make([]string, 0, len(columns))
	for _, column := range columns {
		if value := fieldValue(rec, column); value != nil {
			row = append(row, *value)
		} else {
			row = append(row, "")
		}
	}
	return row
}

// fieldValue renders one named field, nil when absent. Skills and recruiters
// flatten to "; "-joined cells.
func fieldValue(rec *models.JobRecord, field string) *string {
	switch field {
	case "company":
		return rec.Company
	case "company_url":
		return rec.CompanyURL
	case "job_title":
		return rec.JobTitle
	case "job_url":
		return rec.JobURL
	case "location":
		return rec.Location
	case "posted_date":
		return rec.PostedDate
	case "job_description":
		return rec.JobDescription
	case "applicant_count":
		return rec.ApplicantCount
	case "level":
		return rec.Level
	case "employment_type":
		return rec.EmploymentType
	case "industry":
		return rec.Industry
	case "job_function":
		return rec.JobFunction
	case "salary":
		return rec.Salary
	case "skills":
		if len(rec.Skills) == 0 {
			return nil
		}
		value := strings.Join(rec.Skills, "; ")
		return &value
	case "recruiters":
		if len(rec.Recruiters) == 0 {
			return nil
		}
		parts := make([]string, 0, len(rec.Recruiters))
		for _, recruiter := range rec.Recruiters {
			parts = append(parts, fmt.Sprintf("%s <%s>", recruiter.Name, recruiter.ProfileURL))
		}
		value := strings.Join(parts, "; ")
		return &value
	}
	return nil
}

func writeTable(w io.Writer, records []models.JobRecord, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
	output := termenv.NewOutput(w)
	for i := range records {
		fmt.Fprintln(tw, strings.Join(tableRow(&records[i], output, opts), "\t"))
	}
	return tw.Flush()
}

func tableHeader() []string {
	return []string{
		"company",
		"job_title",
		"location",
		"job_url",
	}
}

func tableRow(rec *models.JobRecord, output *termenv.Output, opts WriteOptions) []string {
	const linkColor = "#87CEEB"

	displayURL := "-"
	if rec.JobURL != nil && strings.TrimSpace(*rec.JobURL) != "" {
		url := strings.TrimSpace(*rec.JobURL)
		displayURL = url
		if opts.ColorEnabled {
			displayURL = output.String(displayURL).Foreground(output.Color(linkColor)).String()
		}
		if opts.Hyperlinks {
			displayURL = hyperlink(url, displayURL)
		}
	}

	return []string{
		orDash(rec.Company),
		orDash(rec.JobTitle),
		orDash(rec.Location),
		displayURL,
	}
}

func orDash(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "-"
	}
	return strings.TrimSpace(*value)
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}
