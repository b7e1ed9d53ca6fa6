package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/jagjotsingh7935/linkedInScrapper/internal/models"
)

func strPtr(v string) *string { return &v }

func sampleRecords() []models.JobRecord {
	return []models.JobRecord{
		{
			Company:  strPtr("Acme Corp"),
			JobTitle: strPtr("Data Engineer"),
			Location: strPtr("New York, NY"),
			Salary:   strPtr("$120,000 - $150,000 per year"),
			Skills:   []string{"python", "sql"},
		},
		{
			Company:  strPtr("Beta, Inc"),
			JobTitle: strPtr("Platform Engineer"),
			Location: strPtr("Austin, TX"),
			Recruiters: []models.Recruiter{
				{Name: "Jane Doe", ProfileURL: "https://www.linkedin.com/in/jane-doe"},
			},
		},
	}
}

func TestUnionColumns(t *testing.T) {
	columns := UnionColumns(sampleRecords())

	want := []string{"company", "job_title", "location", "salary", "skills", "recruiters"}
	if len(columns) != len(want) {
		t.Fatalf("got columns %v, want %v", columns, want)
	}
	for i := range want {
		if columns[i] != want[i] {
			t.Fatalf("columns[%d] = %q, want %q", i, columns[i], want[i])
		}
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records, UnionColumns(records), ','); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("read back csv: %v", err)
	}
	if len(rows) != len(records)+1 {
		t.Fatalf("expected %d rows, got %d", len(records)+1, len(rows))
	}

	header := rows[0]
	byColumn := func(row []string, name string) string {
		for i, col := range header {
			if col == name {
				return row[i]
			}
		}
		t.Fatalf("column %q missing from header %v", name, header)
		return ""
	}

	if got := byColumn(rows[1], "company"); got != "Acme Corp" {
		t.Fatalf("company = %q", got)
	}
	if got := byColumn(rows[1], "skills"); got != "python; sql" {
		t.Fatalf("skills = %q", got)
	}
	if got := byColumn(rows[2], "company"); got != "Beta, Inc" {
		t.Fatalf("quoted company = %q", got)
	}
	if got := byColumn(rows[2], "recruiters"); got != "Jane Doe <https://www.linkedin.com/in/jane-doe>" {
		t.Fatalf("recruiters = %q", got)
	}

	// Nil fields decode to empty string: the nil/blank distinction is lossy
	// on export, by design.
	if got := byColumn(rows[2], "salary"); got != "" {
		t.Fatalf("expected empty cell for nil salary, got %q", got)
	}
}

func TestWriteCSV_Idempotent(t *testing.T) {
	records := sampleRecords()

	var first, second bytes.Buffer
	if err := WriteCSV(&first, records, UnionColumns(records), ','); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteCSV(&second, records, UnionColumns(records), ','); err != nil {
		t.Fatalf("second write: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("expected byte-identical output for repeated export")
	}
}

func TestStoredColumns_CoverAllFields(t *testing.T) {
	columns := StoredColumns()
	if len(columns) != 15 {
		t.Fatalf("expected 15 stored columns, got %d: %v", len(columns), columns)
	}

	// Mutating the returned slice must not leak into the canonical order.
	columns[0] = "mutated"
	if StoredColumns()[0] != "company" {
		t.Fatal("StoredColumns returned shared backing array")
	}
}

func TestWriteRecords_JSONIncludesNullFields(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, sampleRecords(), FormatJSON, WriteOptions{}); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if !strings.Contains(buf.String(), `"salary": null`) {
		t.Fatalf("expected explicit null for absent salary, got %s", buf.String())
	}
}
