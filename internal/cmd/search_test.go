package cmd

import (
	"testing"

	"github.com/jagjotsingh7935/linkedInScrapper/internal/export"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want export.Format
	}{
		{"csv", export.FormatCSV},
		{"TSV", export.FormatTSV},
		{" json ", export.FormatJSON},
		{"table", export.FormatTable},
		{"", export.FormatTable},
	}
	for _, tc := range cases {
		got, err := parseFormat(tc.in)
		if err != nil {
			t.Fatalf("parseFormat(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := parseFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestResolveFormat_GlobalFlagsWin(t *testing.T) {
	ctx := &Context{JSONOutput: true}
	got, err := resolveFormat(ctx, "csv", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != export.FormatJSON {
		t.Fatalf("got %q, want json", got)
	}

	ctx = &Context{PlainText: true}
	got, err = resolveFormat(ctx, "table", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != export.FormatTSV {
		t.Fatalf("got %q, want tsv", got)
	}
}

func TestDefaultInt(t *testing.T) {
	if got := defaultInt(0, 25); got != 25 {
		t.Fatalf("got %d, want fallback", got)
	}
	if got := defaultInt(7, 25); got != 7 {
		t.Fatalf("got %d, want explicit value", got)
	}
}
