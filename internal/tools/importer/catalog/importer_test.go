package catalogimporter

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	catalogsqlite "github.com/louisbranch/ems-protocols/internal/protocols/catalog/sqlite"
)

const sampleCatalog = `
categories:
  - id: field
    label: Field
    icon: activity
    color: orange
    subcategories:
      - id: triage
        label: Triage
        protocols:
          - id: start
            title: START Triage
          - id: jumpstart
            title: JumpSTART Triage
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-file", "catalog.yaml"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.DBPath != DefaultDBPath {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, DefaultDBPath)
	}
	if cfg.DryRun {
		t.Fatal("DryRun = true, want false")
	}
}

func TestParseConfigRequiresFile(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected file required error")
	}
}

func TestRunDryRunDoesNotWrite(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	var out bytes.Buffer
	if err := Run(context.Background(), Config{File: writeSample(t), DBPath: dbPath, DryRun: true}, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "validated 2 protocol(s) in 1 category(ies)\n" {
		t.Fatalf("output = %q", got)
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("dry run created %s", dbPath)
	}
}

func TestRunImportsIntoStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	var out bytes.Buffer
	if err := Run(ctx, Config{File: writeSample(t), DBPath: dbPath}, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "imported 2 protocol(s)") {
		t.Fatalf("output = %q", out.String())
	}

	store, err := catalogsqlite.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	c, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := c.Lookup("field", "triage", "jumpstart"); !ok {
		t.Fatal("expected imported protocol")
	}
}

func TestRunRejectsInvalidCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if err := Run(context.Background(), Config{File: path, DryRun: true}, nil); err == nil {
		t.Fatal("expected validation error")
	}
}
