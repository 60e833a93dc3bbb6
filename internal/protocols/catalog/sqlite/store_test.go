package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), " "); err == nil {
		t.Fatal("expected path error")
	}
}

func TestLoadEmptyStore(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.Load(context.Background())
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("Load() error = %v, want %v", err, ErrEmpty)
	}
}

func TestReplaceThenLoadRoundTripsDeclarationOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	want := catalog.Default()
	if err := store.Replace(ctx, want); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want.Project(nil), got.Project(nil)); diff != "" {
		t.Fatalf("projection mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Taxonomy(), got.Taxonomy()); diff != "" {
		t.Fatalf("taxonomy mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceOverwritesPreviousCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	if err := store.Replace(ctx, catalog.Default()); err != nil {
		t.Fatalf("Replace(default) error = %v", err)
	}
	small, err := catalog.New(catalog.Taxonomy{
		Categories: []catalog.Category{{ID: "field", Label: "Field"}},
	}, []catalog.Section{{CategoryID: "field", Shelves: []catalog.Shelf{{
		SubcategoryID: "triage",
		Protocols:     []catalog.Protocol{{ID: "start", Title: "START Triage"}},
	}}}})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	if err := store.Replace(ctx, small); err != nil {
		t.Fatalf("Replace(small) error = %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", got.Len())
	}
	if _, ok := got.Category("adult"); ok {
		t.Fatal("expected previous categories to be removed")
	}
}

func TestReplaceRejectsNilCatalog(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.Replace(context.Background(), nil); err == nil {
		t.Fatal("expected nil catalog error")
	}
}

func TestNilStoreIsNotOpen(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected not open error")
	}
}
