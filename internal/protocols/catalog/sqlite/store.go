package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/louisbranch/ems-protocols/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// ErrEmpty reports that the store holds no catalog yet.
var ErrEmpty = errors.New("catalog store is empty")

// Store provides SQLite-backed persistence for one protocol catalog.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite catalog store at the provided path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Replace swaps the stored catalog for c in a single transaction.
func (s *Store) Replace(ctx context.Context, c *catalog.Catalog) error {
	if s == nil || s.sqlDB == nil {
		return errors.New("catalog store is not open")
	}
	if c == nil {
		return errors.New("catalog is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	if err := replaceTx(ctx, tx, c); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

func replaceTx(ctx context.Context, tx *sql.Tx, c *catalog.Catalog) error {
	for _, table := range []string{"protocols", "shelves", "subcategories", "categories"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	taxonomy := c.Taxonomy()
	for position, category := range taxonomy.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, position, label, icon, color) VALUES (?, ?, ?, ?, ?)`,
			category.ID, position, category.Label, category.Icon, category.Color,
		); err != nil {
			return fmt.Errorf("put category %s: %w", category.ID, err)
		}
	}
	for categoryID, subcategories := range taxonomy.Subcategories {
		for position, subcategory := range subcategories {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO subcategories (category_id, id, position, label, icon, color) VALUES (?, ?, ?, ?, ?, ?)`,
				categoryID, subcategory.ID, position, subcategory.Label, subcategory.Icon, subcategory.Color,
			); err != nil {
				return fmt.Errorf("put subcategory %s/%s: %w", categoryID, subcategory.ID, err)
			}
		}
	}

	for sectionPosition, section := range c.Sections() {
		for shelfPosition, shelf := range section.Shelves {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO shelves (category_id, subcategory_id, section_position, shelf_position) VALUES (?, ?, ?, ?)`,
				section.CategoryID, shelf.SubcategoryID, sectionPosition, shelfPosition,
			); err != nil {
				return fmt.Errorf("put shelf %s/%s: %w", section.CategoryID, shelf.SubcategoryID, err)
			}
			for position, protocol := range shelf.Protocols {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO protocols (category_id, subcategory_id, id, position, title) VALUES (?, ?, ?, ?, ?)`,
					section.CategoryID, shelf.SubcategoryID, protocol.ID, position, protocol.Title,
				); err != nil {
					return fmt.Errorf("put protocol %s/%s/%s: %w", section.CategoryID, shelf.SubcategoryID, protocol.ID, err)
				}
			}
		}
	}
	return nil
}

// Load reads the stored catalog back in declaration order.
func (s *Store) Load(ctx context.Context) (*catalog.Catalog, error) {
	if s == nil || s.sqlDB == nil {
		return nil, errors.New("catalog store is not open")
	}
	taxonomy, err := s.loadTaxonomy(ctx)
	if err != nil {
		return nil, err
	}
	if len(taxonomy.Categories) == 0 {
		return nil, ErrEmpty
	}
	sections, err := s.loadSections(ctx)
	if err != nil {
		return nil, err
	}
	c, err := catalog.New(taxonomy, sections)
	if err != nil {
		return nil, fmt.Errorf("validate stored catalog: %w", err)
	}
	return c, nil
}

func (s *Store) loadTaxonomy(ctx context.Context) (catalog.Taxonomy, error) {
	taxonomy := catalog.Taxonomy{Subcategories: map[string][]catalog.Subcategory{}}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, label, icon, color FROM categories ORDER BY position`)
	if err != nil {
		return catalog.Taxonomy{}, fmt.Errorf("list categories: %w", err)
	}
	for rows.Next() {
		var category catalog.Category
		if err := rows.Scan(&category.ID, &category.Label, &category.Icon, &category.Color); err != nil {
			_ = rows.Close()
			return catalog.Taxonomy{}, fmt.Errorf("scan category: %w", err)
		}
		taxonomy.Categories = append(taxonomy.Categories, category)
	}
	if err := closeRows(rows); err != nil {
		return catalog.Taxonomy{}, fmt.Errorf("list categories: %w", err)
	}

	rows, err = s.sqlDB.QueryContext(ctx, `SELECT category_id, id, label, icon, color FROM subcategories ORDER BY category_id, position`)
	if err != nil {
		return catalog.Taxonomy{}, fmt.Errorf("list subcategories: %w", err)
	}
	for rows.Next() {
		var (
			categoryID  string
			subcategory catalog.Subcategory
		)
		if err := rows.Scan(&categoryID, &subcategory.ID, &subcategory.Label, &subcategory.Icon, &subcategory.Color); err != nil {
			_ = rows.Close()
			return catalog.Taxonomy{}, fmt.Errorf("scan subcategory: %w", err)
		}
		taxonomy.Subcategories[categoryID] = append(taxonomy.Subcategories[categoryID], subcategory)
	}
	if err := closeRows(rows); err != nil {
		return catalog.Taxonomy{}, fmt.Errorf("list subcategories: %w", err)
	}
	return taxonomy, nil
}

func (s *Store) loadSections(ctx context.Context) ([]catalog.Section, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT category_id, subcategory_id FROM shelves ORDER BY section_position, shelf_position`)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	var sections []catalog.Section
	for rows.Next() {
		var categoryID, subcategoryID string
		if err := rows.Scan(&categoryID, &subcategoryID); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan shelf: %w", err)
		}
		if len(sections) == 0 || sections[len(sections)-1].CategoryID != categoryID {
			sections = append(sections, catalog.Section{CategoryID: categoryID})
		}
		last := &sections[len(sections)-1]
		last.Shelves = append(last.Shelves, catalog.Shelf{SubcategoryID: subcategoryID})
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}

	type shelfKey struct{ categoryID, subcategoryID string }
	index := make(map[shelfKey]*catalog.Shelf)
	for i := range sections {
		for j := range sections[i].Shelves {
			shelf := &sections[i].Shelves[j]
			index[shelfKey{sections[i].CategoryID, shelf.SubcategoryID}] = shelf
		}
	}

	rows, err = s.sqlDB.QueryContext(ctx, `SELECT category_id, subcategory_id, id, title FROM protocols ORDER BY category_id, subcategory_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list protocols: %w", err)
	}
	for rows.Next() {
		var (
			key      shelfKey
			protocol catalog.Protocol
		)
		if err := rows.Scan(&key.categoryID, &key.subcategoryID, &protocol.ID, &protocol.Title); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan protocol: %w", err)
		}
		shelf, ok := index[key]
		if !ok {
			_ = rows.Close()
			return nil, fmt.Errorf("protocol %s/%s/%s has no shelf", key.categoryID, key.subcategoryID, protocol.ID)
		}
		shelf.Protocols = append(shelf.Protocols, protocol)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("list protocols: %w", err)
	}
	return sections, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	return rows.Close()
}
