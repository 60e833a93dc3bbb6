// Package sqlite provides a SQLite-backed protocol catalog store.
//
// The store keeps declaration order in explicit position columns so a catalog
// read back from disk projects exactly like the file it was imported from.
package sqlite
