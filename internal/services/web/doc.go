// Package web owns the browser-facing protocol browser.
//
// It composes the browse, protocol detail, and JSON modules behind one root
// mux, adds the health probe and embedded stylesheet, and wraps everything in
// the shared request middleware.
package web
