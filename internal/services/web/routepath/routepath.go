// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Health          = "/up"
	StaticPrefix    = "/static/"
	ProtocolsPrefix = "/protocols/"
	ProtocolPattern = ProtocolsPrefix + "{categoryID}/{subcategoryID}/{protocolID}"
	APIPrefix       = "/api/"
	APIProtocols    = "/api/protocols"
	APITaxonomy     = "/api/taxonomy"
)

// Query parameters carrying the browse selection.
const (
	CategoryParam    = "category"
	SubcategoryParam = "subcategory"
)

// Browse returns the root path filtered to the given selection. A blank
// category drops the subcategory as well.
func Browse(categoryID string, subcategoryID string) string {
	return withSelection(Root, categoryID, subcategoryID)
}

// Protocol returns the detail path for one protocol.
func Protocol(categoryID string, subcategoryID string, protocolID string) string {
	return ProtocolsPrefix + escapeSegment(categoryID) + "/" + escapeSegment(subcategoryID) + "/" + escapeSegment(protocolID)
}

// APIProtocolsFor returns the JSON listing path filtered to the given selection.
func APIProtocolsFor(categoryID string, subcategoryID string) string {
	return withSelection(APIProtocols, categoryID, subcategoryID)
}

func withSelection(path string, categoryID string, subcategoryID string) string {
	categoryID = strings.TrimSpace(categoryID)
	subcategoryID = strings.TrimSpace(subcategoryID)
	if categoryID == "" {
		return path
	}
	query := url.Values{}
	query.Set(CategoryParam, categoryID)
	if subcategoryID != "" {
		query.Set(SubcategoryParam, subcategoryID)
	}
	return path + "?" + query.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
