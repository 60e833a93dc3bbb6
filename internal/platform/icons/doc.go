// Package icons defines the Lucide icons the protocol browser can render.
//
// Catalog entries reference icons by Lucide name. The name is opaque to the
// catalog; this package owns which names have sprite artwork and which name
// stands in when an entry references something unknown.
package icons
