package templates

import (
	"fmt"

	i18ncatalog "github.com/louisbranch/ems-protocols/internal/platform/i18n/catalog"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns the translated copy for key. Without a localizer it renders the
// base-locale copy, and unknown keys render as the key itself.
func T(loc Localizer, key string, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	format := key
	if value, ok := i18ncatalog.Default().Message(i18ncatalog.BaseLocale, key); ok {
		format = value
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}
