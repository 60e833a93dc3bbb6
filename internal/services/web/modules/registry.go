package modules

import (
	"github.com/louisbranch/ems-protocols/internal/services/web/modules/api"
	"github.com/louisbranch/ems-protocols/internal/services/web/modules/browse"
	"github.com/louisbranch/ems-protocols/internal/services/web/modules/protocols"
)

// DefaultModules returns the web modules mounted by the server.
func DefaultModules() []Module {
	return []Module{
		browse.New(),
		protocols.New(),
		api.New(),
	}
}
