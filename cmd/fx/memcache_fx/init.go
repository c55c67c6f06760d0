package memcache_fx

import (
	"go.uber.org/fx"

	mem "github.com/aezakzedd/pathfinder-black/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore() mem.SessionStore {
	return mem.NewSessions(0)
}
