package session_fx

import (
	"go.uber.org/fx"

	"github.com/aezakzedd/pathfinder-black/internal/api/controllers"
	"github.com/aezakzedd/pathfinder-black/internal/services"
	"github.com/aezakzedd/pathfinder-black/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionService, provideSessionController)

func provideSessionService(
	store memcache.SessionStore,
	availability services.AvailabilityServiceInterface,
) services.SessionServiceInterface {
	return services.NewSessionService(store, availability)
}

func provideSessionController(sessionService services.SessionServiceInterface) *controllers.SessionController {
	return controllers.NewSessionController(sessionService)
}
