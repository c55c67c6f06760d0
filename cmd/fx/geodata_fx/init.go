package geodata_fx

import (
	"os"

	"go.uber.org/fx"

	"github.com/aezakzedd/pathfinder-black/internal/repositories"
	"github.com/aezakzedd/pathfinder-black/internal/services"
)

var Module = fx.Provide(
	provideGeodataRepo, provideAvailabilityService)

func provideGeodataRepo() repositories.GeodataRepository {
	dir := os.Getenv("GEODATA_DIR")
	if dir == "" {
		dir = "data/geojsons"
	}
	return repositories.NewGeodataRepository(dir)
}

func provideAvailabilityService(geodataRepo repositories.GeodataRepository) services.AvailabilityServiceInterface {
	return services.NewAvailabilityService(geodataRepo)
}
