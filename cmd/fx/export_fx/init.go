package export_fx

import (
	"os"

	"go.uber.org/fx"

	"github.com/aezakzedd/pathfinder-black/internal/api/controllers"
	"github.com/aezakzedd/pathfinder-black/internal/services"
	"github.com/aezakzedd/pathfinder-black/pkg/memcache"
)

var Module = fx.Provide(
	provideExportService, provideExportController)

func provideExportService(store memcache.SessionStore) services.ExportServiceInterface {
	dir := os.Getenv("EXPORTS_DIR")
	if dir == "" {
		dir = "exports"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port()
	}
	return services.NewExportService(store, dir, baseURL)
}

func provideExportController(exportService services.ExportServiceInterface) *controllers.ExportController {
	return controllers.NewExportController(exportService)
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
