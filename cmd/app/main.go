package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/aezakzedd/pathfinder-black/cmd/fx/ai_fx"
	"github.com/aezakzedd/pathfinder-black/cmd/fx/chat_fx"
	"github.com/aezakzedd/pathfinder-black/cmd/fx/db_fx"
	"github.com/aezakzedd/pathfinder-black/cmd/fx/export_fx"
	"github.com/aezakzedd/pathfinder-black/cmd/fx/geodata_fx"
	"github.com/aezakzedd/pathfinder-black/cmd/fx/memcache_fx"
	"github.com/aezakzedd/pathfinder-black/cmd/fx/session_fx"
	"github.com/aezakzedd/pathfinder-black/internal/api/controllers"
	"github.com/aezakzedd/pathfinder-black/internal/services"
	"github.com/aezakzedd/pathfinder-black/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		geodata_fx.Module,
		memcache_fx.Module,
		session_fx.Module,
		chat_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RunCatalogSync),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// RunCatalogSync refreshes the POI catalog from the geodata files once the
// app comes up, off the startup path so a slow sync never blocks serving.
func RunCatalogSync(lc fx.Lifecycle, catalog services.CatalogServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := catalog.SyncCatalog(context.Background()); err != nil {
					log.Printf("Catalog sync failed: %v", err)
				}
			}()
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Println("Starting HTTP server at :" + port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	sessionController *controllers.SessionController,
	chatController *controllers.ChatController,
	catalogController *controllers.CatalogController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	exportsDir := os.Getenv("EXPORTS_DIR")
	if exportsDir == "" {
		exportsDir = "exports"
	}
	r.Static("/exports", exportsDir)

	RegisterRoutes(r, sessionController, chatController, catalogController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	chatController *controllers.ChatController,
	catalogController *controllers.CatalogController,
	exportController *controllers.ExportController) {

	api := r.Group("/api")

	sessions := api.Group("/sessions")
	sessions.POST("", sessionController.CreateSession)
	sessions.GET("/:id", sessionController.GetSession)
	sessions.DELETE("/:id", sessionController.DeleteSession)
	sessions.PATCH("/:id/trip", sessionController.UpdateTrip)
	sessions.POST("/:id/days/:dayKey/municipality", sessionController.SelectMunicipality)
	sessions.POST("/:id/days/:dayKey/categories", sessionController.ToggleCategory)
	sessions.POST("/:id/days/:dayKey/toggle", sessionController.ToggleDay)
	sessions.POST("/:id/days/:dayKey/items", sessionController.AddItem)
	sessions.DELETE("/:id/days/:dayKey/items/:itemId", sessionController.RemoveItem)
	sessions.GET("/:id/markers", sessionController.GetMarkers)
	sessions.POST("/:id/chat", chatController.SessionChat)
	sessions.POST("/:id/export", exportController.ExportSession)

	api.POST("/chat", chatController.Chat)
	api.POST("/generate-itinerary", chatController.GenerateItinerary)
	api.POST("/place-details", chatController.PlaceDetails)
	api.POST("/generate-itinerary-pdf", exportController.RenderPDF)

	api.GET("/municipalities", catalogController.GetMunicipalities)
	api.GET("/categories", catalogController.GetCategories)
	api.GET("/preferences", catalogController.GetPreferences)
	api.GET("/health", catalogController.Health)
}
