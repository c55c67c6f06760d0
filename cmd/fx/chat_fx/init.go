package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/aezakzedd/pathfinder-black/internal/api/controllers"
	"github.com/aezakzedd/pathfinder-black/internal/repositories"
	"github.com/aezakzedd/pathfinder-black/internal/services"
	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

var Module = fx.Provide(
	providePoiRepo,
	providePoiEmbeddingRepo,
	provideIntentClassifier,
	provideChatService,
	provideCatalogService,
	provideChatController,
	provideCatalogController,
)

func providePoiRepo(db *gorm.DB) repositories.POIRepository {
	return repositories.NewPOIRepository(db)
}

func providePoiEmbeddingRepo(db *gorm.DB) repositories.IPoiEmbeddingRepository {
	return repositories.NewPoiEmbeddingRepository(db)
}

func provideIntentClassifier() services.IntentClassifierInterface {
	return services.NewIntentClassifier()
}

func provideChatService(
	aiClient utils.AIClientInterface,
	poiRepo repositories.POIRepository,
	embeddingRepo repositories.IPoiEmbeddingRepository,
	classifier services.IntentClassifierInterface,
	sessionService services.SessionServiceInterface,
) services.ChatServiceInterface {
	return services.NewChatService(aiClient, poiRepo, embeddingRepo, classifier, sessionService)
}

func provideCatalogService(
	geodataRepo repositories.GeodataRepository,
	poiRepo repositories.POIRepository,
	embeddingRepo repositories.IPoiEmbeddingRepository,
	aiClient utils.AIClientInterface,
) services.CatalogServiceInterface {
	return services.NewCatalogService(geodataRepo, poiRepo, embeddingRepo, aiClient)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}

func provideCatalogController(chatService services.ChatServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(chatService)
}
