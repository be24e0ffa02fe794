package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	provideAIClient, provideEmbeddingRepo, provideEmbeddingService, provideTipsService)

// provideAIClient returns nil when no provider is configured; dependent
// services degrade to their curated fallbacks.
func provideAIClient() utils.AIClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		log.Println("AI_PROVIDER not set, AI features will use fallbacks")
		return nil
	}

	client, err := utils.NewAIClient(provider, os.Getenv("AI_API_KEY"), os.Getenv("AI_MODEL"))
	if err != nil {
		log.Printf("Failed to initialise AI client: %v, AI features will use fallbacks", err)
		return nil
	}
	return client
}

func provideEmbeddingRepo(db *gorm.DB) repositories.IPlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}

func provideEmbeddingService(aiClient utils.AIClientInterface, embeddingRepo repositories.IPlaceEmbeddingRepository) services.EmbeddingServiceInterface {
	return services.NewEmbeddingService(aiClient, embeddingRepo)
}

func provideTipsService(aiClient utils.AIClientInterface) services.TipsServiceInterface {
	return services.NewTipsService(aiClient)
}
