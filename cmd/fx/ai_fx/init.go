package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

var Module = fx.Provide(provideAIClient)

// provideAIClient picks a provider from the environment, Gemini first. A nil
// client is a valid result: chat degrades to its fallback answers and the
// catalog skips embeddings until a key is configured.
func provideAIClient() utils.AIClientInterface {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := utils.NewGeminiClient(key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("ai: gemini client init failed: %v", err)
		} else {
			return client
		}
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return utils.NewOpenAIClient(key, os.Getenv("OPENAI_MODEL"))
	}

	log.Println("ai: no provider configured, assistant runs in fallback mode")
	return nil
}
