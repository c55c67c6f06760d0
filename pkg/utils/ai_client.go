package utils

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingDim matches the vector column width of the POI embedding table.
const EmbeddingDim = 1536

// AIClientInterface is the contract both the Gemini and OpenAI clients satisfy.
// GenerateAnswer produces free-form prose for the chat assistant; GetEmbedding
// produces a vector used for POI similarity retrieval.
type AIClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

// textToVector is the deterministic fallback used when the provider has no
// embedding endpoint on the configured tier. It hashes word tokens into a
// fixed-width vector and normalizes, which is enough for coarse ranking of a
// few hundred POIs even though it is nothing like a learned embedding.
func textToVector(text string) pgvector.Vector {
	dims := make([]float32, EmbeddingDim)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		idx := int(h.Sum32()) % EmbeddingDim
		if idx < 0 {
			idx += EmbeddingDim
		}
		dims[idx] += 1.0
	}

	var norm float64
	for _, v := range dims {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1.0 / math.Sqrt(norm))
		for i := range dims {
			dims[i] *= scale
		}
	}

	return pgvector.NewVector(dims)
}
