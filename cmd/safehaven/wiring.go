package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/PabloGalante/safehaven/internal/adapters/llm"
	firestorestore "github.com/PabloGalante/safehaven/internal/adapters/storage/firestore"
	memstore "github.com/PabloGalante/safehaven/internal/adapters/storage/memory"
	"github.com/PabloGalante/safehaven/internal/config"
	"github.com/PabloGalante/safehaven/internal/domain"
	"github.com/PabloGalante/safehaven/internal/knowledge"
	"github.com/PabloGalante/safehaven/internal/observability"
)

// setup loads config, configures logging and reads the knowledge document.
// A missing document is fatal for every command.
func setup() (*config.Config, *knowledge.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	observability.Init("safehaven", cfg.LogLevel, cfg.IsDevelopment())

	kb, err := knowledge.Load(cfg.KnowledgePath)
	if err != nil {
		// fatal level without exiting; main reports the error and exits non-zero
		observability.Logger().WithLevel(zerolog.FatalLevel).Err(err).
			Str("path", cfg.KnowledgePath).
			Msg("knowledge base unavailable, place the document at SAFEHAVEN_KNOWLEDGE_PATH")
		return nil, nil, fmt.Errorf("loading knowledge base: %w", err)
	}
	return cfg, kb, nil
}

// newLLM returns the generation client and whether chat is available. An
// initialization failure disables chat instead of stopping the process.
func newLLM(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (domain.LLMClient, bool) {
	if cfg.UseMockLLM {
		log.Info().Msg("using mock LLM client")
		return llm.NewMockLLM(), true
	}

	client, err := llm.NewGeminiClient(ctx, llm.Options{
		APIKey:   cfg.GoogleAPIKey,
		Project:  cfg.GCPProjectID,
		Location: cfg.GCPLocation,
		Model:    cfg.ModelName,
		Timeout:  cfg.LLMTimeout,
	})
	if err != nil {
		log.Error().Stack().Err(err).Msg("LLM client unavailable, chat disabled")
		return nil, false
	}

	log.Info().Str("model", client.Model()).Msg("using Gemini LLM client")
	return client, true
}

// newPostStore returns nil when the configured store cannot be initialized;
// the community feed then runs in its unavailable mode.
func newPostStore(ctx context.Context, cfg *config.Config, log *zerolog.Logger) domain.PostStore {
	switch cfg.StorageBackend {
	case config.StorageFirestore:
		store, err := firestorestore.NewStore(ctx, firestorestore.Options{
			ProjectID:       cfg.GCPProjectID,
			CredentialsJSON: []byte(cfg.FirebaseConfig),
			AppID:           cfg.AppID,
		})
		if err != nil {
			log.Error().Stack().Err(err).Msg("Firestore unavailable, community feed disabled")
			return nil
		}
		log.Info().Str("project", cfg.GCPProjectID).Msg("using Firestore post store")
		return store
	default:
		log.Info().Msg("using in-memory post store")
		return memstore.NewPostStore()
	}
}
