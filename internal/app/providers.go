package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
	"notary-api/internal/api/v1/routes"
	"notary-api/internal/api/v1/services"
	"notary-api/internal/app/agent"
	"notary-api/internal/app/batch"
	"notary-api/internal/app/cache"
	"notary-api/internal/app/keycloak"
	"notary-api/internal/app/repository"
	"notary-api/internal/app/repository/pg"
	"notary-api/internal/app/repository/sqlite"
	"notary-api/internal/app/storage"
	"notary-api/internal/app/transcriber"
	"notary-api/internal/config"
)

func provideRoleDAO(db *sql.DB) repository.RoleDAO { return pg.NewRoleDAO(db) }

func provideUserDAO(db *sql.DB) repository.UserDAO { return pg.NewUserDAO(db) }

func provideAgentDAO(db *sql.DB) repository.AgentDAO { return pg.NewAgentDAO(db) }

func provideTranscriptionDAO(db *sql.DB) repository.TranscriptionDAO {
	return pg.NewTranscriptionDAO(db)
}

func provideDocumentTypeDAO(db *sql.DB) repository.DocumentTypeDAO {
	return pg.NewDocumentTypeDAO(db)
}

func provideTemplateDAO(db *sql.DB) repository.TemplateDAO { return pg.NewTemplateDAO(db) }

func provideSectionDAO(db *sql.DB) repository.SectionDAO { return pg.NewSectionDAO(db) }

func provideCompositionDAO(db *sql.DB) repository.CompositionDAO {
	return pg.NewCompositionDAO(db)
}

func provideDocumentDAO(db *sql.DB) repository.DocumentDAO { return pg.NewDocumentDAO(db) }

// provideAgentCache uses Redis when configured and degrades to a no-op
// cache otherwise.
func provideAgentCache(cfg *config.Config) cache.AgentCache {
	if cfg.RedisAddr == "" {
		return cache.NewNoopAgentCache()
	}
	return cache.NewRedisAgentCache(cfg.RedisAddr, cfg.RedisPassword)
}

// provideBlobStore falls back to the mock store when MinIO is unreachable
// so development environments start without object storage.
func provideBlobStore(cfg *config.Config, logger *zap.Logger) storage.BlobStore {
	store, err := storage.NewMinioStore(context.Background(), storage.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		logger.Warn("object storage unavailable, using mock store", zap.Error(err))
		return storage.NewMockStore()
	}
	return store
}

func provideProvisioner(cfg *config.Config) keycloak.Provisioner {
	if cfg.KeycloakURL == "" {
		return keycloak.NewNoopProvisioner()
	}
	return keycloak.NewClient(keycloak.Config{
		BaseURL:       cfg.KeycloakURL,
		Realm:         cfg.KeycloakRealm,
		AdminUsername: cfg.KeycloakAdminUsername,
		AdminPassword: cfg.KeycloakAdminPassword,
		ClientID:      cfg.KeycloakClientID,
		ClientSecret:  cfg.KeycloakClientSecret,
	})
}

func provideProber(cfg *config.Config) agent.Prober {
	return agent.NewProviderProber(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
}

func provideTranscriberFactory(cfg *config.Config) services.TranscriberFactory {
	return func(baseURL string) transcriber.Transcriber {
		return transcriber.NewWhisperTranscriber(cfg.OpenAIAPIKey, baseURL)
	}
}

func provideTranscriptionService(
	transcriptions repository.TranscriptionDAO,
	agents repository.AgentDAO,
	agentCache cache.AgentCache,
	blobs storage.BlobStore,
	factory services.TranscriberFactory,
	cfg *config.Config,
	logger *zap.Logger,
) services.TranscriptionService {
	return services.NewTranscriptionService(transcriptions, agents, agentCache, blobs,
		factory, cfg.SegmentDurationMS, cfg.UploadDir, logger)
}

func provideContainer(
	roleService services.RoleService,
	userService services.UserService,
	agentService services.AgentService,
	transcriptionService services.TranscriptionService,
	documentTypeService services.DocumentTypeService,
	templateService services.TemplateService,
	sectionService services.SectionService,
	compositionService services.CompositionService,
	documentService services.DocumentService,
) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		RoleService:          roleService,
		UserService:          userService,
		AgentService:         agentService,
		TranscriptionService: transcriptionService,
		DocumentTypeService:  documentTypeService,
		TemplateService:      templateService,
		SectionService:       sectionService,
		CompositionService:   compositionService,
		DocumentService:      documentService,
	}
}

func provideBatchTranscriber(cfg *config.Config) transcriber.Transcriber {
	return transcriber.NewWhisperTranscriber(cfg.OpenAIAPIKey, "")
}

func provideBatchProcessor(db *sqlite.BatchDB, t transcriber.Transcriber, cfg *config.Config, logger *zap.Logger) *batch.Processor {
	return batch.NewProcessor(db, t, cfg.SegmentDurationMS, logger)
}
