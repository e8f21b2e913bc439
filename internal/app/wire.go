//go:build wireinject
// +build wireinject

package app

import (
	"database/sql"

	"github.com/google/wire"
	"go.uber.org/zap"
	"notary-api/internal/api/v1/routes"
	"notary-api/internal/api/v1/services"
	"notary-api/internal/app/batch"
	"notary-api/internal/app/repository/sqlite"
	"notary-api/internal/config"
)

// InitializeServiceContainer assembles every API service against Postgres.
func InitializeServiceContainer(cfg *config.Config, db *sql.DB, logger *zap.Logger) *routes.ServiceContainer {
	wire.Build(
		provideRoleDAO,
		provideUserDAO,
		provideAgentDAO,
		provideTranscriptionDAO,
		provideDocumentTypeDAO,
		provideTemplateDAO,
		provideSectionDAO,
		provideCompositionDAO,
		provideDocumentDAO,
		provideAgentCache,
		provideBlobStore,
		provideProvisioner,
		provideProber,
		provideTranscriberFactory,
		provideTranscriptionService,
		services.NewRoleService,
		services.NewUserService,
		services.NewAgentService,
		services.NewDocumentTypeService,
		services.NewTemplateService,
		services.NewSectionService,
		services.NewCompositionService,
		services.NewDocumentService,
		provideContainer,
	)
	return &routes.ServiceContainer{}
}

// InitializeBatchProcessor assembles the offline batch transcriber.
func InitializeBatchProcessor(cfg *config.Config, db *sqlite.BatchDB, logger *zap.Logger) *batch.Processor {
	wire.Build(
		provideBatchTranscriber,
		provideBatchProcessor,
	)
	return &batch.Processor{}
}
