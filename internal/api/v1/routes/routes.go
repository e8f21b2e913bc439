package routes

import (
	"github.com/gin-gonic/gin"
	"notary-api/internal/api/middleware"
	"notary-api/internal/api/v1/handlers"
	"notary-api/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	RoleService          services.RoleService
	UserService          services.UserService
	AgentService         services.AgentService
	TranscriptionService services.TranscriptionService
	DocumentTypeService  services.DocumentTypeService
	TemplateService      services.TemplateService
	SectionService       services.SectionService
	CompositionService   services.CompositionService
	DocumentService      services.DocumentService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer, auth middleware.AuthConfig) {
	router.Use(middleware.JWTAuth(auth))

	roleHandler := handlers.NewRoleHandler(container.RoleService)
	roles := router.Group("/roles")
	{
		roles.GET("", roleHandler.List)
		roles.GET("/:id", roleHandler.Get)
		roles.POST("", roleHandler.Create)
		roles.PATCH("/:id", roleHandler.Update)
		roles.DELETE("/:id", roleHandler.Delete)
	}

	userHandler := handlers.NewUserHandler(container.UserService)
	users := router.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.POST("", userHandler.Create)
		users.PATCH("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	agentHandler := handlers.NewAgentHandler(container.AgentService)
	agents := router.Group("/agents")
	{
		agents.GET("", agentHandler.List)
		agents.GET("/:id", agentHandler.Get)
		agents.POST("", agentHandler.Create)
		agents.PATCH("/:id", agentHandler.Update)
		agents.DELETE("/:id", agentHandler.Delete)
		agents.POST("/:id/test", agentHandler.Test)
	}

	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	transcriptions := router.Group("/transcriptions")
	{
		transcriptions.POST("", transcriptionHandler.Create)
		transcriptions.GET("", transcriptionHandler.List)
		transcriptions.GET("/:id", transcriptionHandler.Get)
		transcriptions.PATCH("/:id", transcriptionHandler.Update)
		transcriptions.DELETE("/:id", transcriptionHandler.Delete)
	}

	documentTypeHandler := handlers.NewDocumentTypeHandler(container.DocumentTypeService)
	documentTypes := router.Group("/document-types")
	{
		documentTypes.GET("", documentTypeHandler.List)
		documentTypes.GET("/:id", documentTypeHandler.Get)
		documentTypes.POST("", documentTypeHandler.Create)
		documentTypes.PATCH("/:id", documentTypeHandler.Update)
		documentTypes.DELETE("/:id", documentTypeHandler.Delete)
	}

	templateHandler := handlers.NewTemplateHandler(container.TemplateService)
	templates := router.Group("/templates")
	{
		templates.GET("", templateHandler.List)
		templates.GET("/:id", templateHandler.Get)
		templates.POST("", templateHandler.Create)
		templates.PATCH("/:id", templateHandler.Update)
		templates.DELETE("/:id", templateHandler.Delete)
	}

	sectionHandler := handlers.NewSectionHandler(container.SectionService)
	sections := router.Group("/template-sections")
	{
		sections.GET("", sectionHandler.List)
		sections.GET("/:id", sectionHandler.Get)
		sections.POST("", sectionHandler.Create)
		sections.PATCH("/:id", sectionHandler.Update)
		sections.DELETE("/:id", sectionHandler.Delete)
	}

	compositionHandler := handlers.NewCompositionHandler(container.CompositionService)
	compositions := router.Group("/template-section-compositions")
	{
		compositions.GET("", compositionHandler.List)
		compositions.GET("/:template_id/:section_id", compositionHandler.Get)
		compositions.POST("", compositionHandler.Create)
		compositions.PATCH("/:template_id/:section_id", compositionHandler.Update)
		compositions.DELETE("/:template_id/:section_id", compositionHandler.Delete)
	}

	documentHandler := handlers.NewDocumentHandler(container.DocumentService)
	documents := router.Group("/documents")
	{
		documents.GET("", documentHandler.List)
		documents.GET("/:id", documentHandler.Get)
		documents.POST("", documentHandler.Create)
		documents.PATCH("/:id", documentHandler.Update)
		documents.DELETE("/:id", documentHandler.Delete)
	}
}
