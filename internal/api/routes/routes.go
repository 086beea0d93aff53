package routes

import (
	"log"

	"property-portal-backend/internal/api/handlers"
	"property-portal-backend/internal/api/middleware"
	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/config"
	"property-portal-backend/internal/repository"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	leaseRepo := repository.NewLeaseRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	committer := repository.NewBatchCommitter(db)

	// Shared service collaborators
	authorizer := service.NewAuthorizer(membershipRepo)
	guard := service.NewIntegrityGuard(tenantRepo, caseRepo, unitRepo)
	audit := service.NewAuditRecorder()
	directory := service.NewLDAPDirectory(cfg)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, membershipRepo, guard, authorizer, audit, committer, validate)
	membershipService := service.NewMembershipService(membershipRepo, userRepo, organizationRepo, authorizer, audit, committer, directory, validate)
	propertyService := service.NewPropertyService(propertyRepo, unitRepo, guard, authorizer, audit, committer, validate)
	tenantService := service.NewTenantService(tenantRepo, guard, authorizer, audit, committer, validate)
	leaseService := service.NewLeaseService(leaseRepo, unitRepo, tenantRepo, guard, authorizer, audit, committer, validate)
	caseService := service.NewCaseService(caseRepo, taskRepo, documentRepo, tenantRepo, guard, authorizer, audit, committer, validate)
	auditService := service.NewAuditService(auditRepo, authorizer)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		// Continue without auth if config fails to load
		authConfig = nil
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig, userRepo)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	leaseHandler := handlers.NewLeaseHandler(leaseService)
	caseHandler := handlers.NewCaseHandler(caseService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			providerGroup := authGroup.Group("/:provider")
			{
				providerGroup.GET("/start", authHandler.Start)
				providerGroup.GET("/handler/frame", authHandler.HandlerFrame)
				providerGroup.GET("/refresh", authHandler.Refresh)
				providerGroup.POST("/logout", authHandler.Logout)
			}

			authGroup.POST("/validate", authHandler.ValidateToken)
		}
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Organization routes, with org-scoped sub-resources
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.POST("/:id/archive", organizationHandler.ArchiveOrganization)
			organizations.POST("/:id/restore", organizationHandler.RestoreOrganization)

			organizations.GET("/:id/members", membershipHandler.ListMembers)
			organizations.POST("/:id/members", membershipHandler.InviteMember)
			organizations.POST("/:id/members/accept", membershipHandler.AcceptInvite)
			organizations.POST("/:id/members/decline", membershipHandler.DeclineInvite)
			organizations.PATCH("/:id/members/:userId", membershipHandler.UpdateMember)
			organizations.DELETE("/:id/members/:userId", membershipHandler.RemoveMember)

			organizations.GET("/:id/properties", propertyHandler.ListProperties)
			organizations.GET("/:id/tenants", tenantHandler.ListTenants)
			organizations.GET("/:id/leases", leaseHandler.ListLeases)
			organizations.GET("/:id/cases", caseHandler.ListCases)
			organizations.GET("/:id/audit", auditHandler.ListAuditEntries)
		}

		// Property routes
		properties := v1.Group("/properties")
		{
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.PATCH("/:id", propertyHandler.UpdateProperty)
			properties.DELETE("/:id", propertyHandler.DeleteProperty)
			properties.GET("/:id/units", propertyHandler.ListUnits)
		}

		// Unit routes
		units := v1.Group("/units")
		{
			units.POST("", propertyHandler.CreateUnit)
			units.PATCH("/:id/status", propertyHandler.UpdateUnitStatus)
			units.DELETE("/:id", propertyHandler.DeleteUnit)
		}

		// Tenant routes
		tenants := v1.Group("/tenants")
		{
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.PATCH("/:id", tenantHandler.UpdateTenant)
			tenants.DELETE("/:id", tenantHandler.DeleteTenant)
		}

		// Lease routes
		leases := v1.Group("/leases")
		{
			leases.POST("", leaseHandler.CreateLease)
			leases.GET("/:id", leaseHandler.GetLease)
			leases.PATCH("/:id/status", leaseHandler.UpdateLeaseStatus)
			leases.DELETE("/:id", leaseHandler.DeleteLease)
		}

		// Legal case routes
		cases := v1.Group("/cases")
		{
			cases.POST("", caseHandler.CreateCase)
			cases.GET("/:id", caseHandler.GetCase)
			cases.PATCH("/:id/status", caseHandler.UpdateCaseStatus)
			cases.DELETE("/:id", caseHandler.DeleteCase)

			cases.GET("/:id/tasks", caseHandler.ListTasks)
			cases.POST("/:id/tasks", caseHandler.CreateTask)
			cases.GET("/:id/documents", caseHandler.ListDocuments)
			cases.POST("/:id/documents", caseHandler.AttachDocument)
		}

		// Task routes
		tasks := v1.Group("/tasks")
		{
			tasks.PATCH("/:id/done", caseHandler.SetTaskDone)
			tasks.DELETE("/:id", caseHandler.DeleteTask)
		}

		// Document routes
		documents := v1.Group("/documents")
		{
			documents.DELETE("/:id", caseHandler.DetachDocument)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
