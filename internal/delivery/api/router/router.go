// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fooddash/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DashboardHandler   *handler.DashboardHandler
	ReportHandler      *handler.ReportHandler
	DirectoryHandler   *handler.DirectoryHandler
	ProviderHandler    *handler.ProviderHandler
	ReceiverHandler    *handler.ReceiverHandler
	FoodListingHandler *handler.FoodListingHandler
	ClaimHandler       *handler.ClaimHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	dashboardHandler   *handler.DashboardHandler
	reportHandler      *handler.ReportHandler
	directoryHandler   *handler.DirectoryHandler
	providerHandler    *handler.ProviderHandler
	receiverHandler    *handler.ReceiverHandler
	foodListingHandler *handler.FoodListingHandler
	claimHandler       *handler.ClaimHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dashboardHandler:   params.DashboardHandler,
		reportHandler:      params.ReportHandler,
		directoryHandler:   params.DirectoryHandler,
		providerHandler:    params.ProviderHandler,
		receiverHandler:    params.ReceiverHandler,
		foodListingHandler: params.FoodListingHandler,
		claimHandler:       params.ClaimHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	filtersGroup := apiV1.Group("/filters")
	{
		filtersGroup.GET("/options", r.directoryHandler.GetFilterOptions)
		filtersGroup.GET("/default", r.dashboardHandler.GetDefaultFilter)
	}

	dashboardGroup := apiV1.Group("/dashboard")
	{
		dashboardGroup.GET("/kpis", r.dashboardHandler.GetKPIs)
		dashboardGroup.GET("/overview", r.dashboardHandler.GetOverview)
	}

	// Filtered listing browser
	listingsGroup := apiV1.Group("/listings")
	{
		listingsGroup.GET("", r.foodListingHandler.BrowseListings)
		listingsGroup.GET("/:id/wastage", r.foodListingHandler.GetWastageStatus)
	}

	contactsGroup := apiV1.Group("/contacts")
	{
		contactsGroup.GET("/providers", r.directoryHandler.ListProviderContacts)
		contactsGroup.GET("/receivers", r.directoryHandler.ListReceiverContacts)
	}

	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.GET("", r.reportHandler.ListReports)
		reportsGroup.POST("/batch", r.reportHandler.RunBatch)
		reportsGroup.GET("/:slug", r.reportHandler.RunReport)
	}

	// Manual CRUD
	providersGroup := apiV1.Group("/providers")
	{
		providersGroup.POST("", r.providerHandler.CreateProvider)
		providersGroup.GET("", r.providerHandler.ListProviders)
		providersGroup.GET("/:id", r.providerHandler.GetProvider)
		providersGroup.PUT("/:id", r.providerHandler.UpdateProvider)
		providersGroup.DELETE("/:id", r.providerHandler.DeleteProvider)
	}

	receiversGroup := apiV1.Group("/receivers")
	{
		receiversGroup.POST("", r.receiverHandler.CreateReceiver)
		receiversGroup.GET("", r.receiverHandler.ListReceivers)
		receiversGroup.GET("/:id", r.receiverHandler.GetReceiver)
		receiversGroup.PUT("/:id", r.receiverHandler.UpdateReceiver)
		receiversGroup.DELETE("/:id", r.receiverHandler.DeleteReceiver)
	}

	foodListingsGroup := apiV1.Group("/food-listings")
	{
		foodListingsGroup.POST("", r.foodListingHandler.CreateFoodListing)
		foodListingsGroup.GET("", r.foodListingHandler.ListFoodListings)
		foodListingsGroup.GET("/:id", r.foodListingHandler.GetFoodListing)
		foodListingsGroup.PUT("/:id", r.foodListingHandler.UpdateFoodListing)
		foodListingsGroup.DELETE("/:id", r.foodListingHandler.DeleteFoodListing)
	}

	claimsGroup := apiV1.Group("/claims")
	{
		claimsGroup.POST("", r.claimHandler.CreateClaim)
		claimsGroup.GET("", r.claimHandler.ListClaims)
		claimsGroup.GET("/:id", r.claimHandler.GetClaim)
		claimsGroup.PUT("/:id", r.claimHandler.UpdateClaim)
		claimsGroup.DELETE("/:id", r.claimHandler.DeleteClaim)
	}
}
