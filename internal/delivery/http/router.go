package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"charityevents/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	catalogController *controllers.CatalogController,
	registrationController *controllers.RegistrationController,
	adminController *controllers.AdminController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public catalog
	mux.HandleFunc("GET /api/events", catalogController.ListEvents)
	mux.HandleFunc("GET /api/events/search", catalogController.SearchEvents)
	mux.HandleFunc("GET /api/events/{eventID}", catalogController.GetEvent)
	mux.HandleFunc("GET /api/events/{eventID}/registrations", catalogController.ListEventRegistrations)
	mux.HandleFunc("GET /api/categories", catalogController.ListCategories)
	mux.HandleFunc("GET /api/organizations", catalogController.ListOrganizations)

	// Registration
	mux.HandleFunc("POST /api/registrations", registrationController.Create)

	// Admin console
	mux.HandleFunc("POST /api/admin/login", adminController.Login)
	mux.HandleFunc("GET /api/admin/events", adminController.ListEvents)
	mux.HandleFunc("POST /api/admin/events", adminController.CreateEvent)
	mux.HandleFunc("PUT /api/admin/events/{eventID}", adminController.UpdateEvent)
	mux.HandleFunc("DELETE /api/admin/events/{eventID}", adminController.DeleteEvent)
	mux.HandleFunc("GET /api/admin/stats", adminController.GetStats)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
