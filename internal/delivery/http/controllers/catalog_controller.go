package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"charityevents/internal/delivery/http/helpers"
	"charityevents/internal/domain"
)

// CatalogController serves the public browsing endpoints: event listing,
// search, detail, per-event registrations, categories, and organizations.
type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

func parseEventID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (c *CatalogController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteError(w, http.StatusInternalServerError, helpers.InternalErrorMessage)
}

// ListEvents godoc
// @Summary List active upcoming events
// @Description Returns active events from today onward, each with its category and organization name, ascending by datetime.
// @Tags events
// @Produce json
// @Success 200 {array} domain.EventSummary
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *CatalogController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListUpcomingEvents(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// SearchEvents godoc
// @Summary Search active events
// @Description Filters active events by exact calendar day, case-insensitive location substring, and exact category id. Absent parameters are not applied.
// @Tags events
// @Produce json
// @Param date query string false "Calendar day (YYYY-MM-DD)"
// @Param location query string false "Location substring"
// @Param category query int false "Category ID"
// @Success 200 {array} domain.EventSummary
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/search [get]
func (c *CatalogController) SearchEvents(w http.ResponseWriter, r *http.Request) {
	var filter domain.EventFilter
	q := r.URL.Query()
	if s := q.Get("date"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			helpers.WriteError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		filter.Date = &d
	}
	if s := q.Get("location"); s != "" {
		filter.Location = &s
	}
	if s := q.Get("category"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			helpers.WriteError(w, http.StatusBadRequest, "Invalid category id")
			return
		}
		filter.CategoryID = &id
	}

	events, err := c.Service.SearchEvents(r.Context(), filter)
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get event detail
// @Description Returns one event with its organization's description and contact details.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} domain.EventDetail
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID} [get]
func (c *CatalogController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(r)
	if !ok {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	detail, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, detail)
}

// ListEventRegistrations godoc
// @Summary List registrations for an event
// @Description Returns the registrations for the event, newest first, each with the event name and ticket price.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {array} domain.RegistrationWithEvent
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID}/registrations [get]
func (c *CatalogController) ListEventRegistrations(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(r)
	if !ok {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	regs, err := c.Service.ListEventRegistrations(r.Context(), id)
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, regs)
}

// ListCategories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/categories [get]
func (c *CatalogController) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Service.ListCategories(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, categories)
}

// ListOrganizations godoc
// @Summary List organizations
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Organization
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/organizations [get]
func (c *CatalogController) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := c.Service.ListOrganizations(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, orgs)
}
