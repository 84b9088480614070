package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"charityevents/internal/delivery/http/helpers"
	"charityevents/internal/domain"
)

// AdminController serves the admin console endpoints: login, event lifecycle,
// and dashboard statistics. All bodies use the {success, ...} envelope.
type AdminController struct {
	Logger       *slog.Logger
	AuthService  domain.AuthService
	EventService domain.EventService
	StatsService domain.StatsService
}

func NewAdminController(
	logger *slog.Logger,
	authService domain.AuthService,
	eventService domain.EventService,
	statsService domain.StatsService,
) *AdminController {
	return &AdminController{
		Logger:       logger,
		AuthService:  authService,
		EventService: eventService,
		StatsService: statsService,
	}
}

func (c *AdminController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteAdminError(w, http.StatusInternalServerError, helpers.InternalErrorMessage)
}

// LoginRequest is the request body for POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Admin login
// @Description Checks the admin credentials. No session or token is issued.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body controllers.LoginRequest true "Credentials"
// @Success 200 {object} helpers.AdminMessageResponse
// @Failure 400 {object} helpers.AdminMessageResponse "Missing username or password"
// @Failure 401 {object} helpers.AdminMessageResponse "Invalid username or password"
// @Failure 500 {object} helpers.AdminMessageResponse
// @Router /api/admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if _, err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteAdminError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		helpers.WriteAdminError(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	if err := c.AuthService.Login(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteAdminError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.AdminMessageResponse{Success: true, Message: "Login successful"})
}

// AdminEventsResponse is the success body for GET /api/admin/events.
type AdminEventsResponse struct {
	Success bool                 `json:"success"`
	Events  []*domain.AdminEvent `json:"events"`
}

// ListEvents godoc
// @Summary List all events with registration counts
// @Description Returns every event regardless of active flag or date, descending by datetime, each with its registration count.
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.AdminEventsResponse
// @Failure 500 {object} helpers.AdminMessageResponse
// @Router /api/admin/events [get]
func (c *AdminController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.EventService.ListAllEvents(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, AdminEventsResponse{Success: true, Events: events})
}

// SaveEventRequest is the request body for POST and PUT on /api/admin/events.
// Create ignores CurrentAmount and IsActive; update replaces the full row.
type SaveEventRequest struct {
	Name           string    `json:"event_name"`
	Description    *string   `json:"description"`
	DateTime       time.Time `json:"event_datetime"`
	Location       string    `json:"location"`
	TicketPrice    *float64  `json:"ticket_price"`
	GoalAmount     float64   `json:"goal_amount"`
	CurrentAmount  float64   `json:"current_amount"`
	CategoryID     *int64    `json:"category_id"`
	OrganizationID *int64    `json:"organization_id"`
	IsActive       bool      `json:"is_active"`
}

func (req SaveEventRequest) toEvent() *domain.Event {
	return &domain.Event{
		Name:           req.Name,
		Description:    req.Description,
		DateTime:       req.DateTime,
		Location:       req.Location,
		TicketPrice:    req.TicketPrice,
		GoalAmount:     req.GoalAmount,
		CurrentAmount:  req.CurrentAmount,
		CategoryID:     req.CategoryID,
		OrganizationID: req.OrganizationID,
		IsActive:       req.IsActive,
	}
}

// CreateEventResponse is the success body for POST /api/admin/events.
type CreateEventResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID int64  `json:"event_id"`
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event. Name, datetime, location, and goal amount are required; ticket price, category, and organization are optional.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body controllers.SaveEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.AdminMessageResponse "Missing required fields"
// @Failure 500 {object} helpers.AdminMessageResponse
// @Router /api/admin/events [post]
func (c *AdminController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req SaveEventRequest
	if _, err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteAdminError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.DateTime.IsZero() || req.Location == "" || req.GoalAmount == 0 {
		helpers.WriteAdminError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	event := req.toEvent()
	if err := c.EventService.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteAdminError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{
		Success: true,
		Message: "Event created successfully",
		EventID: event.ID,
	})
}

// UpdateEvent godoc
// @Summary Replace an event
// @Description Replaces the full event row, including current amount and active flag.
// @Tags admin
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param body body controllers.SaveEventRequest true "Event data (all fields)"
// @Success 200 {object} helpers.AdminMessageResponse
// @Failure 400 {object} helpers.AdminMessageResponse
// @Failure 404 {object} helpers.AdminMessageResponse "Event not found"
// @Failure 500 {object} helpers.AdminMessageResponse
// @Router /api/admin/events/{eventID} [put]
func (c *AdminController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(r)
	if !ok {
		helpers.WriteAdminError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	var req SaveEventRequest
	if _, err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteAdminError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event := req.toEvent()
	event.ID = id
	if err := c.EventService.UpdateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteAdminError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.AdminMessageResponse{Success: true, Message: "Event updated successfully"})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event with no registrations. Refused while any registration references it.
// @Tags admin
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.AdminMessageResponse
// @Failure 400 {object} helpers.AdminMessageResponse "Event has registrations"
// @Failure 404 {object} helpers.AdminMessageResponse "Event not found"
// @Failure 500 {object} helpers.AdminMessageResponse
// @Router /api/admin/events/{eventID} [delete]
func (c *AdminController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(r)
	if !ok {
		helpers.WriteAdminError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	if err := c.EventService.DeleteEvent(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrHasRegistrations):
			helpers.WriteAdminError(w, http.StatusBadRequest, "Cannot delete event with existing registrations")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteAdminError(w, http.StatusNotFound, "Event not found")
		default:
			c.internalError(w, r, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.AdminMessageResponse{Success: true, Message: "Event deleted successfully"})
}

// StatsResponse is the success body for GET /api/admin/stats.
type StatsResponse struct {
	Success bool          `json:"success"`
	Stats   *domain.Stats `json:"stats"`
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Returns the total event count, total registration count, and total donations.
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.StatsResponse
// @Failure 500 {object} helpers.AdminMessageResponse
// @Router /api/admin/stats [get]
func (c *AdminController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.StatsService.GetStats(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, StatsResponse{Success: true, Stats: stats})
}
