package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"charityevents/internal/delivery/http/helpers"
	"charityevents/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateRegistrationRequest is the request body for POST /api/registrations.
type CreateRegistrationRequest struct {
	EventID        int64   `json:"event_id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	TicketQuantity int     `json:"ticket_quantity"`
}

// Validate implements helpers.Validator. Phone is the only optional field;
// a zero ticket quantity counts as missing.
func (r CreateRegistrationRequest) Validate() []string {
	if r.EventID == 0 || r.FullName == "" || r.Email == "" || r.TicketQuantity == 0 {
		return []string{"Missing required fields"}
	}
	return nil
}

// CreateRegistrationResponse is the success body for POST /api/registrations.
type CreateRegistrationResponse struct {
	Message        string  `json:"message"`
	RegistrationID int64   `json:"registration_id"`
	TotalAmount    float64 `json:"total_amount"`
}

// Create godoc
// @Summary Register for an event
// @Description Creates a registration and adds the computed total to the event's fundraising amount. One registration per event and email.
// @Tags registrations
// @Accept json
// @Produce json
// @Param body body controllers.CreateRegistrationRequest true "Registration data"
// @Success 201 {object} controllers.CreateRegistrationResponse
// @Failure 400 {object} helpers.ErrorResponse "Missing fields or already registered"
// @Failure 404 {object} helpers.ErrorResponse "Event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/registrations [post]
func (c *RegistrationController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg := &domain.Registration{
		EventID:        req.EventID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		TicketQuantity: req.TicketQuantity,
	}
	created, err := c.Service.Register(r.Context(), reg)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteError(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteError(w, http.StatusBadRequest, "You have already registered")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteError(w, http.StatusInternalServerError, helpers.InternalErrorMessage)
		}
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, CreateRegistrationResponse{
		Message:        "Registration successful",
		RegistrationID: created.ID,
		TotalAmount:    created.TotalAmount,
	})
}
