package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/livinghopeag/churchapi/internal/model"
	"github.com/livinghopeag/churchapi/internal/store"
)

// PublicHandler serves the unauthenticated site endpoints: active content
// listings, church info, and the contact form. Inactive records never leave
// this surface.
type PublicHandler struct {
	store  *store.Store
	church model.ChurchInfo
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(st *store.Store, church model.ChurchInfo) *PublicHandler {
	return &PublicHandler{store: st, church: church}
}

// Health reports liveness for the public API prefix.
// GET /api/health
func (h *PublicHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// ChurchInfo returns the configured church profile.
// GET /api/church-info
func (h *PublicHandler) ChurchInfo(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.church)
}

// ListAnnouncements returns active announcements, newest first.
// GET /api/announcements
func (h *PublicHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	anns, err := h.store.ListActiveAnnouncements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch announcements")
		return
	}
	writeData(w, http.StatusOK, anns)
}

// ListEvents returns active events.
// GET /api/events
func (h *PublicHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListActiveEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	writeData(w, http.StatusOK, events)
}

// GetEvent returns one event by ID. Inactive events are hidden from this
// surface and report not found.
// GET /api/events/{eventID}
func (h *PublicHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "eventID")
	event, err := h.store.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	if !event.IsActive {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	writeData(w, http.StatusOK, event)
}

// ListMedia returns active sermons and recordings.
// GET /api/media
func (h *PublicHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	media, err := h.store.ListActiveMedia(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}
	writeData(w, http.StatusOK, media)
}

type contactRequest struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	CountryCode       string `json:"country_code"`
	Subject           string `json:"subject"`
	Message           string `json:"message"`
	ContactPermission bool   `json:"contact_permission"`
}

// SubmitContactForm accepts a message from the public contact page.
// POST /api/contact
func (h *PublicHandler) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FullName == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Full name, email, subject, and message are required")
		return
	}

	form := &model.ContactForm{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		CountryCode:       req.CountryCode,
		Subject:           req.Subject,
		Message:           req.Message,
		ContactPermission: req.ContactPermission,
	}
	if err := h.store.CreateContactForm(r.Context(), form); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}
	writeData(w, http.StatusCreated, map[string]string{
		"id":      form.ID,
		"message": "Thank you for contacting us. We will get back to you soon.",
	})
}
