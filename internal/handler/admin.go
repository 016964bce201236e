package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/livinghopeag/churchapi/internal/model"
	"github.com/livinghopeag/churchapi/internal/service"
	"github.com/livinghopeag/churchapi/internal/store"
)

// AdminHandler serves the authenticated admin surface: login, the
// contact-form inbox, and content CRUD. Authorization happens in the
// Authenticate middleware before any of these run; handlers here trust the
// gate's decision and perform no further checks.
type AdminHandler struct {
	store   *store.Store
	authSvc *service.AuthService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(st *store.Store, authSvc *service.AuthService) *AdminHandler {
	return &AdminHandler{store: st, authSvc: authSvc}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an admin and returns a bearer token.
// POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, admin, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeData(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   int(h.authSvc.TokenTTL().Seconds()),
		"user":         admin.Public(),
	})
}

// ---------------------------------------------------------------------------
// Contact-form inbox
// ---------------------------------------------------------------------------

// ListContactForms returns every submitted contact message, newest first.
// GET /api/admin/contact-forms
func (h *AdminHandler) ListContactForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.store.ListContactForms(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch contact forms")
		return
	}
	writeData(w, http.StatusOK, forms)
}

// MarkContactFormRead flags one inbox message as read.
// PATCH /api/admin/contact-forms/{formID}/read
func (h *AdminHandler) MarkContactFormRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "formID")
	if err := h.store.MarkContactFormRead(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Message not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to mark message as read")
		return
	}
	writeData(w, http.StatusOK, map[string]string{"message": "Message marked as read"})
}

// ---------------------------------------------------------------------------
// Announcements
// ---------------------------------------------------------------------------

type announcementRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Icon     string `json:"icon"`
	IsActive *bool  `json:"is_active"`
}

// ListAnnouncements returns all announcements, including inactive ones.
// GET /api/admin/announcements
func (h *AdminHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	anns, err := h.store.ListAnnouncements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch announcements")
		return
	}
	writeData(w, http.StatusOK, anns)
}

// CreateAnnouncement creates a new announcement.
// POST /api/admin/announcements
func (h *AdminHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	ann := &model.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		Date:     req.Date,
		Icon:     req.Icon,
		IsActive: true,
	}
	if ann.Icon == "" {
		ann.Icon = "Megaphone"
	}
	if ann.Date == "" {
		ann.Date = time.Now().Format("January 2, 2006")
	}
	if req.IsActive != nil {
		ann.IsActive = *req.IsActive
	}

	if err := h.store.CreateAnnouncement(r.Context(), ann); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create announcement")
		return
	}
	writeData(w, http.StatusCreated, ann)
}

// UpdateAnnouncement modifies an existing announcement. Only fields present
// in the body are changed.
// PUT /api/admin/announcements/{announcementID}
func (h *AdminHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "announcementID")

	existing, err := h.store.GetAnnouncement(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Announcement not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch announcement")
		return
	}

	var req announcementRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title != "" {
		existing.Title = req.Title
	}
	if req.Content != "" {
		existing.Content = req.Content
	}
	if req.Date != "" {
		existing.Date = req.Date
	}
	if req.Icon != "" {
		existing.Icon = req.Icon
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.store.UpdateAnnouncement(r.Context(), existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update announcement")
		return
	}
	writeData(w, http.StatusOK, existing)
}

// DeleteAnnouncement removes an announcement.
// DELETE /api/admin/announcements/{announcementID}
func (h *AdminHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "announcementID")
	if err := h.store.DeleteAnnouncement(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Announcement not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete announcement")
		return
	}
	writeData(w, http.StatusOK, map[string]string{"message": "Announcement deleted successfully"})
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

type eventRequest struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Location             string `json:"location"`
	Category             string `json:"category"`
	ImageURL             string `json:"image_url"`
	RegistrationRequired *bool  `json:"registration_required"`
	ContactInfo          string `json:"contact_info"`
	GalleryFolderURL     string `json:"gallery_folder_url"`
	IsActive             *bool  `json:"is_active"`
}

// ListEvents returns all events, including inactive ones.
// GET /api/admin/events
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	writeData(w, http.StatusOK, events)
}

// CreateEvent creates a new event.
// POST /api/admin/events
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.Date == "" || req.Time == "" || req.Location == "" {
		writeError(w, http.StatusBadRequest, "Title, description, date, time, and location are required")
		return
	}

	event := &model.Event{
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		Time:             req.Time,
		Location:         req.Location,
		Category:         req.Category,
		ImageURL:         req.ImageURL,
		ContactInfo:      req.ContactInfo,
		GalleryFolderURL: req.GalleryFolderURL,
		IsActive:         true,
	}
	if req.RegistrationRequired != nil {
		event.RegistrationRequired = *req.RegistrationRequired
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := h.store.CreateEvent(r.Context(), event); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	writeData(w, http.StatusCreated, event)
}

// UpdateEvent modifies an existing event. Only fields present in the body
// are changed.
// PUT /api/admin/events/{eventID}
func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "eventID")

	existing, err := h.store.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	var req eventRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title != "" {
		existing.Title = req.Title
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.Date != "" {
		existing.Date = req.Date
	}
	if req.Time != "" {
		existing.Time = req.Time
	}
	if req.Location != "" {
		existing.Location = req.Location
	}
	if req.Category != "" {
		existing.Category = req.Category
	}
	if req.ImageURL != "" {
		existing.ImageURL = req.ImageURL
	}
	if req.ContactInfo != "" {
		existing.ContactInfo = req.ContactInfo
	}
	if req.GalleryFolderURL != "" {
		existing.GalleryFolderURL = req.GalleryFolderURL
	}
	if req.RegistrationRequired != nil {
		existing.RegistrationRequired = *req.RegistrationRequired
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.store.UpdateEvent(r.Context(), existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	writeData(w, http.StatusOK, existing)
}

// DeleteEvent removes an event.
// DELETE /api/admin/events/{eventID}
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "eventID")
	if err := h.store.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	writeData(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

// ---------------------------------------------------------------------------
// Media
// ---------------------------------------------------------------------------

type mediaRequest struct {
	Title       string `json:"title"`
	Speaker     string `json:"speaker"`
	Date        string `json:"date"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	AudioURL    string `json:"audio_url"`
	Scripture   string `json:"scripture"`
	Series      string `json:"series"`
	Duration    string `json:"duration"`
	IsActive    *bool  `json:"is_active"`
}

// ListMedia returns all media records, including inactive ones.
// GET /api/admin/media
func (h *AdminHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	media, err := h.store.ListMedia(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}
	writeData(w, http.StatusOK, media)
}

// CreateMedia creates a new media record.
// POST /api/admin/media
func (h *AdminHandler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	var req mediaRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Speaker == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "Title, speaker, and date are required")
		return
	}

	media := &model.Media{
		Title:       req.Title,
		Speaker:     req.Speaker,
		Date:        req.Date,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		AudioURL:    req.AudioURL,
		Scripture:   req.Scripture,
		Series:      req.Series,
		Duration:    req.Duration,
		IsActive:    true,
	}
	if req.IsActive != nil {
		media.IsActive = *req.IsActive
	}

	if err := h.store.CreateMedia(r.Context(), media); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create media")
		return
	}
	writeData(w, http.StatusCreated, media)
}

// UpdateMedia modifies an existing media record. Only fields present in the
// body are changed.
// PUT /api/admin/media/{mediaID}
func (h *AdminHandler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "mediaID")

	existing, err := h.store.GetMedia(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Media not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}

	var req mediaRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title != "" {
		existing.Title = req.Title
	}
	if req.Speaker != "" {
		existing.Speaker = req.Speaker
	}
	if req.Date != "" {
		existing.Date = req.Date
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.VideoURL != "" {
		existing.VideoURL = req.VideoURL
	}
	if req.AudioURL != "" {
		existing.AudioURL = req.AudioURL
	}
	if req.Scripture != "" {
		existing.Scripture = req.Scripture
	}
	if req.Series != "" {
		existing.Series = req.Series
	}
	if req.Duration != "" {
		existing.Duration = req.Duration
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := h.store.UpdateMedia(r.Context(), existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update media")
		return
	}
	writeData(w, http.StatusOK, existing)
}

// DeleteMedia removes a media record.
// DELETE /api/admin/media/{mediaID}
func (h *AdminHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "mediaID")
	if err := h.store.DeleteMedia(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Media not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete media")
		return
	}
	writeData(w, http.StatusOK, map[string]string{"message": "Media deleted successfully"})
}
