package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/livinghopeag/churchapi/internal/store"
)

var (
	youtubeURLPattern   = regexp.MustCompile(`^https?://(www\.)?(youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)[\w-]{6,}`)
	driveFolderPattern  = regexp.MustCompile(`/folders/([A-Za-z0-9_-]+)`)
	driveFileIDPattern  = regexp.MustCompile(`https://drive\.google\.com/file/d/([A-Za-z0-9_-]{10,})`)
	googleMapsHostnames = map[string]bool{
		"maps.app.goo.gl": true,
		"goo.gl":          true,
		"maps.google.com": true,
		"www.google.com":  true,
		"google.com":      true,
	}
)

// LinkHandler resolves third-party URLs the site embeds: YouTube video
// metadata, shortened Google Maps links, and Google Drive photo galleries.
// All outbound fetches share one client with a hard timeout so a slow
// upstream cannot pin request goroutines.
type LinkHandler struct {
	store    *store.Store
	client   *http.Client
	noFollow *http.Client
}

// NewLinkHandler creates a LinkHandler. If client is nil a default with a
// 10 second timeout is used.
func NewLinkHandler(st *store.Store, client *http.Client) *LinkHandler {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &LinkHandler{
		store:  st,
		client: client,
		noFollow: &http.Client{
			Timeout: client.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// ---------------------------------------------------------------------------
// YouTube metadata
// ---------------------------------------------------------------------------

type extractYouTubeRequest struct {
	URL string `json:"url"`
}

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// ExtractYouTube fetches title and author for a YouTube video via the public
// oEmbed endpoint, so admins can prefill a media record from a pasted link.
// POST /api/extract-youtube
func (h *LinkHandler) ExtractYouTube(w http.ResponseWriter, r *http.Request) {
	var req extractYouTubeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !youtubeURLPattern.MatchString(req.URL) {
		writeError(w, http.StatusBadRequest, "Not a valid YouTube URL")
		return
	}

	oembedURL := "https://www.youtube.com/oembed?format=json&url=" + url.QueryEscape(req.URL)
	meta, err := h.fetchOEmbed(r.Context(), oembedURL)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Could not fetch video details")
		return
	}

	writeData(w, http.StatusOK, map[string]string{
		"title":       meta.Title,
		"description": fmt.Sprintf("Uploaded by %s", meta.AuthorName),
		"date":        time.Now().Format("January 2, 2006"),
		"video_url":   req.URL,
	})
}

func (h *LinkHandler) fetchOEmbed(ctx context.Context, oembedURL string) (*oembedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oembed returned status %d", resp.StatusCode)
	}

	var meta oembedResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode oembed response: %w", err)
	}
	return &meta, nil
}

// ---------------------------------------------------------------------------
// Google Maps short links
// ---------------------------------------------------------------------------

type resolveMapRequest struct {
	URL string `json:"url"`
}

// ResolveMapURL expands a shortened Google Maps link by following its
// redirect once, returning the full destination URL. Only known Google
// hosts are contacted.
// POST /api/resolve-map-url
func (h *LinkHandler) ResolveMapURL(w http.ResponseWriter, r *http.Request) {
	var req resolveMapRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	parsed, err := url.Parse(req.URL)
	if err != nil || !googleMapsHostnames[parsed.Hostname()] {
		writeError(w, http.StatusBadRequest, "Not a valid Google Maps URL")
		return
	}

	outReq, err := http.NewRequestWithContext(r.Context(), http.MethodGet, req.URL, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Not a valid Google Maps URL")
		return
	}
	resp, err := h.noFollow.Do(outReq)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Could not resolve map URL")
		return
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
	resp.Body.Close()

	resolved := req.URL
	if loc := resp.Header.Get("Location"); loc != "" {
		resolved = loc
	}
	writeData(w, http.StatusOK, map[string]string{"resolved_url": resolved})
}

// ---------------------------------------------------------------------------
// Google Drive event galleries
// ---------------------------------------------------------------------------

// EventGallery lists the photos in an event's linked Google Drive folder.
// Events without a gallery folder return an empty list rather than an error
// so the frontend can render unconditionally.
// GET /api/events/{eventID}/gallery
func (h *LinkHandler) EventGallery(w http.ResponseWriter, r *http.Request) {
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

	if event.GalleryFolderURL == "" {
		writeData(w, http.StatusOK, []galleryImage{})
		return
	}

	m := driveFolderPattern.FindStringSubmatch(event.GalleryFolderURL)
	if m == nil {
		writeError(w, http.StatusBadRequest, "Event gallery link is not a Drive folder URL")
		return
	}

	images, err := h.fetchDriveFolder(r, m[1])
	if err != nil {
		writeError(w, http.StatusBadGateway, "Could not fetch gallery")
		return
	}
	writeData(w, http.StatusOK, images)
}

type galleryImage struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumbnail_url"`
	ViewURL      string `json:"view_url"`
}

// fetchDriveFolder scrapes the public embedded folder view for file IDs.
// Drive exposes no unauthenticated listing API for shared folders, but the
// embed page links every file by its ID.
func (h *LinkHandler) fetchDriveFolder(r *http.Request, folderID string) ([]galleryImage, error) {
	embedURL := "https://drive.google.com/embeddedfolderview?id=" + url.PathEscape(folderID)
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, embedURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("drive returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	images := []galleryImage{}
	for _, m := range driveFileIDPattern.FindAllStringSubmatch(string(body), -1) {
		fileID := m[1]
		if seen[fileID] {
			continue
		}
		seen[fileID] = true
		images = append(images, galleryImage{
			ID:           fileID,
			ThumbnailURL: "https://drive.google.com/thumbnail?id=" + fileID + "&sz=w400",
			ViewURL:      "https://drive.google.com/uc?export=view&id=" + fileID,
		})
	}
	return images, nil
}
