package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/livinghopeag/churchapi/internal/model"
	"github.com/livinghopeag/churchapi/internal/store"
)

func newTestLinkHandler(t *testing.T) (*LinkHandler, *store.Store) {
	t.Helper()
	st, err := store.Open("sqlite", "")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewLinkHandler(st, nil), st
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, v interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	req := httptest.NewRequest("POST", path, buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestExtractYouTube_RejectsNonYouTubeURLs(t *testing.T) {
	h, _ := newTestLinkHandler(t)

	for _, u := range []string{
		"",
		"not a url",
		"https://vimeo.com/12345",
		"https://example.com/watch?v=abc123def",
		"ftp://youtube.com/watch?v=abc123def",
	} {
		rr := postJSON(t, h.ExtractYouTube, "/api/extract-youtube", map[string]string{"url": u})
		if rr.Code != http.StatusBadRequest {
			t.Errorf("url %q: status = %d, want 400", u, rr.Code)
		}
	}
}

func TestYouTubeURLPattern(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
	}
	for _, u := range valid {
		if !youtubeURLPattern.MatchString(u) {
			t.Errorf("expected %q to match", u)
		}
	}
}

func TestResolveMapURL_RejectsUnknownHosts(t *testing.T) {
	h, _ := newTestLinkHandler(t)

	for _, u := range []string{
		"",
		"https://evil.example.com/redirect",
		"https://maps.app.goo.gl.evil.com/x",
	} {
		rr := postJSON(t, h.ResolveMapURL, "/api/resolve-map-url", map[string]string{"url": u})
		if rr.Code != http.StatusBadRequest {
			t.Errorf("url %q: status = %d, want 400", u, rr.Code)
		}
	}
}

func galleryRequest(t *testing.T, h *LinkHandler, eventID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/events/"+eventID+"/gallery", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("eventID", eventID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()
	h.EventGallery(rr, req)
	return rr
}

func TestEventGallery_NoFolderReturnsEmptyList(t *testing.T) {
	h, st := newTestLinkHandler(t)

	event := &model.Event{
		Title: "Picnic", Description: "d", Date: "d", Time: "t", Location: "l", IsActive: true,
	}
	if err := st.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	rr := galleryRequest(t, h, event.ID)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data []galleryImage `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("expected empty gallery, got %d images", len(resp.Data))
	}
}

func TestEventGallery_UnknownEvent(t *testing.T) {
	h, _ := newTestLinkHandler(t)

	rr := galleryRequest(t, h, "no-such-event")
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestEventGallery_MalformedFolderURL(t *testing.T) {
	h, st := newTestLinkHandler(t)

	event := &model.Event{
		Title: "Picnic", Description: "d", Date: "d", Time: "t", Location: "l",
		GalleryFolderURL: "https://example.com/not-a-drive-folder",
		IsActive:         true,
	}
	if err := st.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	rr := galleryRequest(t, h, event.ID)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestDriveFolderPattern(t *testing.T) {
	m := driveFolderPattern.FindStringSubmatch("https://drive.google.com/drive/folders/1AbC_dEf-123?usp=sharing")
	if m == nil || m[1] != "1AbC_dEf-123" {
		t.Errorf("folder pattern: got %v", m)
	}
}
