package openapi

import (
	"encoding/json"
	"testing"
)

func TestDocument_PathsPresent(t *testing.T) {
	doc := Document("Living Hope AG")

	wantPaths := []string{
		"/api/health",
		"/api/church-info",
		"/api/announcements",
		"/api/events",
		"/api/events/{eventID}",
		"/api/events/{eventID}/gallery",
		"/api/media",
		"/api/contact",
		"/api/extract-youtube",
		"/api/resolve-map-url",
		"/api/admin/login",
		"/api/admin/contact-forms",
		"/api/admin/contact-forms/{formID}/read",
		"/api/admin/announcements",
		"/api/admin/announcements/{announcementID}",
		"/api/admin/events",
		"/api/admin/events/{eventID}",
		"/api/admin/media",
		"/api/admin/media/{mediaID}",
	}
	for _, p := range wantPaths {
		if doc.Paths.Value(p) == nil {
			t.Errorf("missing path %s", p)
		}
	}

	if doc.Info.Title != "Living Hope AG API" {
		t.Errorf("title = %q, want %q", doc.Info.Title, "Living Hope AG API")
	}
}

func TestDocument_AdminOperationsRequireBearer(t *testing.T) {
	doc := Document("Test Church")

	item := doc.Paths.Value("/api/admin/events")
	if item == nil {
		t.Fatal("missing /api/admin/events path")
	}
	if item.Get.Security == nil || len(*item.Get.Security) == 0 {
		t.Error("GET /api/admin/events has no security requirement")
	}
	if item.Post.Security == nil || len(*item.Post.Security) == 0 {
		t.Error("POST /api/admin/events has no security requirement")
	}

	login := doc.Paths.Value("/api/admin/login")
	if login == nil {
		t.Fatal("missing /api/admin/login path")
	}
	if login.Post.Security != nil && len(*login.Post.Security) > 0 {
		t.Error("POST /api/admin/login should not require authentication")
	}
}

func TestDocument_ComponentSchemas(t *testing.T) {
	doc := Document("Test Church")

	for _, name := range []string{"Announcement", "Event", "Media", "ContactForm", "ErrorResponse"} {
		if _, ok := doc.Components.Schemas[name]; !ok {
			t.Errorf("missing component schema %s", name)
		}
	}

	event := doc.Components.Schemas["Event"].Value
	if _, ok := event.Properties["gallery_folder_url"]; !ok {
		t.Error("Event schema missing gallery_folder_url")
	}
	media := doc.Components.Schemas["Media"].Value
	if _, ok := media.Properties["speaker"]; !ok {
		t.Error("Media schema missing speaker")
	}

	if _, ok := doc.Components.SecuritySchemes["bearerAuth"]; !ok {
		t.Error("missing bearerAuth security scheme")
	}
}

func TestGenerate_ValidJSON(t *testing.T) {
	data, err := Generate("Test Church")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("generated spec is not valid JSON: %v", err)
	}
	if decoded["openapi"] != "3.1.0" {
		t.Errorf("openapi version = %v, want 3.1.0", decoded["openapi"])
	}
}
