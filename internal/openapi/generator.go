// Package openapi generates the OpenAPI 3.1 description of the church API.
// The route set is fixed, so the document is assembled from static builders
// rather than introspection.
package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// entityField describes one property of an API entity schema.
type entityField struct {
	name     string
	typ      string
	format   string
	required bool
}

var (
	announcementFields = []entityField{
		{name: "id", typ: "string"},
		{name: "title", typ: "string", required: true},
		{name: "content", typ: "string", required: true},
		{name: "date", typ: "string"},
		{name: "icon", typ: "string"},
		{name: "is_active", typ: "boolean"},
		{name: "created_at", typ: "string", format: "date-time"},
		{name: "updated_at", typ: "string", format: "date-time"},
	}
	eventFields = []entityField{
		{name: "id", typ: "string"},
		{name: "title", typ: "string", required: true},
		{name: "description", typ: "string", required: true},
		{name: "date", typ: "string", required: true},
		{name: "time", typ: "string", required: true},
		{name: "location", typ: "string", required: true},
		{name: "category", typ: "string"},
		{name: "image_url", typ: "string"},
		{name: "registration_required", typ: "boolean"},
		{name: "contact_info", typ: "string"},
		{name: "gallery_folder_url", typ: "string"},
		{name: "is_active", typ: "boolean"},
		{name: "created_at", typ: "string", format: "date-time"},
		{name: "updated_at", typ: "string", format: "date-time"},
	}
	mediaFields = []entityField{
		{name: "id", typ: "string"},
		{name: "title", typ: "string", required: true},
		{name: "speaker", typ: "string", required: true},
		{name: "date", typ: "string", required: true},
		{name: "description", typ: "string"},
		{name: "video_url", typ: "string"},
		{name: "audio_url", typ: "string"},
		{name: "scripture", typ: "string"},
		{name: "series", typ: "string"},
		{name: "duration", typ: "string"},
		{name: "is_active", typ: "boolean"},
		{name: "created_at", typ: "string", format: "date-time"},
		{name: "updated_at", typ: "string", format: "date-time"},
	}
	contactFormFields = []entityField{
		{name: "id", typ: "string"},
		{name: "full_name", typ: "string", required: true},
		{name: "email", typ: "string", format: "email", required: true},
		{name: "phone", typ: "string"},
		{name: "country_code", typ: "string"},
		{name: "subject", typ: "string", required: true},
		{name: "message", typ: "string", required: true},
		{name: "contact_permission", typ: "boolean"},
		{name: "is_read", typ: "boolean"},
		{name: "created_at", typ: "string", format: "date-time"},
	}
)

// Generate builds the full API document and returns it as JSON.
func Generate(churchName string) ([]byte, error) {
	doc := Document(churchName)
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	return data, nil
}

// Document builds the OpenAPI document for the church API.
func Document(churchName string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.1.0",
		Info: &openapi3.Info{
			Title:       fmt.Sprintf("%s API", churchName),
			Description: "Public content and admin management API for the church website.",
			Version:     "1.0.0",
		},
	}

	components := openapi3.NewComponents()
	components.Schemas = openapi3.Schemas{}
	components.SecuritySchemes = openapi3.SecuritySchemes{}
	doc.Components = &components

	doc.Components.SecuritySchemes["bearerAuth"] = &openapi3.SecuritySchemeRef{
		Value: &openapi3.SecurityScheme{
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}

	doc.Components.Schemas["ErrorResponse"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"success": &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"boolean"}}},
				"error":   &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}},
			},
		},
	}
	doc.Components.Schemas["Announcement"] = fieldsToSchema(announcementFields)
	doc.Components.Schemas["Event"] = fieldsToSchema(eventFields)
	doc.Components.Schemas["Media"] = fieldsToSchema(mediaFields)
	doc.Components.Schemas["ContactForm"] = fieldsToSchema(contactFormFields)

	doc.Paths = openapi3.NewPaths()

	addPublicPaths(doc)
	addAdminPaths(doc)

	return doc
}

func addPublicPaths(doc *openapi3.T) {
	doc.Paths.Set("/api/health", &openapi3.PathItem{
		Get: publicOperation("health", "Health check", "Reports API liveness.",
			objectResponse("200", "API is healthy")),
	})
	doc.Paths.Set("/api/church-info", &openapi3.PathItem{
		Get: publicOperation("church", "Get church info", "Returns the church profile: name, address, service times, social links.",
			objectResponse("200", "Church profile")),
	})
	doc.Paths.Set("/api/announcements", &openapi3.PathItem{
		Get: publicOperation("announcements", "List announcements", "Returns active announcements, newest first.",
			listResponse("200", "Active announcements", "Announcement")),
	})
	doc.Paths.Set("/api/events", &openapi3.PathItem{
		Get: publicOperation("events", "List events", "Returns active events.",
			listResponse("200", "Active events", "Event")),
	})
	doc.Paths.Set("/api/events/{eventID}", &openapi3.PathItem{
		Get: withPathParam(publicOperation("events", "Get event", "Returns one active event by ID.",
			itemResponse("200", "The event", "Event")), "eventID"),
	})
	doc.Paths.Set("/api/events/{eventID}/gallery", &openapi3.PathItem{
		Get: withPathParam(publicOperation("events", "Get event gallery", "Returns photos from the event's linked Drive folder.",
			objectResponse("200", "Gallery images")), "eventID"),
	})
	doc.Paths.Set("/api/media", &openapi3.PathItem{
		Get: publicOperation("media", "List media", "Returns active sermons and recordings.",
			listResponse("200", "Active media", "Media")),
	})
	doc.Paths.Set("/api/contact", &openapi3.PathItem{
		Post: withBody(publicOperation("contact", "Submit contact form", "Accepts a message from the public contact page.",
			objectResponse("201", "Submission accepted")), "ContactForm"),
	})
	doc.Paths.Set("/api/extract-youtube", &openapi3.PathItem{
		Post: publicOperation("links", "Extract YouTube metadata", "Fetches title and author for a YouTube video URL.",
			objectResponse("200", "Video metadata")),
	})
	doc.Paths.Set("/api/resolve-map-url", &openapi3.PathItem{
		Post: publicOperation("links", "Resolve map URL", "Expands a shortened Google Maps link.",
			objectResponse("200", "Resolved URL")),
	})
}

func addAdminPaths(doc *openapi3.T) {
	doc.Paths.Set("/api/admin/login", &openapi3.PathItem{
		Post: publicOperation("auth", "Admin login", "Exchanges username and password for a bearer token.",
			objectResponse("200", "Access token and admin profile")),
	})

	doc.Paths.Set("/api/admin/contact-forms", &openapi3.PathItem{
		Get: adminOperation("contact", "List contact forms", "Returns all submitted contact messages, newest first.",
			listResponse("200", "Contact messages", "ContactForm")),
	})
	doc.Paths.Set("/api/admin/contact-forms/{formID}/read", &openapi3.PathItem{
		Patch: withPathParam(adminOperation("contact", "Mark message read", "Flags one inbox message as read.",
			objectResponse("200", "Message marked as read")), "formID"),
	})

	addAdminCRUD(doc, "announcements", "Announcement", "announcementID")
	addAdminCRUD(doc, "events", "Event", "eventID")
	addAdminCRUD(doc, "media", "Media", "mediaID")
}

// addAdminCRUD registers the list/create collection path and the
// update/delete item path for one content entity.
func addAdminCRUD(doc *openapi3.T, name, schemaName, idParam string) {
	doc.Paths.Set("/api/admin/"+name, &openapi3.PathItem{
		Get: adminOperation(name, fmt.Sprintf("List %s", name),
			fmt.Sprintf("Returns all %s, including inactive ones.", name),
			listResponse("200", "All records", schemaName)),
		Post: withBody(adminOperation(name, fmt.Sprintf("Create %s", schemaName),
			fmt.Sprintf("Creates a new %s record.", schemaName),
			itemResponse("201", "Created record", schemaName)), schemaName),
	})
	doc.Paths.Set(fmt.Sprintf("/api/admin/%s/{%s}", name, idParam), &openapi3.PathItem{
		Put: withPathParam(withBody(adminOperation(name, fmt.Sprintf("Update %s", schemaName),
			"Modifies fields present in the body; omitted fields are unchanged.",
			itemResponse("200", "Updated record", schemaName)), schemaName), idParam),
		Delete: withPathParam(adminOperation(name, fmt.Sprintf("Delete %s", schemaName),
			"Removes the record permanently.",
			objectResponse("200", "Record deleted")), idParam),
	})
}

// ─── Builders ───────────────────────────────────────────────────────────────

func fieldsToSchema(fields []entityField) *openapi3.SchemaRef {
	props := openapi3.Schemas{}
	var required []string
	for _, f := range fields {
		s := &openapi3.Schema{Type: &openapi3.Types{f.typ}}
		if f.format != "" {
			s.Format = f.format
		}
		props[f.name] = &openapi3.SchemaRef{Value: s}
		if f.required {
			required = append(required, f.name)
		}
	}
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:       &openapi3.Types{"object"},
			Properties: props,
			Required:   required,
		},
	}
}

func publicOperation(tag, summary, description string, responses *openapi3.Responses) *openapi3.Operation {
	return &openapi3.Operation{
		Tags:        []string{tag},
		Summary:     summary,
		Description: description,
		Responses:   responses,
	}
}

func adminOperation(tag, summary, description string, responses *openapi3.Responses) *openapi3.Operation {
	op := publicOperation(tag, summary, description, responses)
	op.Security = &openapi3.SecurityRequirements{{"bearerAuth": {}}}
	return op
}

func withPathParam(op *openapi3.Operation, name string) *openapi3.Operation {
	p := openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema())
	p.Required = true
	op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: p})
	return op
}

func withBody(op *openapi3.Operation, schemaName string) *openapi3.Operation {
	ref := openapi3.NewSchemaRef("#/components/schemas/"+schemaName, nil)
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Required: true,
			Content:  openapi3.NewContentWithJSONSchemaRef(ref),
		},
	}
	return op
}

// envelope wraps a data schema in the standard success response shape.
func envelope(data *openapi3.SchemaRef) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"success": &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"boolean"}}},
				"data":    data,
			},
		},
	}
}

func listResponse(statusCode, description, schemaName string) *openapi3.Responses {
	return newResponses(statusCode, description, envelope(&openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:  &openapi3.Types{"array"},
			Items: openapi3.NewSchemaRef("#/components/schemas/"+schemaName, nil),
		},
	}))
}

func itemResponse(statusCode, description, schemaName string) *openapi3.Responses {
	return newResponses(statusCode, description,
		envelope(openapi3.NewSchemaRef("#/components/schemas/"+schemaName, nil)))
}

func objectResponse(statusCode, description string) *openapi3.Responses {
	return newResponses(statusCode, description,
		envelope(&openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"object"}}}))
}

// newResponses builds a Responses map with a success response and standard
// error responses.
func newResponses(statusCode, description string, schema *openapi3.SchemaRef) *openapi3.Responses {
	responses := openapi3.NewResponses()

	successDesc := description
	responses.Set(statusCode, &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &successDesc,
			Content:     openapi3.NewContentWithJSONSchemaRef(schema),
		},
	})

	errorRef := openapi3.NewSchemaRef("#/components/schemas/ErrorResponse", nil)

	badReqDesc := "Bad request"
	responses.Set("400", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &badReqDesc,
			Content:     openapi3.NewContentWithJSONSchemaRef(errorRef),
		},
	})

	unauthDesc := "Unauthorized"
	responses.Set("401", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &unauthDesc,
			Content:     openapi3.NewContentWithJSONSchemaRef(errorRef),
		},
	})

	notFoundDesc := "Not found"
	responses.Set("404", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &notFoundDesc,
			Content:     openapi3.NewContentWithJSONSchemaRef(errorRef),
		},
	})

	serverErrDesc := "Internal server error"
	responses.Set("500", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &serverErrDesc,
			Content:     openapi3.NewContentWithJSONSchemaRef(errorRef),
		},
	})

	return responses
}
