package apidoc

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-qrgen/pkg/validation"
)

func TestDocument_DescribesPage(t *testing.T) {
	doc, err := Document(context.Background(), "/qr/")
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	if doc.Paths.Len() != 1 {
		t.Fatalf("expected one path, got %d", doc.Paths.Len())
	}
	item := doc.Paths.Value("/qr/")
	if item == nil || item.Get == nil || item.Post == nil {
		t.Fatalf("expected GET and POST on /qr/, got %#v", item)
	}

	for name, operation := range map[string]*openapi3.Operation{"GET": item.Get, "POST": item.Post} {
		resp := operation.Responses.Status(200)
		if resp == nil || resp.Value == nil || resp.Value.Content.Get("text/html") == nil {
			t.Fatalf("%s: expected 200 text/html response", name)
		}
	}

	media := item.Post.RequestBody.Value.Content.Get("application/x-www-form-urlencoded")
	if media == nil {
		t.Fatalf("expected url-encoded request body")
	}
	field := media.Schema.Value.Properties["text"]
	if field == nil || field.Value.Pattern != validation.URLPattern {
		t.Fatalf("expected text field with URL pattern, got %#v", field)
	}
	if item.Post.RequestBody.Value.Content.Get("multipart/form-data") == nil {
		t.Fatalf("expected multipart request body")
	}
}

func TestDocument_Options(t *testing.T) {
	doc, err := Document(context.Background(), "tools", WithField("url"), WithServerURL("https://qr.example.com"))
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	item := doc.Paths.Value("/tools")
	if item == nil {
		t.Fatalf("expected normalized path /tools")
	}
	schema := item.Post.RequestBody.Value.Content.Get("multipart/form-data").Schema.Value
	if _, ok := schema.Properties["url"]; !ok {
		t.Fatalf("expected custom field, got %v", schema.Properties)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "https://qr.example.com" {
		t.Fatalf("unexpected servers %#v", doc.Servers)
	}
}

func TestJSON_Indented(t *testing.T) {
	out, err := JSON(context.Background(), "/")
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi version %v", decoded["openapi"])
	}
	info, _ := decoded["info"].(map[string]any)
	if info["title"] != Title {
		t.Fatalf("unexpected title %v", info["title"])
	}
}

func TestDocument_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Document(ctx, "/"); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}
