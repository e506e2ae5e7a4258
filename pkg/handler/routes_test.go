package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/goliatone/go-qrgen/pkg/testsupport"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/"); got != "/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("qr"); got != "/qr/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/tools/", WithRoutePath("qr")); got != "/tools/qr" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestRegisterRoutes_RegistersHandler(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/tools", WithRoutePath("/qr"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/tools/qr" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	rec := testsupport.PostText(t, mux, pattern, "https://example.com")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<a href="/tools/qr" class="back-link">`) {
		t.Fatalf("expected back link to the mount path\n%s", rec.Body.String())
	}
}

func TestRegisterRoutes_ExplicitBackPath(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/", WithBackPath("/home"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rec := testsupport.PostText(t, mux, pattern, "https://example.com")
	if !strings.Contains(rec.Body.String(), `<a href="/home" class="back-link">`) {
		t.Fatalf("expected explicit back link")
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
