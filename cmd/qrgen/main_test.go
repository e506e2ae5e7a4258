package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckURLs(t *testing.T) {
	var out bytes.Buffer
	err := checkURLs(&out, []string{"https://example.com", "ftp://example.com", "https://"})
	if err == nil || !strings.Contains(err.Error(), "2 of 3 URLs invalid") {
		t.Fatalf("expected invalid count error, got %v", err)
	}
	want := "valid\thttps://example.com\ninvalid\tftp://example.com\ninvalid\thttps://\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}

	out.Reset()
	if err := checkURLs(&out, []string{"http://sub.example.co.uk/path?q=1"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestRenderCommand_HTML(t *testing.T) {
	out, err := executeCommand(t, "render", "https://example.com", "--renderer", "vanilla", "-o", "", "--back-path", "/")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `text: "https://example.com",`) {
		t.Fatalf("expected QR page, got:\n%s", out)
	}
}

func TestRenderCommand_TUIToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.json")
	out, err := executeCommand(t, "render", "nope", "--renderer", "tui", "--format", "json", "-o", path, "--back-path", "/")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Page written to "+path) {
		t.Fatalf("unexpected output %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var summary map[string]any
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary["valid"] != false || summary["text"] != "nope" {
		t.Fatalf("unexpected summary %v", summary)
	}
}

func TestOpenAPICommand(t *testing.T) {
	out, err := executeCommand(t, "openapi", "--base-path", "/qr", "--server-url", "")
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	paths, _ := doc["paths"].(map[string]any)
	if _, ok := paths["/qr/"]; !ok {
		t.Fatalf("expected /qr/ path, got %v", paths)
	}
}

func TestCheckCommand_Args(t *testing.T) {
	out, err := executeCommand(t, "check", "https://example.com")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out != "valid\thttps://example.com\n" {
		t.Fatalf("unexpected output %q", out)
	}
}
