package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidURL_AcceptsURLs(t *testing.T) {
	accepted := []string{
		"https://example.com",
		"http://example.com",
		"http://sub.example.co.uk/path?q=1",
		"HTTPS://EXAMPLE.COM/Upper",
		"https://example.com/a/b#frag",
		"https://my-host.example.org:8080/x",
		"https://ab.cd",
	}
	for _, text := range accepted {
		if !ValidURL(text) {
			t.Fatalf("expected %q to be valid", text)
		}
	}
}

func TestValidURL_RejectsNonURLs(t *testing.T) {
	rejected := []string{
		"",
		"not-a-url",
		"ftp://example.com",
		"https://",
		"http://localhost",
		"https://ab.c",
		"example.com",
		"https://example.com/with space",
		"https://example.com/<script>",
		" https://example.com",
		"https://example.com\n",
		"https://bücher.de",
		"https://example.com/\"x",
	}
	for _, text := range rejected {
		if ValidURL(text) {
			t.Fatalf("expected %q to be rejected", text)
		}
	}
}

func TestCheckURL_Err(t *testing.T) {
	if err := CheckURL("https://example.com").Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	result := CheckURL("not-a-url")
	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	err := result.Err()
	if !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
	if !strings.Contains(err.Error(), `"not-a-url"`) {
		t.Fatalf("expected offending text in error, got %q", err.Error())
	}
}
