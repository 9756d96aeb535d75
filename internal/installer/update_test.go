package installer

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const releasePageHTML = `<html><body>
<time datetime="2025-11-02T10:00:00Z">Nov 2, 2025</time>
<a href="/downloads/old">FastEncode Pro - Accessibility Edition v0.05</a>
<a href="/downloads/new">FastEncode Pro - Accessibility Edition v0.06.py</a>
<a href="/other">Release notes</a>
</body></html>`

func TestCheckLatestPicksHighestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, releasePageHTML)
	}))
	defer srv.Close()

	release, err := CheckLatest(srv.URL)
	if err != nil {
		t.Fatalf("CheckLatest() error: %v", err)
	}

	if release.Version != "0.06" {
		t.Errorf("Version = %q, want 0.06", release.Version)
	}
	if want := srv.URL + "/downloads/new"; release.URL != want {
		t.Errorf("URL = %q, want %q", release.URL, want)
	}
	if release.Published.IsZero() {
		t.Error("Published date should be parsed from the page")
	} else if release.Published.Year() != 2025 {
		t.Errorf("Published year = %d, want 2025", release.Published.Year())
	}
}

func TestCheckLatestNoReleases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><a href='/x'>nothing here</a></body></html>")
	}))
	defer srv.Close()

	if _, err := CheckLatest(srv.URL); err == nil {
		t.Fatal("expected an error when no release links match")
	}
}

func TestVersionLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"0.05", "0.06", true},
		{"0.06", "0.05", false},
		{"0.06", "0.06", false},
		{"0.06", "0.1", true},
		{"1", "0.9", false},
	}

	for _, tt := range tests {
		if got := versionLess(tt.a, tt.b); got != tt.want {
			t.Errorf("versionLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
