package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunListFormatsPresentations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/user-1/presentations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"presentations":[{"id":"p1","title":"Roadmap","slides":[{},{}],"updatedAt":"2026-03-01T12:00:00Z"}],"count":1}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	if err := runList(srv.URL, "user-1", &out); err != nil {
		t.Fatalf("runList: %v", err)
	}
	if !strings.Contains(out.String(), "Roadmap") || !strings.Contains(out.String(), "2 slides") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestRunGetSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Not Found","code":404}`, http.StatusNotFound)
	}))
	defer srv.Close()

	err := runGet(srv.URL, "user-1", "missing", &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "http 404") {
		t.Fatalf("expected http 404 error, got %v", err)
	}
}

func TestRunExportWritesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "print" {
			t.Errorf("format query = %q", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="roadmap.html"`)
		_, _ = w.Write([]byte("<!DOCTYPE html>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	target := filepath.Join(dir, "out.html")

	var out bytes.Buffer
	if err := runExport(srv.URL, "user-1", "p1", "print", target, &out); err != nil {
		t.Fatalf("runExport: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if string(data) != "<!DOCTYPE html>" {
		t.Fatalf("unexpected file contents: %s", data)
	}
}

func TestRunGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"p9","title":"Team onboarding","slides":[{},{},{}]}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	if err := runGenerate(srv.URL, "user-1", "Team onboarding", "", "", &out); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}
	if !strings.Contains(out.String(), "3 slide(s)") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}
