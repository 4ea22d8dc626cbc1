package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGet_ReturnsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode())
	}
	body, _ := io.ReadAll(resp.Body())
	if string(body) != "hello" {
		t.Errorf("body = %q", body)
	}
	if resp.Header("Content-Type") != "text/html" {
		t.Errorf("Content-Type = %q", resp.Header("Content-Type"))
	}
}

func TestGet_SetsIdentifyingHeaders(t *testing.T) {
	var gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if !strings.Contains(gotUA, "HN-RSS-Translator") {
		t.Errorf("User-Agent = %q, want identifying string", gotUA)
	}
	if gotAccept == "" {
		t.Error("Accept header not set")
	}
}

func TestGet_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if attempts != 3 {
		t.Errorf("server saw %d attempts, want 3", attempts)
	}
	if resp.StatusCode() != 200 {
		t.Errorf("status = %d, want 200 after retries", resp.StatusCode())
	}
}

func TestGet_DoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if attempts != 1 {
		t.Errorf("server saw %d attempts, want 1 for 404", attempts)
	}
	if resp.StatusCode() != 404 {
		t.Errorf("status = %d, want 404", resp.StatusCode())
	}
}

func TestGet_GivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Get(context.Background(), server.URL)

	if err == nil {
		t.Error("Get should return error after exhausting retries")
	}
	if attempts != maxRetries {
		t.Errorf("server saw %d attempts, want %d", attempts, maxRetries)
	}
}

func TestGet_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(5 * time.Second)
	_, err := client.Get(ctx, server.URL)

	if err == nil {
		t.Error("Get should fail with a cancelled context")
	}
}

func TestPost_SendsJSONContentType(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	resp, err := client.Post(context.Background(), server.URL, strings.NewReader(`{"q":"hi"}`))

	if err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	defer resp.Body().Close()

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody != `{"q":"hi"}` {
		t.Errorf("body = %q", gotBody)
	}
}
