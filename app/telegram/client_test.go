package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(apiURL string) *Client {
	client := NewClient("test-token", "12345", 5*time.Second)
	client.apiURL = apiURL
	return client
}

func TestSendPostsMessage(t *testing.T) {
	var received sendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sendMessage" {
			t.Errorf("Expected path '/sendMessage', got '%s'", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected JSON content type, got '%s'", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	if err := client.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if received.ChatID != "12345" {
		t.Errorf("Expected chat_id '12345', got '%s'", received.ChatID)
	}
	if received.Text != "hello" {
		t.Errorf("Expected text 'hello', got '%s'", received.Text)
	}
}

func TestSendNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"ok":false}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	if err := client.Send(context.Background(), "hello"); err == nil {
		t.Error("Expected error for non-success status")
	}
}

func TestSendMissingCredentials(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := NewClient("", "", 5*time.Second)
	client.apiURL = server.URL

	err := client.Send(context.Background(), "hello")
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("Expected ErrMissingCredentials, got %v", err)
	}
	if requested {
		t.Error("No network call must happen when credentials are missing")
	}
}
