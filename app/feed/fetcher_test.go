package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testRSS = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>First Item</title>
      <link>https://example.com/item1</link>
      <description>First description</description>
      <guid>item-1</guid>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second Item</title>
      <link>https://example.com/item2</link>
      <description>Second description</description>
      <guid>item-2</guid>
    </item>
  </channel>
</rss>`

func TestFetchParsesEntriesInOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent/1.0" {
			t.Errorf("Expected user agent 'test-agent/1.0', got '%s'", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testRSS))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5*time.Second, "test-agent/1.0")
	entries, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Title != "First Item" {
		t.Errorf("Expected title 'First Item', got '%s'", first.Title)
	}
	if first.GUID != "item-1" {
		t.Errorf("Expected GUID 'item-1', got '%s'", first.GUID)
	}
	if first.ID != "item-1" {
		t.Errorf("Expected ID 'item-1', got '%s'", first.ID)
	}
	if first.Link != "https://example.com/item1" {
		t.Errorf("Expected link 'https://example.com/item1', got '%s'", first.Link)
	}
	if first.Summary != "First description" {
		t.Errorf("Expected summary 'First description', got '%s'", first.Summary)
	}
	if first.PublishedParsed == nil {
		t.Error("Expected parsed publication time for first entry")
	}

	second := entries[1]
	if second.Title != "Second Item" {
		t.Errorf("Expected title 'Second Item', got '%s'", second.Title)
	}
	if second.PublishedParsed != nil {
		t.Error("Second entry has no pubDate, parsed time should be nil")
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5*time.Second, "test-agent/1.0")
	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for non-2xx status")
	}
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5*time.Second, "test-agent/1.0")
	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for malformed feed body")
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	fetcher := NewHTTPFetcher(time.Second, "test-agent/1.0")
	if _, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/feed.xml"); err == nil {
		t.Error("Expected error for unreachable host")
	}
}
