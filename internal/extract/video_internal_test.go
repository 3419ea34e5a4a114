package extract

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
	<text start="0.5" dur="2.1">first segment</text>
	<text start="65.2" dur="3.0">second &amp; third</text>
	<text start="130.0" dur="1.0">   </text>
	<text start="190.4" dur="2.5">last segment</text>
</transcript>`

func newTranscriptExtractor(t *testing.T, langBodies map[string]string, langs []string) *TranscriptExtractor {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := langBodies[r.URL.Query().Get("lang")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)

	e := NewTranscriptExtractor(langs, slog.Default())
	e.baseURL = srv.URL

	return e
}

func TestTranscriptExtractorConcatenatesSegments(t *testing.T) {
	e := newTranscriptExtractor(t, map[string]string{"ja": sampleTimedText}, []string{"ja", "en"})

	content, err := e.Extract(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if content.Title != "abc123" {
		t.Fatalf("expected video ID as title, got %q", content.Title)
	}

	want := "[0:00] first segment\n[1:05] second & third\n[3:10] last segment"
	if content.Text != want {
		t.Fatalf("unexpected transcript text:\ngot:  %q\nwant: %q", content.Text, want)
	}
}

func TestTranscriptExtractorLanguageFallback(t *testing.T) {
	e := newTranscriptExtractor(t, map[string]string{"en": sampleTimedText}, []string{"ja", "en"})

	content, err := e.Extract(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(content.Text, "first segment") {
		t.Fatalf("expected fallback language transcript, got %q", content.Text)
	}
}

func TestTranscriptExtractorUnavailable(t *testing.T) {
	e := newTranscriptExtractor(t, map[string]string{}, []string{"ja", "en"})

	_, err := e.Extract(context.Background(), "abc123")
	if !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("expected ErrNoTranscript, got %v", err)
	}
}
