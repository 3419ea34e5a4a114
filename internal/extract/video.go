package extract

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"matomeru/internal/domain"
)

const defaultTimedTextBaseURL = "https://www.youtube.com/api/timedtext"

type timedText struct {
	Segments []timedTextSegment `xml:"text"`
}

type timedTextSegment struct {
	Start float64 `xml:"start,attr"`
	Body  string  `xml:",chardata"`
}

// TranscriptExtractor retrieves a video transcript, trying languages in
// preference order and concatenating segments chronologically.
type TranscriptExtractor struct {
	client  *http.Client
	baseURL string
	langs   []string
	log     *slog.Logger
}

func NewTranscriptExtractor(langs []string, log *slog.Logger) *TranscriptExtractor {
	if len(langs) == 0 {
		langs = []string{"ja", "en"}
	}

	return &TranscriptExtractor{
		client:  &http.Client{Timeout: clientTimeout},
		baseURL: defaultTimedTextBaseURL,
		langs:   langs,
		log:     log,
	}
}

// Extract returns the transcript text for a video identifier. The video
// identifier stands in for the title. Each segment is prefixed with its
// approximate [m:ss] start offset so summaries can reference timestamps.
func (e *TranscriptExtractor) Extract(ctx context.Context, videoID string) (*domain.Content, error) {
	var errs []string

	for _, lang := range e.langs {
		text, err := e.fetchTranscript(ctx, videoID, lang)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", lang, err))
			continue
		}

		if text == "" {
			errs = append(errs, fmt.Sprintf("%s: empty transcript", lang))
			continue
		}

		return &domain.Content{Text: text, Title: videoID}, nil
	}

	return nil, fmt.Errorf("fetch transcript (videoID = %s, tried = [%s]): %w",
		videoID, strings.Join(errs, "; "), ErrNoTranscript)
}

func (e *TranscriptExtractor) fetchTranscript(
	ctx context.Context,
	videoID string,
	lang string,
) (string, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", lang)
	requestURL := e.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			e.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"videoID", videoID,
				"lang", lang,
				"operation", "fetchTranscript")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("do request: unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	var parsed timedText
	if err = xml.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal timed text: %w", err)
	}

	var sb strings.Builder
	for _, seg := range parsed.Segments {
		text := strings.TrimSpace(html.UnescapeString(seg.Body))
		if text == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n")
		}

		start := int(seg.Start)
		sb.WriteString(fmt.Sprintf("[%d:%02d] %s", start/60, start%60, text))
	}

	return sb.String(), nil
}
