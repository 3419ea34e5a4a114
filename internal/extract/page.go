package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"matomeru/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// PageExtractor fetches a web page and selects its main text region.
type PageExtractor struct {
	client *http.Client
	log    *slog.Logger
}

func NewPageExtractor(log *slog.Logger) *PageExtractor {
	return &PageExtractor{
		client: &http.Client{Timeout: clientTimeout},
		log:    log,
	}
}

// Extract returns the page's text and declared title. Region priority
// is main, then article, then the whole body.
func (e *PageExtractor) Extract(ctx context.Context, pageURL string) (*domain.Content, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			e.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"pageURL", pageURL,
				"operation", "Extract")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("do request: unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("create document from reader: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = pageURL
	}

	for _, selector := range []string{"main", "article", "body"} {
		region := doc.Find(selector).First()
		if region.Length() == 0 {
			continue
		}

		text := strings.TrimSpace(region.Text())
		if text == "" {
			continue
		}

		return &domain.Content{Text: text, Title: title}, nil
	}

	return nil, fmt.Errorf("select text region (URL = %s): %w", pageURL, ErrNoTextContent)
}
