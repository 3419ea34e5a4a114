// Package pipeline composes classification, extraction, prompting,
// summarization and persistence into the end-to-end flow behind one
// inbound message, and maps every outcome to a user-facing reply.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"matomeru/internal/archive"
	"matomeru/internal/domain"
	"matomeru/internal/link"
	"matomeru/internal/prompt"
	"matomeru/internal/summarizer"

	"github.com/google/uuid"
)

const invalidURLReply = "不正なURLです。"

// Store is the idempotency lookup/insert the pipeline needs. A nil
// summary with a nil error is a miss.
type Store interface {
	LookupSummary(ctx context.Context, url string) (*domain.Summary, error)
	InsertSummaryIfAbsent(ctx context.Context, s domain.Summary) (bool, error)
}

// Extractor produces raw content for one target: a page URL for web
// pages, a video identifier for videos.
type Extractor interface {
	Extract(ctx context.Context, target string) (*domain.Content, error)
}

type Pipeline struct {
	store      Store
	pages      Extractor
	videos     Extractor
	summarizer summarizer.Summarizer
	archive    archive.Writer
	log        *slog.Logger
}

func New(
	store Store,
	pages Extractor,
	videos Extractor,
	s summarizer.Summarizer,
	w archive.Writer,
	log *slog.Logger,
) *Pipeline {
	return &Pipeline{
		store:      store,
		pages:      pages,
		videos:     videos,
		summarizer: s,
		archive:    w,
		log:        log,
	}
}

// Process runs one message through the pipeline and returns the reply
// text. It never fails: every fault is converted into a reply string
// here, so the caller always sends exactly one reply.
func (p *Pipeline) Process(ctx context.Context, messageText string) string {
	sourceURL := link.FindURL(messageText)

	if !link.IsValidURL(sourceURL) {
		return invalidURLReply
	}

	stored, err := p.store.LookupSummary(ctx, sourceURL)
	if err != nil {
		return p.failureReply(ctx, sourceURL, fmt.Errorf("lookup summary: %w", err))
	}
	if stored != nil {
		p.log.InfoContext(ctx, "Summary already exists",
			"sourceURL", sourceURL,
			"id", stored.ID)

		return stored.Answer
	}

	kind := link.Classify(sourceURL)

	content, err := p.extract(ctx, sourceURL, kind)
	if err != nil {
		return p.failureReply(ctx, sourceURL, fmt.Errorf("extract content: %w", err))
	}

	instruction := prompt.ForKind(kind).Build(content.Text)

	result, err := p.summarizer.Summarize(ctx, instruction)
	if err != nil {
		return p.failureReply(ctx, sourceURL, fmt.Errorf("summarize: %w", err))
	}

	note := archive.Note{
		Title:     content.Title,
		SourceURL: sourceURL,
		Body:      result.Answer,
	}
	if err = p.archive.Write(ctx, note); err != nil {
		return p.failureReply(ctx, sourceURL, fmt.Errorf("write archive note: %w", err))
	}

	s := domain.Summary{
		ID:     uuid.NewString(),
		URL:    sourceURL,
		Answer: result.Answer,
		Cost:   strconv.FormatFloat(result.Cost, 'f', -1, 64),
	}

	inserted, err := p.store.InsertSummaryIfAbsent(ctx, s)
	if err != nil {
		return p.failureReply(ctx, sourceURL, fmt.Errorf("insert summary: %w", err))
	}

	if !inserted {
		// A concurrent request for the same URL won the race; its
		// record is the canonical one.
		winner, lookupErr := p.store.LookupSummary(ctx, sourceURL)
		if lookupErr == nil && winner != nil {
			p.log.InfoContext(ctx, "Lost insert race, replying with stored summary",
				"sourceURL", sourceURL,
				"id", winner.ID)

			return winner.Answer
		}
	}

	p.log.InfoContext(ctx, "Summary is generated",
		"sourceURL", sourceURL,
		"id", s.ID,
		"cost", s.Cost)

	return result.Answer
}

func (p *Pipeline) extract(
	ctx context.Context,
	sourceURL string,
	kind domain.Kind,
) (*domain.Content, error) {
	if kind == domain.KindVideo {
		videoID, err := link.VideoID(sourceURL)
		if err != nil {
			return nil, fmt.Errorf("extract video ID: %w", err)
		}

		return p.videos.Extract(ctx, videoID)
	}

	return p.pages.Extract(ctx, sourceURL)
}

func (p *Pipeline) failureReply(ctx context.Context, sourceURL string, err error) string {
	p.log.ErrorContext(ctx, "Failed to process message",
		"error", err,
		"sourceURL", sourceURL)

	return fmt.Sprintf("要約に失敗しました。(%v)", err)
}
