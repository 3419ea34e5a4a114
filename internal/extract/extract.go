// Package extract pulls raw text out of a source URL. One extractor
// exists per content kind: web pages go through HTML region selection,
// videos through transcript retrieval.
package extract

import (
	"errors"
	"time"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

	clientTimeout = 20 * time.Second
)

var (
	// ErrNoTextContent reports a document with no extractable text region.
	ErrNoTextContent = errors.New("no extractable text content")

	// ErrNoTranscript reports a video without a transcript in any of the
	// requested languages.
	ErrNoTranscript = errors.New("no transcript available")
)
