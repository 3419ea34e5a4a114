package link

import (
	"errors"
	"net/url"
	"strings"

	"matomeru/internal/domain"

	"mvdan.cc/xurls/v2"
)

// ErrNoVideoID reports a video-platform URL whose shape carries no
// extractable video identifier.
var ErrNoVideoID = errors.New("no video ID in URL")

var videoHosts = map[string]struct{}{
	"youtube.com":   {},
	"youtu.be":      {},
	"m.youtube.com": {},
}

// IsValidURL reports whether s parses into a URL with both a scheme
// and a host. Malformed input yields false, never an error.
func IsValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// IsVideoURL reports whether the URL's host belongs to a known
// video platform.
func IsVideoURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	_, ok := videoHosts[host]

	return ok
}

// Classify resolves the content kind for a URL once, so downstream
// components can branch on a tag instead of re-parsing the URL.
func Classify(s string) domain.Kind {
	if IsVideoURL(s) {
		return domain.KindVideo
	}

	return domain.KindWebPage
}

// VideoID extracts the canonical video identifier: the first path
// segment for short links, the "v" query parameter otherwise.
func VideoID(s string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", ErrNoVideoID
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	var id string
	if host == "youtu.be" {
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) > 0 {
			id = parts[0]
		}
	} else {
		id = u.Query().Get("v")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrNoVideoID
	}

	return id, nil
}

// FindURL returns the first strict URL found in free text, falling
// back to the trimmed text itself when nothing matches.
func FindURL(text string) string {
	text = strings.TrimSpace(text)

	if m := xurls.Strict().FindString(text); m != "" {
		return m
	}

	return text
}
