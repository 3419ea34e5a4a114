package domain

// Kind selects the extraction and prompt strategy for a source URL.
type Kind int

const (
	KindWebPage Kind = iota
	KindVideo
)

// Summary is the canonical persisted record for one processed URL.
// At most one live record exists per URL.
type Summary struct {
	ID     string
	URL    string
	Answer string
	Cost   string
}

// Content is the raw text pulled out of a source together with a
// human-readable title. For videos the video identifier stands in
// for a title.
type Content struct {
	Text  string
	Title string
}
