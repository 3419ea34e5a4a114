// Package archive renders a processed summary into an Obsidian-style
// note and writes it to durable blob storage.
package archive

import (
	"fmt"
	"strings"
)

// noteTemplate matches the fixed note layout: a tag header, a link
// section, the summary body, and an empty trailing section reserved
// for manual notes.
const noteTemplate = `
---
tags: 💻
---
#💻

### リンク
[%s](%s)

### 概要
%s

### わかったこと


`

// Note is the write-once document derived from one summary.
type Note struct {
	Title     string
	SourceURL string
	Body      string
}

// Render produces the note text. Rendering is deterministic: the same
// note always renders to byte-identical output.
func (n Note) Render() string {
	return fmt.Sprintf(noteTemplate, n.Title, n.SourceURL, SplitSentences(n.Body))
}

// FileName derives the blob name for the note.
func (n Note) FileName() string {
	return n.Title + ".md"
}

// SplitSentences places each 。-terminated clause on its own line.
// The split is fixed to the Japanese full stop; no other sentence
// boundary is considered.
func SplitSentences(text string) string {
	return strings.ReplaceAll(text, "。", "。\n")
}
