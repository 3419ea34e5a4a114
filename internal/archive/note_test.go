package archive

import (
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("一文目。二文目。三文目。")
	want := "一文目。\n二文目。\n三文目。\n"

	if got != want {
		t.Fatalf("SplitSentences = %q, want %q", got, want)
	}
}

func TestSplitSentencesLeavesOtherTerminatorsAlone(t *testing.T) {
	in := "No Japanese full stop here. Not even one! Really?"

	if got := SplitSentences(in); got != in {
		t.Fatalf("expected text without 。 to stay on a single line, got %q", got)
	}
}

func TestNoteRender(t *testing.T) {
	n := Note{
		Title:     "記事タイトル",
		SourceURL: "https://example.com/article",
		Body:      "要約一文目。要約二文目。",
	}

	rendered := n.Render()

	for _, want := range []string{
		"tags: 💻",
		"#💻",
		"### リンク",
		"[記事タイトル](https://example.com/article)",
		"### 概要",
		"要約一文目。\n要約二文目。",
		"### わかったこと",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered note is missing %q:\n%s", want, rendered)
		}
	}
}

func TestNoteRenderIsIdempotent(t *testing.T) {
	n := Note{
		Title:     "Title",
		SourceURL: "https://example.com",
		Body:      "本文。続き。",
	}

	if n.Render() != n.Render() {
		t.Fatal("expected byte-identical output for repeated rendering")
	}
}

func TestNoteFileName(t *testing.T) {
	n := Note{Title: "記事タイトル"}

	if got := n.FileName(); got != "記事タイトル.md" {
		t.Fatalf("FileName = %q", got)
	}
}
