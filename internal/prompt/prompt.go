// Package prompt builds the summarization instruction for a piece of
// extracted content. Templates are fixed per content kind; embedded
// content is truncated to a fixed rune budget so identical input always
// produces an identical prompt. Content beyond the budget is silently
// dropped.
package prompt

import (
	"fmt"

	"matomeru/internal/domain"
)

const (
	// maxContentRunes bounds how much extracted content is embedded in
	// the prompt.
	maxContentRunes = 4000

	// targetSummaryChars is the length the model is asked to aim for,
	// not a hard limit.
	targetSummaryChars = 1000
)

const pageTemplate = `あなたはプロのエンジニアである。
また、以下はとあるWebページのコンテンツである。内容を%d字程度でわかりやすく要約してください。

========

%s

========

また要約を作成する際は、以下の制約条件を守ってください。

# 制約条件：
・重要なキーワードを取り残さないこと
・要約の冒頭で、当該のページで触れられている技術やサービスの名前を箇条書きで記載すること
・日本語で書くこと
・必要に応じて図表を補足として使ってよいこと
`

const videoTemplate = `あなたはプロのコンテンツキュレーターである。
また、以下はとある動画の文字起こしである。各行の冒頭にはおおよそのタイムスタンプが付いている。内容を%d字程度でわかりやすく要約してください。

========

%s

========

また要約を作成する際は、以下の制約条件を守ってください。

# 制約条件：
・重要なキーワードを取り残さないこと
・要約の冒頭で、当該の動画で扱われているトピックを箇条書きで記載すること
・可能であれば要約の各ポイントにおおよそのタイムスタンプを対応付けること
・日本語で書くこと
`

// Builder produces the instruction text for one content kind.
type Builder interface {
	Build(content string) string
}

type PageBuilder struct{}

func (PageBuilder) Build(content string) string {
	return fmt.Sprintf(pageTemplate, targetSummaryChars, truncate(content))
}

type VideoBuilder struct{}

func (VideoBuilder) Build(content string) string {
	return fmt.Sprintf(videoTemplate, targetSummaryChars, truncate(content))
}

// ForKind returns the builder matching a content kind.
func ForKind(kind domain.Kind) Builder {
	if kind == domain.KindVideo {
		return VideoBuilder{}
	}

	return PageBuilder{}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxContentRunes {
		return s
	}

	return string(runes[:maxContentRunes])
}
