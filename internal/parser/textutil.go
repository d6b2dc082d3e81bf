package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeText 把任意空白符(含换行/制表符)的连续串压缩为单个空格并去除首尾空白。
// 纯函数，空输入返回空串。
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Sentences 把文本切分为句子。优先使用 prose 的分句器，
// 构建失败时退化到标点启发式切分，保证永不返回错误。
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false))
	if err == nil {
		sents := doc.Sentences()
		out := make([]string, 0, len(sents))
		for _, s := range sents {
			if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	return splitSentencesHeuristic(text)
}

// splitSentencesHeuristic 按 . ! ? 后跟空白的位置切句
func splitSentencesHeuristic(text string) []string {
	var out []string
	var sb strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		sb.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '!' || runes[i] == '?' {
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(sb.String()); s != "" {
					out = append(out, s)
				}
				sb.Reset()
			}
		}
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// TruncateSentences 取文本的前 n 句，发生截断时以省略号结尾
func TruncateSentences(text string, n int) string {
	sents := Sentences(text)
	if len(sents) <= n {
		return NormalizeText(text)
	}
	return strings.Join(sents[:n], " ") + "..."
}
