package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeText 验证连续空白压缩与首尾修剪
func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"hello world", "hello world"},
		{"  hello \t\n world  ", "hello world"},
		{"a\n\n\nb\tc", "a b c"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeText(c.in))
	}
}

// TestSentences 验证分句：简单标点文本切为独立句子
func TestSentences(t *testing.T) {
	sents := Sentences("First sentence here. Second one follows! Is this the third?")
	assert.Len(t, sents, 3)
	assert.Equal(t, "First sentence here.", sents[0])
	assert.Equal(t, "Second one follows!", sents[1])
	assert.Equal(t, "Is this the third?", sents[2])

	assert.Nil(t, Sentences(""))
	assert.Nil(t, Sentences("   \n  "))
}

// TestSplitSentencesHeuristic 验证标点兜底切分器本身
func TestSplitSentencesHeuristic(t *testing.T) {
	sents := splitSentencesHeuristic("One. Two! Three? Tail without punctuation")
	assert.Equal(t, []string{"One.", "Two!", "Three?", "Tail without punctuation"}, sents)

	// 小数点后无空白不切句
	sents = splitSentencesHeuristic("Version 2.5 shipped. Done.")
	assert.Equal(t, []string{"Version 2.5 shipped.", "Done."}, sents)
}

// TestTruncateSentences 验证截断语义与省略号
func TestTruncateSentences(t *testing.T) {
	text := "Alpha is first. Beta comes second. Gamma ends it."

	assert.Equal(t, "Alpha is first. Beta comes second...", TruncateSentences(text, 2))
	// 句数不超过上限时返回整段规整文本
	assert.Equal(t, text, TruncateSentences(text, 3))
	assert.Equal(t, text, TruncateSentences(text, 10))
}
