package matcher

import (
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
)

// 领域词提取用的精简停用词表
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"i me my we our you your he him his she her it its they them their " +
			"what which who whom this that these those am is are was were be been being " +
			"have has had having do does did doing a an the and but if or because as until " +
			"while of at by for with about against between into through during before after " +
			"above below to from up down in out on off over under again further then once " +
			"here there when where why how all any both each few more most other some such " +
			"no nor not only own same so than too very s t can will just don should now") {
		stopWords[w] = struct{}{}
	}
}

// 技术名样式：首字母大写词串、全大写缩写(可带++)、带点/井号的标识符
var techTermPattern = regexp.MustCompile(
	`\b([A-Z][a-z]+(?:\s[A-Z][a-z]+)*|[A-Z]{2,}(?:\+\+)?|\w+\.\w+|\w+#)\b`)

// 词性标注里认作领域词的Penn Treebank标签：名词、专有名词、形容词
var contentTags = map[string]struct{}{
	"NN": {}, "NNS": {}, "NNP": {}, "NNPS": {},
	"JJ": {}, "JJR": {}, "JJS": {},
}

// ExtractDomainTerms 从短需求短语中提取承载内容的领域词：
// 词性过滤(名词/专有名词/形容词且非停用词)加上大写/技术名样式。
// 词性标注器不可用时只靠样式部分，属于正常的能力退化。
func ExtractDomainTerms(phrase string) []string {
	seen := make(map[string]struct{})
	var terms []string
	add := func(term string) {
		term = strings.TrimSpace(term)
		if len(term) <= 2 {
			return
		}
		if _, dup := seen[term]; dup {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	doc, err := prose.NewDocument(phrase,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err == nil {
		for _, tok := range doc.Tokens() {
			if _, content := contentTags[tok.Tag]; !content {
				continue
			}
			if _, stop := stopWords[strings.ToLower(tok.Text)]; stop {
				continue
			}
			add(tok.Text)
		}
	}

	for _, m := range techTermPattern.FindAllString(phrase, -1) {
		if _, stop := stopWords[strings.ToLower(m)]; stop {
			continue
		}
		add(m)
	}

	return terms
}
