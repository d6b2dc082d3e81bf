package lexicon

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon 技能词表：类别名到小写技能词条的映射。
// 构造完成后只读，可被任意多个分析器并发共享。
type Lexicon struct {
	categories map[string][]string
	order      []string // 类别的稳定遍历顺序
	flat       []string // 全部词条，按类别顺序去重展开
	members    map[string]struct{}
	patterns   map[string]*regexp.Regexp // 词条 -> 整词匹配正则，构造时预编译
}

// New 从类别映射构造词表，词条统一转小写并去重
func New(categories map[string][]string) *Lexicon {
	lex := &Lexicon{
		categories: make(map[string][]string, len(categories)),
		members:    make(map[string]struct{}),
		patterns:   make(map[string]*regexp.Regexp),
	}

	for name := range categories {
		lex.order = append(lex.order, name)
	}
	sort.Strings(lex.order)

	for _, name := range lex.order {
		var terms []string
		for _, term := range categories[name] {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			terms = append(terms, term)
			if _, seen := lex.members[term]; !seen {
				lex.members[term] = struct{}{}
				lex.flat = append(lex.flat, term)
				lex.patterns[term] = compileWordPattern(term)
			}
		}
		lex.categories[name] = terms
	}

	return lex
}

// LoadFile 从YAML文件加载词表，文件格式为 类别名: [词条...]
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取词表文件失败: %w", err)
	}

	var categories map[string][]string
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("解析词表文件失败: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("词表文件 %s 不包含任何类别", path)
	}

	return New(categories), nil
}

// compileWordPattern 为词条构造整词边界匹配。词条含 + # . 等符号时
// \b 边界会失效，改用前后非字母数字断言。
func compileWordPattern(term string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(term)
	return regexp.MustCompile(`(?i)(^|[^a-z0-9])` + escaped + `($|[^a-z0-9+#])`)
}

// Contains 判断词条是否在词表中(大小写不敏感)
func (l *Lexicon) Contains(term string) bool {
	_, ok := l.members[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Terms 返回全部词条的副本，按类别名字典序展开
func (l *Lexicon) Terms() []string {
	out := make([]string, len(l.flat))
	copy(out, l.flat)
	return out
}

// Categories 返回类别名列表
func (l *Lexicon) Categories() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// CategoryTerms 返回某类别下词条的副本
func (l *Lexicon) CategoryTerms(name string) []string {
	terms := l.categories[name]
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

// Len 词表中去重后的词条总数
func (l *Lexicon) Len() int {
	return len(l.flat)
}

// ScanText 对文本做整词扫描，按词表顺序返回命中的词条
func (l *Lexicon) ScanText(text string) []string {
	if text == "" {
		return nil
	}
	var hits []string
	for _, term := range l.flat {
		if l.patterns[term].MatchString(text) {
			hits = append(hits, term)
		}
	}
	return hits
}
