package parser

import (
	"regexp"
	"strings"
)

// sectionTerminators 认作章节终点的固定标题集合。定位出的章节
// 在这些标题中任意一个下次出现处结束。
var sectionTerminators = regexp.MustCompile(
	`(?i)(?:^|\n)[\s*\-]*(?:education|experience|skills|certifications|projects|languages|interests|publications|references|summary|objective)[\s*\-]*(?::|\.|\n)`)

// LocateSection 按调用方给定的优先顺序查找章节标题，返回标题之后、
// 下一个已知标题之前的正文。这是贪心的单遍启发式：不处理嵌套或
// 乱序章节，尽力而为而非保证正确。
func LocateSection(text string, headerNames []string) (string, bool) {
	for _, name := range headerNames {
		pattern, err := regexp.Compile(
			`(?i)(?:^|\n)[\s*\-]*` + regexp.QuoteMeta(name) + `[\s*\-]*(?::|\.|\n)`)
		if err != nil {
			continue
		}

		loc := pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}

		body := text[loc[1]:]
		if next := sectionTerminators.FindStringIndex(body); next != nil {
			body = body[:next[0]]
		}
		return strings.TrimSpace(body), true
	}
	return "", false
}
