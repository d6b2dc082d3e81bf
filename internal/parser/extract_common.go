package parser

import (
	"regexp"
	"strings"

	"recruit-agent-go/internal/lexicon"
)

// strategy 统一的抽取策略签名：输入文本，产出结构化条目，
// 空结果表示本策略未命中。
type strategy[T any] func(text string) []T

// firstNonEmpty 按序尝试各策略，取第一个非空结果。
// 全部落空时返回nil，调用方据此决定兜底行为。
func firstNonEmpty[T any](text string, strategies ...strategy[T]) []T {
	for _, s := range strategies {
		if out := s(text); len(out) > 0 {
			return out
		}
	}
	return nil
}

// 通用技能样式：列表项、熟练度标注、大写多词短语、技术缩写
var (
	bulletSkillPattern       = regexp.MustCompile(`(?:^|\n)(?:-|•|\*|\d+\.|\([a-z\d]\))\s*([\w\s+#&]+)(?:$|\n)`)
	proficiencySkillPattern  = regexp.MustCompile(`([\w\s+#]+)\s*(?:-|:)\s*(?:proficient|expert|advanced|intermediate|beginner)`)
	capitalizedPhrasePattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\b`)
	techAbbrevPattern        = regexp.MustCompile(`\b([A-Z]{2,}(?:\+\+)?)\b`)

	skillTrimPattern = regexp.MustCompile(`^[\s,.\-:]+|[\s,.\-:]+$`)
)

// ExtractSkills 在全文上做技能抽取：词表整词扫描 + 样式匹配，
// 结果去重但不清洗(由调用方统一清洗)。
func ExtractSkills(text string, lex *lexicon.Lexicon) []string {
	if text == "" {
		return nil
	}

	skills := lex.ScanText(text)

	for _, pattern := range []*regexp.Regexp{
		bulletSkillPattern,
		proficiencySkillPattern,
		capitalizedPhrasePattern,
		techAbbrevPattern,
	} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if candidate := strings.TrimSpace(m[1]); candidate != "" && len(candidate) > 1 {
				skills = append(skills, candidate)
			}
		}
	}

	return dedupeStrings(skills)
}

// 学历与证书样式(全文扫描用)
var (
	qualificationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Bachelor|Master|PhD|Graduate|Undergraduate|Associate)(?:'s)?\s+(?:degree|diploma)?\s*(?:of|in)\s+([\w\s]+)`),
		regexp.MustCompile(`(?i)(?:B\.S\.|M\.S\.|Ph\.D\.|B\.A\.|M\.A\.|M\.B\.A\.)\s+(?:in|of)?\s*([\w\s]+)?`),
		regexp.MustCompile(`(?i)(?:Bachelor|Master|Doctorate|PhD|Associate)\s+(?:of|in)\s+([\w\s]+)`),
	}
	certificationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Certified|Licensed|Registered)\s+([\w\s]+)`),
		regexp.MustCompile(`(?i)([\w\s]+)\s+certification`),
		regexp.MustCompile(`(?i)([\w\s]+)\s+certificate`),
	}
)

// ExtractQualifications 全文扫描学位与证书表述，保留整段命中文本
func ExtractQualifications(text string) []string {
	var quals []string
	for _, pattern := range append(qualificationPatterns, certificationPatterns...) {
		for _, m := range pattern.FindAllString(text, -1) {
			if q := strings.TrimSpace(m); q != "" {
				quals = append(quals, q)
			}
		}
	}
	return dedupeStrings(quals)
}

// cleanSkillList 去掉首尾标点空白、丢弃长度<=1的残片、保序去重
func cleanSkillList(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, skill := range raw {
		skill = skillTrimPattern.ReplaceAllString(skill, "")
		if len(skill) <= 1 {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// dedupeStrings 保序去重
func dedupeStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
