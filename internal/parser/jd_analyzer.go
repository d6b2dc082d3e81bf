package parser

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"recruit-agent-go/internal/lexicon"
	"recruit-agent-go/internal/logger"
	"recruit-agent-go/internal/types"
)

// JDAnalyzer 岗位描述分析器：抽取技能要求、经验要求短语、
// 学历/资质要求与岗位职责。
type JDAnalyzer struct {
	lex *lexicon.Lexicon
	log zerolog.Logger
}

// NewJDAnalyzer 创建岗位描述分析器
func NewJDAnalyzer(lex *lexicon.Lexicon) *JDAnalyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &JDAnalyzer{
		lex: lex,
		log: logger.Component("jd_analyzer"),
	}
}

// Analyze 分析岗位描述文本并整体覆盖结构化字段
func (a *JDAnalyzer) Analyze(jd *types.JobDescription) {
	if jd.Content == "" {
		a.log.Warn().Str("title", jd.Title).Msg("岗位描述内容为空，跳过分析")
		jd.Skills = []string{}
		jd.Experience = []string{}
		jd.Qualifications = []string{}
		jd.Responsibilities = []string{}
		return
	}

	content := jd.Content
	jd.Skills = a.ExtractSkills(content)
	jd.Experience = a.ExtractExperienceRequirements(content)
	jd.Qualifications = a.ExtractQualificationRequirements(content)
	jd.Responsibilities = a.ExtractResponsibilities(content)

	a.log.Info().
		Int("skills", len(jd.Skills)).
		Int("experience", len(jd.Experience)).
		Int("qualifications", len(jd.Qualifications)).
		Int("responsibilities", len(jd.Responsibilities)).
		Msg("岗位描述分析完成")
}

// 技能引导语样式："proficiency in: X, Y and Z" 一类
var techSkillLeadPattern = regexp.MustCompile(
	`(?i)(?:technical skills|technologies required|requirements include|proficiency in|experience with|knowledge of)\s*(?::|-|–)?\s*([\w\s,./+()&;\-]+)`)

var skillDelimiterPattern = regexp.MustCompile(`[,;]|\s+and\s+`)

// ExtractSkills 岗位技能抽取：通用技能抽取 + 技能引导语后的清单解析
func (a *JDAnalyzer) ExtractSkills(text string) []string {
	skills := ExtractSkills(text, a.lex)

	for _, m := range techSkillLeadPattern.FindAllStringSubmatch(text, -1) {
		for _, item := range skillDelimiterPattern.Split(strings.TrimSpace(m[1]), -1) {
			item = strings.TrimSpace(item)
			if len(item) > 1 {
				skills = append(skills, item)
			}
		}
	}

	return cleanSkillList(skills)
}

// 经验要求样式族，按优先级排列；每个样式的每次命中保留整段短语
var experienceReqPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[\d\-+]+\s+years\s+(?:of\s+)?experience\s+(?:in|with)?\s*[\w\s,/+&]+`),
	regexp.MustCompile(`(?i)Experience\s*(?::|-|–)\s*[\w\s,./+()&;\-]+`),
	regexp.MustCompile(`(?i)(?:minimum|at least)\s+(?:of\s+)?\d+\s*\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)[\d\-+]+\s+to\s+[\d\-+]+\s+years\s+(?:of\s+)?experience`),
}

var experienceWordPattern = regexp.MustCompile(`(?i)\bexperience\b`)

// ExtractExperienceRequirements 抽取经验要求短语。样式族零命中时
// 退化为包含 experience 一词且长度可控的整句。
func (a *JDAnalyzer) ExtractExperienceRequirements(text string) []string {
	var phrases []string
	seen := make(map[string]struct{})

	for _, pattern := range experienceReqPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			phrase := strings.TrimSpace(m)
			if phrase == "" {
				continue
			}
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			phrases = append(phrases, phrase)
		}
	}

	if len(phrases) == 0 {
		for _, sentence := range Sentences(text) {
			if experienceWordPattern.MatchString(sentence) && len(sentence) < 200 {
				phrases = append(phrases, sentence)
			}
		}
	}

	if phrases == nil {
		return []string{}
	}
	return phrases
}

// 学历要求引导样式
var qualificationLeadPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Education|Qualifications|Requirements)(?:\s+Required)?\s*(?::|-|–)\s*[\w\s,./+()&;\-]+`),
	regexp.MustCompile(`(?i)(?:Bachelor|Master|PhD|Graduate|Undergraduate|Degree)\s+(?:in|of)\s+[\w\s,/+&]+`),
	regexp.MustCompile(`(?i)(?:Bachelor|Master|PhD)'?s?(?:\s+degree)?(?:\s+in|\s+of)?\s+[\w\s,/+&]+`),
}

var eduKeywords = []string{"degree", "education", "university", "college", "diploma", "certification"}

// ExtractQualificationRequirements 抽取学历/资质要求：通用学位证书扫描
// + 引导语样式 + 教育关键词整句补充
func (a *JDAnalyzer) ExtractQualificationRequirements(text string) []string {
	quals := ExtractQualifications(text)
	seen := make(map[string]struct{}, len(quals))
	for _, q := range quals {
		seen[q] = struct{}{}
	}

	for _, pattern := range qualificationLeadPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			q := strings.TrimSpace(m)
			if q == "" {
				continue
			}
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			quals = append(quals, q)
		}
	}

	for _, sentence := range Sentences(text) {
		lower := strings.ToLower(sentence)
		for _, kw := range eduKeywords {
			if strings.Contains(lower, kw) && len(sentence) < 200 {
				if _, dup := seen[sentence]; !dup {
					seen[sentence] = struct{}{}
					quals = append(quals, sentence)
				}
				break
			}
		}
	}

	if quals == nil {
		return []string{}
	}
	return quals
}

var respBulletPattern = regexp.MustCompile(`^(?:-|•|\*|\d+\.|\([a-z\d]\))\s+`)

// 职责兜底动作动词表
var actionVerbs = []string{
	"develop", "manage", "create", "design", "implement", "coordinate",
	"lead", "analyze", "build", "maintain", "support", "drive", "execute",
}

// respSectionHeaders 职责章节的常见标题写法
var respSectionHeaders = []string{
	"responsibilities", "key responsibilities", "duties",
	"job description", "role", "the role", "what you'll do",
}

// ExtractResponsibilities 抽取岗位职责：职责章节的列表行，
// 零命中时扫描含动作动词的整句。
func (a *JDAnalyzer) ExtractResponsibilities(text string) []string {
	var resp []string

	if section, ok := LocateSection(text, respSectionHeaders); ok {
		seen := make(map[string]struct{})
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if !respBulletPattern.MatchString(line) {
				continue
			}
			clean := respBulletPattern.ReplaceAllString(line, "")
			if clean == "" {
				continue
			}
			if _, dup := seen[clean]; dup {
				continue
			}
			seen[clean] = struct{}{}
			resp = append(resp, clean)
		}
	}

	if len(resp) == 0 {
		for _, sentence := range Sentences(text) {
			words := strings.Fields(strings.ToLower(sentence))
			if containsAnyWord(words, actionVerbs) && len(sentence) < 200 {
				resp = append(resp, sentence)
			}
		}
	}

	if resp == nil {
		return []string{}
	}
	return resp
}

// containsAnyWord 判断分词结果中是否出现任一目标词(做简单去标点)
func containsAnyWord(words []string, targets []string) bool {
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?()")
		for _, t := range targets {
			if w == t {
				return true
			}
		}
	}
	return false
}
