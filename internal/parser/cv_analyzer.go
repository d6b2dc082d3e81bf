package parser

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"recruit-agent-go/internal/lexicon"
	"recruit-agent-go/internal/logger"
	"recruit-agent-go/internal/types"
)

// CVAnalyzer 简历分析器：从提取文本中抽取技能、工作经历、教育背景
// 与证书。所有抽取遵循同一套三层策略：结构化样式 -> 宽松样式 ->
// 关键词/句子兜底，格式异常的文档降精度而不失败。
type CVAnalyzer struct {
	lex *lexicon.Lexicon
	log zerolog.Logger
}

// NewCVAnalyzer 创建简历分析器，词表由调用方注入以便测试替换
func NewCVAnalyzer(lex *lexicon.Lexicon) *CVAnalyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &CVAnalyzer{
		lex: lex,
		log: logger.Component("cv_analyzer"),
	}
}

// Analyze 分析简历文本并整体覆盖结构化字段。内容为空时各字段置空集合。
func (a *CVAnalyzer) Analyze(resume *types.Resume) {
	if resume.Content == "" {
		a.log.Warn().Str("candidate", resume.CandidateName).Msg("简历内容为空，跳过分析")
		resume.Skills = []string{}
		resume.Experience = []string{}
		resume.Education = []types.Education{}
		resume.Certifications = []string{}
		return
	}

	content := resume.Content
	resume.Skills = a.ExtractSkills(content)
	resume.Experience = a.ExtractExperience(content)
	resume.Education = a.ExtractEducation(content)
	resume.Certifications = a.ExtractCertifications(content)

	a.log.Info().
		Int("skills", len(resume.Skills)).
		Int("experience", len(resume.Experience)).
		Int("education", len(resume.Education)).
		Int("certifications", len(resume.Certifications)).
		Msg("简历分析完成")
}

var (
	skillSectionItemPattern = regexp.MustCompile(`(?:^|\n)(?:-|•|\*|\d+\.|\([a-z\d]\))\s*([\w\s,/+#&]+)`)
	commaSplitPattern       = regexp.MustCompile(`\s*,\s*`)
)

// ExtractSkills 简历技能抽取：全文词表扫描 + 技能章节的列表项/逗号分隔解析，
// 合并后统一清洗去重，保留首次出现顺序。
func (a *CVAnalyzer) ExtractSkills(text string) []string {
	skills := ExtractSkills(text, a.lex)

	if section, ok := LocateSection(text, []string{"skills", "technical skills", "core competencies"}); ok {
		items := skillSectionItemPattern.FindAllStringSubmatch(section, -1)
		for _, m := range items {
			item := strings.TrimSpace(m[1])
			if strings.Contains(item, ",") {
				for _, sub := range commaSplitPattern.Split(item, -1) {
					skills = append(skills, strings.TrimSpace(sub))
				}
			} else {
				skills = append(skills, item)
			}
		}
		// 没有任何列表结构时整段按逗号切
		if len(items) == 0 {
			for _, sub := range commaSplitPattern.Split(section, -1) {
				if s := strings.TrimSpace(sub); s != "" {
					skills = append(skills, s)
				}
			}
		}
	}

	return cleanSkillList(skills)
}

// 职位条目样式：职称 - 公司 (年份或年份区间，可选)
var jobEntryPattern = regexp.MustCompile(
	`(?:^|\n)(?:-|•|\*|\d+\.|\([a-z\d]\))?\s*([A-Z][A-Za-z\s,&\-'.]+?)\s*(?:-|–|\bat\b|@)\s*([A-Z][A-Za-z\s,&\-'.]+?)(?:\s*\((\d{4}(?:\s*-\s*\d{4}|\s*-\s*[Pp]resent)?)\))?(?:\n|$)`)

// ExtractExperience 抽取工作经历。结构化匹配得到 "职称 at 公司 (时段)"
// 条目；零命中时退化为清洗后的章节文本(截前十句)，宁可粗也不空。
func (a *CVAnalyzer) ExtractExperience(text string) []string {
	section, ok := LocateSection(text, []string{"experience", "work experience", "professional experience", "employment"})
	if !ok {
		return []string{}
	}

	entries := firstNonEmpty(section,
		a.structuredJobEntries,
		a.sectionTextFallback,
	)
	if entries == nil {
		return []string{}
	}
	return entries
}

// structuredJobEntries 按职位条目样式逐条匹配
func (a *CVAnalyzer) structuredJobEntries(section string) []string {
	var entries []string
	for _, m := range jobEntryPattern.FindAllStringSubmatch(section, -1) {
		title := strings.TrimSpace(m[1])
		company := strings.TrimSpace(m[2])
		dates := strings.TrimSpace(m[3])
		if title == "" || company == "" {
			continue
		}
		entry := title + " at " + company
		if dates != "" {
			entry += " (" + dates + ")"
		}
		entries = append(entries, entry)
	}
	return entries
}

// sectionTextFallback 返回整段清洗文本，过长时截取前十句
func (a *CVAnalyzer) sectionTextFallback(section string) []string {
	clean := NormalizeText(section)
	if clean == "" {
		return nil
	}
	if len(clean) > 500 {
		clean = TruncateSentences(clean, 10)
	}
	return []string{clean}
}

// 教育条目样式：学位 - 院校 (年份)，分隔符允许 - / from / at
var eduEntryPattern = regexp.MustCompile(
	`(?:^|\n)(?:-|•|\*|\d+\.|\([a-z\d]\))?\s*([A-Z][A-Za-z\s,&\-'.]+?)(?:\s*-\s*|\s+from\s+|\s+at\s+)([A-Z][A-Za-z\s,&\-'.]+?)(?:\s*\((\d{4}(?:\s*-\s*\d{4}|\s*-\s*[Pp]resent)?)\))?(?:\n|$)`)

// 学位关键词兜底样式
var degreeFallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(Bachelor(?:'s)? of [A-Za-z\s]+|B\.[A-Z][.A-Za-z]*)`),
	regexp.MustCompile(`(Master(?:'s)? of [A-Za-z\s]+|M\.[A-Z][.A-Za-z]*)`),
	regexp.MustCompile(`(Doctor of [A-Za-z\s]+|Ph\.D\.)`),
	regexp.MustCompile(`([A-Z][A-Za-z\s,&\-'.]+(?:University|College|Institute|School))`),
}

var yearTokenPattern = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

// ExtractEducation 抽取教育经历，三层退化：
// 结构化条目 -> 学位关键词(就近配年份) -> 无章节时全文资质关键词扫描。
func (a *CVAnalyzer) ExtractEducation(text string) []types.Education {
	section, ok := LocateSection(text, []string{"education", "academic background", "academic qualification"})
	if !ok {
		var entries []types.Education
		for _, qual := range ExtractQualifications(text) {
			entries = append(entries, types.Education{Degree: qual})
		}
		if entries == nil {
			return []types.Education{}
		}
		return entries
	}

	entries := firstNonEmpty(section,
		a.structuredEduEntries,
		a.degreeKeywordEntries,
	)
	if entries == nil {
		return []types.Education{}
	}
	return entries
}

func (a *CVAnalyzer) structuredEduEntries(section string) []types.Education {
	var entries []types.Education
	for _, m := range eduEntryPattern.FindAllStringSubmatch(section, -1) {
		degree := strings.TrimSpace(m[1])
		institution := strings.TrimSpace(m[2])
		year := strings.TrimSpace(m[3])
		if degree == "" || institution == "" {
			continue
		}
		entries = append(entries, types.Education{
			Degree:      degree,
			Institution: institution,
			Year:        year,
		})
	}
	return entries
}

// degreeKeywordEntries 学位关键词命中后在其后200字符内就近找年份
func (a *CVAnalyzer) degreeKeywordEntries(section string) []types.Education {
	var entries []types.Education
	for _, pattern := range degreeFallbackPatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(section, -1) {
			degree := strings.TrimSpace(section[loc[2]:loc[3]])
			if degree == "" {
				continue
			}
			window := section[loc[0]:]
			if len(window) > 200 {
				window = window[:200]
			}
			year := ""
			if ym := yearTokenPattern.FindStringSubmatch(window); ym != nil {
				year = ym[1]
			}
			entries = append(entries, types.Education{Degree: degree, Year: year})
		}
	}
	return entries
}

var certItemPattern = regexp.MustCompile(`(?:^|\n)(?:-|•|\*|\d+\.|\([a-z\d]\))\s*([\w\s,\-.()/+]+)`)

var certKeywords = []string{"certified", "certification", "certificate", "licensed", "license"}

// ExtractCertifications 抽取证书：章节列表项 -> 章节内长度合适的句子 ->
// 全文证书关键词句扫描，句长限制在200字符内避免吞掉整段。
func (a *CVAnalyzer) ExtractCertifications(text string) []string {
	var certs []string

	if section, ok := LocateSection(text, []string{"certifications", "certificates", "professional qualifications"}); ok {
		items := certItemPattern.FindAllStringSubmatch(section, -1)
		for _, m := range items {
			certs = append(certs, strings.TrimSpace(m[1]))
		}
		if len(items) == 0 {
			for _, sentence := range Sentences(section) {
				if len(sentence) > 10 && len(sentence) < 200 {
					certs = append(certs, sentence)
				}
			}
		}
	}

	if len(certs) == 0 {
		for _, sentence := range Sentences(text) {
			lower := strings.ToLower(sentence)
			for _, kw := range certKeywords {
				if strings.Contains(lower, kw) && len(sentence) < 200 {
					certs = append(certs, sentence)
					break
				}
			}
		}
	}

	if certs == nil {
		return []string{}
	}
	return certs
}
