package matcher

import (
	"regexp"
	"strings"
)

// 学历五级阶梯，数值越大学历越高。
const (
	DegreeNone       = 0
	DegreeHighSchool = 1
	DegreeAssociate  = 2
	DegreeBachelor   = 3
	DegreeMaster     = 4
	DegreeDoctorate  = 5
)

type degreeLevel struct {
	rank    int
	pattern *regexp.Regexp
}

// 从高到低排列，命中最高一级即返回。
var degreeLevels = []degreeLevel{
	{DegreeDoctorate, regexp.MustCompile(`(?i)\b(?:ph\.?\s?d\.?|doctorate|doctoral|doctor\s+of)\b`)},
	{DegreeMaster, regexp.MustCompile(`(?i)\b(?:master(?:'s)?|m\.?s\.?c?|m\.?a\.?|m\.?b\.?a\.?|m\.?eng\.?)\b`)},
	{DegreeBachelor, regexp.MustCompile(`(?i)\b(?:bachelor(?:'s)?|b\.?s\.?c?|b\.?a\.?|b\.?eng\.?|b\.?tech\.?)\b`)},
	{DegreeAssociate, regexp.MustCompile(`(?i)\b(?:associate(?:'s)?|a\.?a\.?|a\.?s\.?)\s*(?:degree)?\b`)},
	{DegreeHighSchool, regexp.MustCompile(`(?i)\b(?:high\s+school|secondary\s+school|diploma|ged)\b`)},
}

// DegreeRank 返回单个短语中识别出的最高学历等级。
func DegreeRank(phrase string) int {
	for _, level := range degreeLevels {
		if level.pattern.MatchString(phrase) {
			return level.rank
		}
	}
	return DegreeNone
}

// HighestDegree 返回一组短语中的最高学历等级。
func HighestDegree(phrases []string) int {
	highest := DegreeNone
	for _, phrase := range phrases {
		if rank := DegreeRank(phrase); rank > highest {
			highest = rank
		}
	}
	return highest
}

var fieldOfStudyPattern = regexp.MustCompile(`(?i)(?:degree|bachelor(?:'s)?|master(?:'s)?|ph\.?d\.?|doctorate)\s+(?:of|in)\s+([a-z][a-z\s]{2,40})`)

// 常见专业列表，短语中直接出现也算命中。
var commonFields = []string{
	"computer science",
	"software engineering",
	"information technology",
	"information systems",
	"computer engineering",
	"electrical engineering",
	"mechanical engineering",
	"civil engineering",
	"data science",
	"mathematics",
	"statistics",
	"physics",
	"chemistry",
	"biology",
	"business administration",
	"business",
	"finance",
	"accounting",
	"economics",
	"marketing",
	"management",
	"psychology",
	"communications",
	"design",
}

// ExtractFieldsOfStudy 从学历短语中提取专业方向，保序去重。
func ExtractFieldsOfStudy(phrases []string) []string {
	var fields []string
	seen := make(map[string]struct{})

	add := func(field string) {
		field = strings.TrimSpace(strings.ToLower(field))
		if field == "" {
			return
		}
		if _, ok := seen[field]; ok {
			return
		}
		seen[field] = struct{}{}
		fields = append(fields, field)
	}

	for _, phrase := range phrases {
		for _, m := range fieldOfStudyPattern.FindAllStringSubmatch(phrase, -1) {
			add(m[1])
		}
		lower := strings.ToLower(phrase)
		for _, field := range commonFields {
			if strings.Contains(lower, field) {
				add(field)
			}
		}
	}

	return fields
}
