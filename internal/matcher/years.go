package matcher

import (
	"regexp"
	"strconv"
	"strings"

	"recruit-agent-go/internal/constants"
)

var (
	yearsMentionPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)
	yearsRangePattern   = regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*years?`)

	// 形如 2018-2022 / 2019-present 的年份区间
	yearSpanPattern = regexp.MustCompile(`(?i)((?:19|20)\d{2})\s*(?:-|–|to)\s*((?:19|20)\d{2}|present|current|now)`)

	yearsExperiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?(?:\s+of)?\s+experience`)
)

// ExtractYearsRequirement 从经验要求短语中取最大要求年限。
// "N-M years" 的区间取上界。
func ExtractYearsRequirement(phrases []string) int {
	years := 0
	for _, phrase := range phrases {
		if m := yearsMentionPattern.FindStringSubmatch(phrase); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > years {
				years = n
			}
		}
		if m := yearsRangePattern.FindStringSubmatch(phrase); m != nil {
			if upper, err := strconv.Atoi(m[2]); err == nil && upper > years {
				years = upper
			}
		}
	}
	return years
}

// ExtractYearsCandidate 从候选人经历文本估算总年限：逐段累加合法的
// 年份区间(起点<终点、起点不早于1950、终点不晚于今年)，再与明说的
// "N years experience" 取较大值。不合法的区间直接丢弃，不污染累计值。
func ExtractYearsCandidate(text string, currentYear int) int {
	total := 0

	for _, m := range yearSpanPattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		switch strings.ToLower(m[2]) {
		case "present", "current", "now":
		default:
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}

		if start < end && start >= constants.MinValidYear && end <= currentYear {
			total += end - start
		}
	}

	for _, m := range yearsExperiencePattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > total {
			total = n
		}
	}

	return total
}
