package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractYearsRequirement 验证从要求短语中取最大年限
func TestExtractYearsRequirement(t *testing.T) {
	assert.Equal(t, 5, ExtractYearsRequirement([]string{"5+ years of experience"}))
	assert.Equal(t, 5, ExtractYearsRequirement([]string{"3-5 years experience"}),
		"区间要求取上界")
	assert.Equal(t, 7, ExtractYearsRequirement([]string{
		"Minimum 3 years experience",
		"7 years of backend development",
	}), "多条要求取最大值")
	assert.Equal(t, 0, ExtractYearsRequirement([]string{"Experience with Python"}),
		"没有年限表述时返回 0")
	assert.Equal(t, 0, ExtractYearsRequirement(nil))
}

// TestExtractYearsCandidate 验证候选人年限累加：合法区间求和后与明说年限取较大
func TestExtractYearsCandidate(t *testing.T) {
	// 2018-2022 计 4 年，2022-present 以 2024 为当前年计 2 年，合计 6 年
	text := "Software Engineer at Acme (2018-2022)\nSenior Engineer at Beta (2022-present)"
	assert.Equal(t, 6, ExtractYearsCandidate(text, 2024))
}

// TestExtractYearsCandidateInvalidRanges 验证不合法区间被丢弃
func TestExtractYearsCandidateInvalidRanges(t *testing.T) {
	// 起点早于 1950
	assert.Equal(t, 0, ExtractYearsCandidate("1940-2000", 2024))
	// 起点不早于终点
	assert.Equal(t, 0, ExtractYearsCandidate("2022-2018", 2024))
	assert.Equal(t, 0, ExtractYearsCandidate("2020-2020", 2024))
	// 终点晚于当前年
	assert.Equal(t, 0, ExtractYearsCandidate("2020-2030", 2024))
	// 丢弃不合法区间不影响其余区间的累加
	assert.Equal(t, 3, ExtractYearsCandidate("2022-2018 and 2019-2022", 2024))
}

// TestExtractYearsCandidateExplicitMention 验证"N years experience"明说年限
func TestExtractYearsCandidateExplicitMention(t *testing.T) {
	assert.Equal(t, 8, ExtractYearsCandidate("8 years of experience in backend systems", 2024))

	// 明说年限大于区间累加时以明说为准
	text := "10+ years experience\nEngineer (2020-2023)"
	assert.Equal(t, 10, ExtractYearsCandidate(text, 2024))

	// 区间累加大于明说年限时保留累加值
	text = "3 years experience at current role\nDeveloper (2012-2020) Engineer (2020-2024)"
	assert.Equal(t, 12, ExtractYearsCandidate(text, 2024))
}

// TestExtractYearsCandidatePresentVariants 验证 present/current/now 均映射到当前年
func TestExtractYearsCandidatePresentVariants(t *testing.T) {
	assert.Equal(t, 4, ExtractYearsCandidate("2020-present", 2024))
	assert.Equal(t, 4, ExtractYearsCandidate("2020 - Current", 2024))
	assert.Equal(t, 4, ExtractYearsCandidate("2020 to now", 2024))
}
