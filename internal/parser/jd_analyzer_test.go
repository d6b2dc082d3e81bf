package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit-agent-go/internal/types"
)

const analyzerJD = `Senior Backend Engineer

Requirements:
5+ years of experience in backend development
Proficiency in: Python, Django and PostgreSQL
Bachelor's degree in Computer Science

Responsibilities:
- Design and build scalable services
- Lead code reviews and mentor junior engineers`

// TestJDAnalyzerAnalyze 验证完整分析流程填充全部结构化字段
func TestJDAnalyzerAnalyze(t *testing.T) {
	a := NewJDAnalyzer(nil)
	jd := types.NewJobDescription("Senior Backend Engineer", "Platform", analyzerJD)

	a.Analyze(jd)

	assert.Contains(t, jd.Skills, "python")
	assert.Contains(t, jd.Skills, "django")
	assert.Contains(t, jd.Skills, "postgresql")
	assert.NotEmpty(t, jd.Experience)
	assert.NotEmpty(t, jd.Qualifications)
	assert.NotEmpty(t, jd.Responsibilities)
}

// TestJDAnalyzerAnalyzeEmptyContent 空内容时字段置空集合而非nil
func TestJDAnalyzerAnalyzeEmptyContent(t *testing.T) {
	a := NewJDAnalyzer(nil)
	jd := types.NewJobDescription("Engineer", "", "")
	jd.Skills = []string{"stale"}

	a.Analyze(jd)

	assert.Empty(t, jd.Skills)
	assert.NotNil(t, jd.Skills)
	assert.Empty(t, jd.Experience)
	assert.Empty(t, jd.Qualifications)
	assert.Empty(t, jd.Responsibilities)
}

// TestExtractExperienceRequirements 验证年限短语抽取保留完整表述
func TestExtractExperienceRequirements(t *testing.T) {
	a := NewJDAnalyzer(nil)

	phrases := a.ExtractExperienceRequirements(analyzerJD)
	require.NotEmpty(t, phrases)
	assert.Contains(t, phrases[0], "5+ years of experience in backend development")
}

// TestExtractExperienceRequirementsFallback 样式零命中时退化为含experience的整句
func TestExtractExperienceRequirementsFallback(t *testing.T) {
	a := NewJDAnalyzer(nil)

	phrases := a.ExtractExperienceRequirements("Prior experience shipping production software is expected.")
	require.Len(t, phrases, 1)
	assert.Contains(t, phrases[0], "experience shipping production software")

	assert.Empty(t, a.ExtractExperienceRequirements("We value enthusiasm above all."))
}

// TestExtractQualificationRequirements 验证学历要求抽取
func TestExtractQualificationRequirements(t *testing.T) {
	a := NewJDAnalyzer(nil)

	quals := a.ExtractQualificationRequirements(analyzerJD)
	require.NotEmpty(t, quals)

	var hit bool
	for _, q := range quals {
		if strings.Contains(strings.ToLower(q), "bachelor") {
			hit = true
			break
		}
	}
	assert.True(t, hit, "应抽取到学位要求")
}

// TestExtractResponsibilitiesBullets 职责章节的列表行逐条抽取
func TestExtractResponsibilitiesBullets(t *testing.T) {
	a := NewJDAnalyzer(nil)

	resp := a.ExtractResponsibilities(analyzerJD)
	require.Len(t, resp, 2)
	assert.Equal(t, "Design and build scalable services", resp[0])
	assert.Equal(t, "Lead code reviews and mentor junior engineers", resp[1])
}

// TestExtractResponsibilitiesActionVerbFallback 无职责章节时扫描动作动词句
func TestExtractResponsibilitiesActionVerbFallback(t *testing.T) {
	a := NewJDAnalyzer(nil)

	resp := a.ExtractResponsibilities("You will build data pipelines. Snacks are free.")
	require.NotEmpty(t, resp)
	assert.Contains(t, resp[0], "build data pipelines")
}

// TestJDExtractSkillsLeadPhrase 技能引导语后的清单按分隔符切开
func TestJDExtractSkillsLeadPhrase(t *testing.T) {
	a := NewJDAnalyzer(nil)

	skills := a.ExtractSkills("Technologies required: Terraform, Ansible and Prometheus")
	assert.Contains(t, skills, "terraform")
	assert.Contains(t, skills, "ansible")
	assert.Contains(t, skills, "prometheus")
}
