package matcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit-agent-go/internal/types"
)

// fixedClock 把时钟固定在 2024 年，保证年限计算可复现
func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func newTestMatcher() *Matcher {
	return NewMatcher(NewSimilarityEngine(nil), WithClock(fixedClock))
}

// TestMatchEmptyRequirements 验证岗位无任何要求时三个维度都记 100 分
func TestMatchEmptyRequirements(t *testing.T) {
	m := newTestMatcher()
	resume := types.NewResume("", "", "")
	resume.ID = "cand-1"
	jd := types.NewJobDescription("", "", "")
	jd.ID = "job-1"

	result := m.Match(context.Background(), resume, jd)
	require.NotNil(t, result)

	assert.Equal(t, 100, result.Skills.Percentage, "无技能要求应视为自动满足")
	assert.Equal(t, 100, result.Experience.Percentage)
	assert.Equal(t, 100, result.Education.Percentage)
	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, "cand-1", result.CandidateID)
	assert.Equal(t, "job-1", result.JobID)
}

// TestMatchSkillsExactAndSynonym 验证技能精确匹配与同义词映射
func TestMatchSkillsExactAndSynonym(t *testing.T) {
	m := newTestMatcher()
	field := m.matchSkills(context.Background(),
		[]string{"Python", "ML", "Docker"},
		[]string{"python", "Machine Learning"})

	assert.Equal(t, 2, field.Required)
	assert.Equal(t, 2.0, field.Found, "Python 大小写差异与 ML/Machine Learning 同义词都应记满分")
	assert.Equal(t, 100, field.Percentage)
}

// TestMatchSkillsSimilarityBands 验证 0.8/0.6 两档相似度阈值
func TestMatchSkillsSimilarityBands(t *testing.T) {
	m := newTestMatcher()

	// "postgres"/"postgresql" 序列相似度约 0.889 > 0.8，记满分
	field := m.matchSkills(context.Background(),
		[]string{"postgres"}, []string{"postgresql"})
	assert.Equal(t, 1.0, field.Found)

	// "lambda"/"aws lambda" 序列相似度 0.75，落在 (0.6, 0.8] 半分档
	field = m.matchSkills(context.Background(),
		[]string{"lambda"}, []string{"aws lambda"})
	assert.Equal(t, 0.5, field.Found)
	assert.Equal(t, 50, field.Percentage)

	// 完全无关的技能不得分
	field = m.matchSkills(context.Background(),
		[]string{"photoshop"}, []string{"kubernetes"})
	assert.Equal(t, 0.0, field.Found)
	assert.Equal(t, 0, field.Percentage)
}

// TestMatchExperienceYears 验证年限场景：2018-2022 加 2022-present(2024) 共 6 年，满足 5 年要求
func TestMatchExperienceYears(t *testing.T) {
	m := newTestMatcher()
	field := m.matchExperience(context.Background(),
		[]string{
			"Software Engineer at Acme (2018-2022)",
			"Senior Engineer at Beta (2022-present)",
		},
		[]string{"5+ years experience"})

	assert.Equal(t, 1, field.Required)
	assert.Equal(t, 1.0, field.Found, "6 年经历满足 5 年要求应记满分")
	assert.Equal(t, 100, field.Percentage)
}

// TestMatchExperienceYearsPartialCredit 验证年限达到要求 70% 时的半分
func TestMatchExperienceYearsPartialCredit(t *testing.T) {
	m := newTestMatcher()
	// 4 年经历对 5 年要求：4 >= 5*0.7，记半分
	field := m.matchExperience(context.Background(),
		[]string{"Engineer at Acme (2020-2024)"},
		[]string{"5+ years experience"})
	assert.Equal(t, 0.5, field.Found)

	// 3 年经历对 5 年要求：3 < 3.5，不得分
	field = m.matchExperience(context.Background(),
		[]string{"Engineer at Acme (2021-2024)"},
		[]string{"5+ years experience"})
	assert.Equal(t, 0.0, field.Found)
}

// TestMatchExperienceDomainTerms 验证短要求短语的领域词覆盖判定
func TestMatchExperienceDomainTerms(t *testing.T) {
	m := newTestMatcher()
	field := m.matchExperience(context.Background(),
		[]string{"Experience building Python Django services at Acme"},
		[]string{"Experience with Python Django"})

	assert.Equal(t, 1, field.Required)
	assert.Equal(t, 1.0, field.Found, "要求短语的领域词全部出现在经历文本中应记满分")
}

// TestMatchExperienceCappedAtRequired 验证累计贡献封顶为要求条数
func TestMatchExperienceCappedAtRequired(t *testing.T) {
	m := newTestMatcher()
	field := m.matchExperience(context.Background(),
		[]string{"Python Django development at Acme (2015-2024)"},
		[]string{"2+ years Python Django"})

	// 年限满分 + 领域词满分 = 2.0，但要求只有 1 条，封顶后百分比不超过 100
	assert.Equal(t, 1.0, field.Found)
	assert.Equal(t, 100, field.Percentage)
}

// TestMatchEducationDegreeLadder 验证学历等级达标判定
func TestMatchEducationDegreeLadder(t *testing.T) {
	m := newTestMatcher()
	ctx := context.Background()

	// 硕士满足学士要求
	field := m.matchEducation(ctx,
		[]types.Education{{Degree: "Master of Science in Computer Science"}},
		[]string{"Bachelor's degree in Computer Science required"})
	assert.Equal(t, 1, field.Required)
	assert.Equal(t, 100, field.Percentage, "学历超出要求且专业一致应记满分")

	// 学士不满足硕士要求时学历项不得分，专业重合仍贡献专业项
	field = m.matchEducation(ctx,
		[]types.Education{{Degree: "Bachelor of Science in Computer Science"}},
		[]string{"Master's degree required", "Computer Science background"})
	assert.Equal(t, 2, field.Required)
	assert.Equal(t, 1.0, field.Found, "专业方向完全重合贡献 1.0，学历项为 0")
	assert.Equal(t, 50, field.Percentage)
}

// TestMatchEducationNoDegreeRecognized 验证双方都无学历表述时不误判
func TestMatchEducationNoDegreeRecognized(t *testing.T) {
	m := newTestMatcher()
	field := m.matchEducation(context.Background(),
		nil,
		[]string{"Strong communication skills"})

	assert.Equal(t, 1, field.Required)
	assert.Equal(t, 0.0, field.Found)
	assert.Equal(t, 0, field.Percentage)
}

// TestMatchOverallWeighting 验证总分按 0.5/0.3/0.2 加权
func TestMatchOverallWeighting(t *testing.T) {
	m := newTestMatcher()
	resume := types.NewResume("", "", "resume text")
	resume.ID = "cand-2"
	resume.Skills = []string{"Python", "Django", "PostgreSQL"}
	resume.Experience = []string{"Backend Engineer at Acme (2018-2024)"}
	resume.Education = []types.Education{{Degree: "Bachelor of Science in Computer Science"}}

	jd := types.NewJobDescription("Backend Engineer", "", "jd text")
	jd.ID = "job-2"
	jd.Skills = []string{"Python", "Django"}
	jd.Experience = []string{"5+ years experience"}
	jd.Qualifications = []string{"Bachelor's degree in Computer Science"}

	result := m.Match(context.Background(), resume, jd)

	assert.Equal(t, 100, result.Skills.Percentage)
	assert.Equal(t, 100, result.Experience.Percentage)
	assert.Equal(t, 100, result.Education.Percentage)
	assert.Equal(t, 100, result.OverallScore)

	expected := int(mathRound(float64(result.Skills.Percentage)*0.5 +
		float64(result.Experience.Percentage)*0.3 +
		float64(result.Education.Percentage)*0.2))
	assert.Equal(t, expected, result.OverallScore)
}

func mathRound(v float64) float64 {
	return float64(int(v + 0.5))
}
