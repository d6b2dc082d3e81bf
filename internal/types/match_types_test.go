package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recruit-agent-go/internal/constants"
)

// TestMatchFieldPercentage 验证百分比口径：无需求满分、四舍五入、封顶100
func TestMatchFieldPercentage(t *testing.T) {
	cases := []struct {
		name     string
		required int
		found    float64
		want     int
	}{
		{"无需求视为自动满足", 0, 0, 100},
		{"全部命中", 4, 4, 100},
		{"一半命中", 4, 2, 50},
		{"部分匹配贡献小数", 2, 0.5, 25},
		{"四舍五入", 3, 1, 33},
		{"四舍五入进位", 3, 2, 67},
		{"超出需求时封顶", 2, 3, 100},
		{"零命中", 5, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			field := NewMatchField(c.required, c.found)
			assert.Equal(t, c.want, field.Percentage)
		})
	}
}

// TestDefaultMatchWeights 验证默认权重来自全局常量且三项之和为1.0
func TestDefaultMatchWeights(t *testing.T) {
	w := DefaultMatchWeights()
	assert.Equal(t, float64(constants.SkillsWeight), w.Skills)
	assert.Equal(t, float64(constants.ExperienceWeight), w.Experience)
	assert.Equal(t, float64(constants.EducationWeight), w.Education)
	assert.Equal(t, 0.5, w.Skills)
	assert.Equal(t, 0.3, w.Experience)
	assert.Equal(t, 0.2, w.Education)
	assert.InDelta(t, 1.0, w.Skills+w.Experience+w.Education, 1e-9)
}

// TestCalculateOverallScore 验证加权总分的计算与取整
func TestCalculateOverallScore(t *testing.T) {
	r := NewMatchResult("cand-1", "job-1")
	r.Skills = NewMatchField(2, 2)      // 100
	r.Experience = NewMatchField(2, 1)  // 50
	r.Education = NewMatchField(1, 0.5) // 50

	// 100*0.5 + 50*0.3 + 50*0.2 = 75
	assert.Equal(t, 75, r.CalculateOverallScore())
	assert.Equal(t, 75, r.OverallScore)
}

// TestCalculateOverallScoreRounding 验证非整数加权和四舍五入到最近整数
func TestCalculateOverallScoreRounding(t *testing.T) {
	r := NewMatchResult("cand-1", "job-1")
	r.Skills = NewMatchField(3, 1)     // 33
	r.Experience = NewMatchField(3, 1) // 33
	r.Education = NewMatchField(3, 1)  // 33

	// 33*0.5 + 33*0.3 + 33*0.2 = 33
	assert.Equal(t, 33, r.CalculateOverallScore())

	r.Skills = NewMatchField(2, 1)     // 50
	r.Experience = NewMatchField(3, 2) // 67
	r.Education = NewMatchField(1, 1)  // 100
	// 50*0.5 + 67*0.3 + 100*0.2 = 65.1 -> 65
	assert.Equal(t, 65, r.CalculateOverallScore())
}

// TestNewDocumentsInitializeEmptyFields 验证构造时结构化字段为空集合而非nil
func TestNewDocumentsInitializeEmptyFields(t *testing.T) {
	resume := NewResume("John", "john@example.com", "content")
	assert.NotNil(t, resume.Skills)
	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Certifications)
	assert.Empty(t, resume.Skills)

	jd := NewJobDescription("Engineer", "Platform", "content")
	assert.NotNil(t, jd.Skills)
	assert.NotNil(t, jd.Experience)
	assert.NotNil(t, jd.Qualifications)
	assert.NotNil(t, jd.Responsibilities)
	assert.Equal(t, "Platform", jd.Department)
}
