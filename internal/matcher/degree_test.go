package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDegreeRank 验证五级学历阶梯的识别
func TestDegreeRank(t *testing.T) {
	cases := []struct {
		phrase string
		rank   int
	}{
		{"High school diploma", DegreeHighSchool},
		{"GED", DegreeHighSchool},
		{"Associate's degree in nursing", DegreeAssociate},
		{"Bachelor of Science in Computer Science", DegreeBachelor},
		{"B.S. Computer Science", DegreeBachelor},
		{"BSc Mathematics", DegreeBachelor},
		{"Master's degree preferred", DegreeMaster},
		{"MBA", DegreeMaster},
		{"M.S. in Data Science", DegreeMaster},
		{"PhD in Physics", DegreeDoctorate},
		{"Ph.D. or equivalent", DegreeDoctorate},
		{"Doctorate required", DegreeDoctorate},
		{"Certified Kubernetes Administrator", DegreeNone},
		{"", DegreeNone},
	}
	for _, c := range cases {
		assert.Equal(t, c.rank, DegreeRank(c.phrase), "短语 %q 的学历等级不符", c.phrase)
	}
}

// TestDegreeLadderOrdering 验证阶梯高低关系
func TestDegreeLadderOrdering(t *testing.T) {
	assert.Less(t, DegreeRank("Bachelor's degree"), DegreeRank("Master's degree"),
		"学士应低于硕士")
	assert.Less(t, DegreeRank("Master of Science"), DegreeRank("PhD"),
		"硕士应低于博士")
}

// TestHighestDegree 验证多短语取最高等级
func TestHighestDegree(t *testing.T) {
	phrases := []string{
		"High school diploma",
		"Bachelor of Arts in Economics",
		"Master of Business Administration",
	}
	assert.Equal(t, DegreeMaster, HighestDegree(phrases))
	assert.Equal(t, DegreeNone, HighestDegree(nil))
	assert.Equal(t, DegreeNone, HighestDegree([]string{"AWS certification"}))
}

// TestExtractFieldsOfStudy 验证专业方向提取：模式匹配与常见专业列表
func TestExtractFieldsOfStudy(t *testing.T) {
	fields := ExtractFieldsOfStudy([]string{"Bachelor's degree in Computer Science"})
	assert.Contains(t, fields, "computer science")

	fields = ExtractFieldsOfStudy([]string{"Background in data science or statistics preferred"})
	assert.Contains(t, fields, "data science", "列表中的常见专业即使不跟在学位后也应命中")
	assert.Contains(t, fields, "statistics")

	// 保序去重
	fields = ExtractFieldsOfStudy([]string{
		"Master in Computer Science",
		"Bachelor in Computer Science",
	})
	assert.Equal(t, []string{"computer science"}, fields)

	assert.Empty(t, ExtractFieldsOfStudy([]string{"5 years of experience"}))
	assert.Empty(t, ExtractFieldsOfStudy(nil))
}
