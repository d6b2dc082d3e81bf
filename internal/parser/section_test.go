package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLocateSection 验证章节定位：标题之后、下一个已知标题之前
func TestLocateSection(t *testing.T) {
	text := "John Smith\n\nSkills:\n- Python\n- SQL\n\nEducation:\nMIT"

	body, ok := LocateSection(text, []string{"skills"})
	assert.True(t, ok)
	assert.Equal(t, "- Python\n- SQL", body)

	body, ok = LocateSection(text, []string{"education"})
	assert.True(t, ok)
	assert.Equal(t, "MIT", body)
}

// TestLocateSectionHeaderVariants 验证装饰过的标题与大小写不敏感
func TestLocateSectionHeaderVariants(t *testing.T) {
	text := "intro\n** TECHNICAL SKILLS **\nPython, Go\n\nExperience:\nnone"

	body, ok := LocateSection(text, []string{"technical skills"})
	assert.True(t, ok)
	assert.Equal(t, "Python, Go", body)
}

// TestLocateSectionFallbackOrder 验证按调用方给定顺序取第一个命中的标题
func TestLocateSectionFallbackOrder(t *testing.T) {
	text := "Work Experience:\nbody here"

	body, ok := LocateSection(text, []string{"experience history", "work experience"})
	assert.True(t, ok)
	assert.Equal(t, "body here", body)
}

// TestLocateSectionNotFound 无匹配标题时返回未找到
func TestLocateSectionNotFound(t *testing.T) {
	_, ok := LocateSection("plain paragraph with no headers", []string{"skills", "education"})
	assert.False(t, ok)

	// 标题词出现在行中但不构成标题行时不应命中
	_, ok = LocateSection("I improved my skills over time", []string{"skills"})
	assert.False(t, ok)
}

// TestLocateSectionRunsToEnd 末尾章节取到文本结束
func TestLocateSectionRunsToEnd(t *testing.T) {
	body, ok := LocateSection("Certifications:\nAWS Certified", []string{"certifications"})
	assert.True(t, ok)
	assert.Equal(t, "AWS Certified", body)
}
