package processor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-01 是周六，接下来的工作日从周一(6月3日)开始
func emailClock() time.Time {
	return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
}

// TestInterviewSlots 验证时段落在接下来5个工作日的10点与14点
func TestInterviewSlots(t *testing.T) {
	g := NewEmailGenerator(WithEmailClock(emailClock))
	slots := g.InterviewSlots()
	require.Len(t, slots, 10, "5个工作日每天两个时段")

	// 第一个时段是下周一上午10点
	assert.Equal(t, time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), slots[0])
	assert.Equal(t, time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC), slots[1])
	// 最后一个工作日是周五
	assert.Equal(t, time.Date(2024, 6, 7, 14, 0, 0, 0, time.UTC), slots[9])

	for _, slot := range slots {
		assert.NotEqual(t, time.Saturday, slot.Weekday())
		assert.NotEqual(t, time.Sunday, slot.Weekday())
		assert.True(t, slot.Hour() == 10 || slot.Hour() == 14)
	}
}

// TestGenerateInterviewEmail 验证邀约邮件的主题与正文要素
func TestGenerateInterviewEmail(t *testing.T) {
	g := NewEmailGenerator(
		WithEmailClock(emailClock),
		WithCompanyName("Acme Corp"),
		WithSenderName("Jane HR"),
	)

	email := g.GenerateInterviewEmail("John Smith", "Backend Engineer")
	assert.Equal(t, "Interview Invitation - Backend Engineer", email.Subject)
	assert.Contains(t, email.Body, "Dear John Smith")
	assert.Contains(t, email.Body, "Backend Engineer")
	assert.Contains(t, email.Body, "Acme Corp")
	assert.Contains(t, email.Body, "Jane HR")
	assert.Contains(t, email.Body, "Monday, June 3, 2024 at 10:00")
}

// TestGenerateInterviewEmailFallbackName 验证姓名缺失时用默认称呼
func TestGenerateInterviewEmailFallbackName(t *testing.T) {
	g := NewEmailGenerator(WithEmailClock(emailClock))
	email := g.GenerateInterviewEmail("", "Backend Engineer")
	assert.Contains(t, email.Body, "Dear Candidate")
}

// TestGenerateRejectionEmail 验证婉拒邮件内容
func TestGenerateRejectionEmail(t *testing.T) {
	g := NewEmailGenerator(WithCompanyName("Acme Corp"))
	email := g.GenerateRejectionEmail("John Smith", "Backend Engineer")
	assert.Equal(t, "Your Application for Backend Engineer", email.Subject)
	assert.Contains(t, email.Body, "Dear John Smith")
	assert.Contains(t, email.Body, "other candidates")
	assert.Contains(t, email.Body, "Acme Corp")
}
