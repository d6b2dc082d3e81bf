package processor

import (
	"fmt"
	"strings"
	"time"
)

// Email 生成的邮件内容
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailGenerator 按模板生成面试邀约与婉拒邮件
type EmailGenerator struct {
	companyName string
	senderName  string
	now         func() time.Time
}

// EmailOption EmailGenerator 的选项函数
type EmailOption func(*EmailGenerator)

// WithCompanyName 设置邮件落款中的公司名
func WithCompanyName(name string) EmailOption {
	return func(g *EmailGenerator) {
		if name != "" {
			g.companyName = name
		}
	}
}

// WithSenderName 设置邮件落款中的署名
func WithSenderName(name string) EmailOption {
	return func(g *EmailGenerator) {
		if name != "" {
			g.senderName = name
		}
	}
}

// WithEmailClock 注入时钟，测试时固定面试时段的起算日
func WithEmailClock(now func() time.Time) EmailOption {
	return func(g *EmailGenerator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewEmailGenerator 创建邮件生成器
func NewEmailGenerator(opts ...EmailOption) *EmailGenerator {
	g := &EmailGenerator{
		companyName: "Our Company",
		senderName:  "Recruitment Team",
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// InterviewSlots 返回从明天起接下来 5 个工作日的候选面试时段，
// 每天上午 10:00 与下午 14:00 各一个。
func (g *EmailGenerator) InterviewSlots() []time.Time {
	slots := make([]time.Time, 0, 10)
	day := g.now()

	for len(slots) < 10 {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		year, month, date := day.Date()
		slots = append(slots,
			time.Date(year, month, date, 10, 0, 0, 0, day.Location()),
			time.Date(year, month, date, 14, 0, 0, 0, day.Location()),
		)
	}
	return slots
}

// GenerateInterviewEmail 生成面试邀约邮件，附候选时段列表
func (g *EmailGenerator) GenerateInterviewEmail(candidateName, jobTitle string) Email {
	if candidateName == "" {
		candidateName = "Candidate"
	}

	var slotLines []string
	for _, slot := range g.InterviewSlots() {
		slotLines = append(slotLines, "  - "+slot.Format("Monday, January 2, 2006 at 15:04"))
	}

	body := fmt.Sprintf(`Dear %s,

Thank you for applying for the %s position at %s. We were impressed by your background and would like to invite you to an interview.

Please choose one of the following time slots and reply to confirm:

%s

If none of these times work for you, let us know and we will arrange an alternative.

Best regards,
%s
%s`,
		candidateName, jobTitle, g.companyName,
		strings.Join(slotLines, "\n"),
		g.senderName, g.companyName)

	return Email{
		Subject: fmt.Sprintf("Interview Invitation - %s", jobTitle),
		Body:    body,
	}
}

// GenerateRejectionEmail 生成婉拒邮件
func (g *EmailGenerator) GenerateRejectionEmail(candidateName, jobTitle string) Email {
	if candidateName == "" {
		candidateName = "Candidate"
	}

	body := fmt.Sprintf(`Dear %s,

Thank you for your interest in the %s position at %s and for the time you invested in your application.

After careful consideration, we have decided to move forward with other candidates whose experience more closely matches the requirements of this role. We encourage you to apply for future openings that match your skills.

We wish you every success in your job search.

Best regards,
%s
%s`,
		candidateName, jobTitle, g.companyName,
		g.senderName, g.companyName)

	return Email{
		Subject: fmt.Sprintf("Your Application for %s", jobTitle),
		Body:    body,
	}
}
