package types

import "time"

// Education 一条教育经历，无法解析的字段留空字符串
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Resume 简历文档。Content 为上游文本提取组件产出的原始文本，
// 结构化字段由分析器一次性填充：每次分析整体覆盖旧值，绝不合并。
type Resume struct {
	ID            string `json:"id"`
	CandidateName string `json:"candidate_name"`
	Email         string `json:"email"`

	// 原始文本，仅归本文档所有，不参与对外序列化
	Content string `json:"-"`

	Skills         []string    `json:"skills"`
	Experience     []string    `json:"experience"`
	Education      []Education `json:"education"`
	Certifications []string    `json:"certifications"`

	CreatedAt time.Time `json:"created_at"`
}

// NewResume 从原始文本创建未分析的简历文档
func NewResume(name, email, content string) *Resume {
	return &Resume{
		CandidateName:  name,
		Email:          email,
		Content:        content,
		Skills:         []string{},
		Experience:     []string{},
		Education:      []Education{},
		Certifications: []string{},
	}
}

// JobDescription 岗位描述文档。Experience 存放经验需求短语，
// Qualifications 存放学历/资质需求短语。
type JobDescription struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`

	Content string `json:"-"`

	Skills           []string `json:"skills"`
	Experience       []string `json:"experience"`
	Qualifications   []string `json:"qualifications"`
	Responsibilities []string `json:"responsibilities"`

	CreatedAt time.Time `json:"created_at"`
}

// NewJobDescription 从原始文本创建未分析的岗位描述文档
func NewJobDescription(title, department, content string) *JobDescription {
	return &JobDescription{
		Title:            title,
		Department:       department,
		Content:          content,
		Skills:           []string{},
		Experience:       []string{},
		Qualifications:   []string{},
		Responsibilities: []string{},
	}
}
