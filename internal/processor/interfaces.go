package processor

import (
	"context"
	"errors"

	"recruit-agent-go/internal/storage"
	"recruit-agent-go/internal/types"
)

// 服务层公共错误
var (
	ErrStorageNotInit    = errors.New("storage is not initialized")
	ErrDuplicateContent  = errors.New("duplicate content detected")
	ErrEmptyDocument     = errors.New("document text is empty")
	ErrJobNotFound       = errors.New("job not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrMatchNotFound     = errors.New("match result not found")
	ErrDocumentNotFound  = errors.New("document not stored")
)

// ResumeProcessResult 一次简历处理的产出：结构化简历，以及
// 指定了目标岗位时的匹配结果与入围判定。
type ResumeProcessResult struct {
	Resume      *types.Resume      `json:"resume"`
	Match       *types.MatchResult `json:"match,omitempty"`
	Shortlisted bool               `json:"shortlisted"`
}

// JobWithCandidates 岗位与其匹配候选人列表(按总分倒序)
type JobWithCandidates struct {
	Job        *types.JobDescription `json:"job"`
	Candidates []*CandidateMatch     `json:"candidates"`
}

// CandidateMatch 列表项：候选人概要加匹配结果
type CandidateMatch struct {
	CandidateID   string             `json:"candidate_id"`
	CandidateName string             `json:"candidate_name"`
	Email         string             `json:"email"`
	Match         *types.MatchResult `json:"match"`
	Shortlisted   bool               `json:"shortlisted"`
}

// RecruitService 定义招聘处理服务的接口。
// 采用Facade模式，内部持有所有需要的组件，但不暴露给外部。
type RecruitService interface {
	// ProcessJobDescription 分析并持久化一个岗位描述
	ProcessJobDescription(ctx context.Context, title, department, content string) (*types.JobDescription, error)

	// ProcessResume 处理上传的简历：提取文本、结构化分析、持久化，
	// jobID 非空时执行匹配并判定是否入围
	ProcessResume(ctx context.Context, filename string, data []byte, jobID string) (*ResumeProcessResult, error)

	// MatchCandidate 用已持久化的候选人与岗位重新执行匹配
	MatchCandidate(ctx context.Context, candidateID, jobID string) (*types.MatchResult, error)

	// GetMatch 读取一对 (candidate, job) 已有的匹配结果，不触发重新匹配；
	// 先查缓存再落库
	GetMatch(ctx context.Context, candidateID, jobID string) (*types.MatchResult, error)

	// GetOriginalDocument 下载候选人的原始简历文件，返回内容与原始文件名
	GetOriginalDocument(ctx context.Context, candidateID string) ([]byte, string, error)

	// GetParsedText 下载候选人简历的解析文本
	GetParsedText(ctx context.Context, candidateID string) (string, error)

	// GetJob 按ID取岗位
	GetJob(ctx context.Context, jobID string) (*types.JobDescription, error)

	// ListJobs 列出全部岗位
	ListJobs(ctx context.Context) ([]*types.JobDescription, error)

	// GetCandidate 按ID取候选人
	GetCandidate(ctx context.Context, candidateID string) (*types.Resume, error)

	// GetJobWithCandidates 取岗位及其全部匹配候选人，按总分倒序
	GetJobWithCandidates(ctx context.Context, jobID string) (*JobWithCandidates, error)

	// GetShortlist 取岗位的入围候选人列表
	GetShortlist(ctx context.Context, jobID string) ([]*CandidateMatch, error)

	// GetStatistics 全库统计
	GetStatistics(ctx context.Context) (*storage.Statistics, error)
}
