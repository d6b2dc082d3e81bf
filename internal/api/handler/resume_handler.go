package handler

import (
	"context"
	"errors"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"recruit-agent-go/internal/processor"
)

// ResumeHandler 简历上传与匹配接口
type ResumeHandler struct {
	service processor.RecruitService
}

// NewResumeHandler 创建简历处理器
func NewResumeHandler(service processor.RecruitService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// UploadResume 上传简历文件。job_id 非空时同步执行匹配，
// 响应中带匹配结果与入围判定。
func (h *ResumeHandler) UploadResume(c context.Context, ctx *app.RequestContext) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
		return
	}
	jobID := ctx.PostForm("job_id")

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取文件失败"})
		return
	}

	result, err := h.service.ProcessResume(c, fileHeader.Filename, data, jobID)
	switch {
	case errors.Is(err, processor.ErrDuplicateContent):
		ctx.JSON(consts.StatusConflict, utils.H{"error": "重复的简历文件", "status": "DUPLICATE_FILE_SKIPPED"})
		return
	case errors.Is(err, processor.ErrEmptyDocument):
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "简历内容为空"})
		return
	case errors.Is(err, processor.ErrJobNotFound):
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "目标岗位不存在"})
		return
	case err != nil:
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	ctx.JSON(consts.StatusOK, result)
}

// MatchRequest 重新匹配请求体
type MatchRequest struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
}

// CreateMatch 用已持久化的候选人与岗位重新执行匹配
func (h *ResumeHandler) CreateMatch(c context.Context, ctx *app.RequestContext) {
	var req MatchRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
		return
	}
	if req.CandidateID == "" || req.JobID == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "candidate_id 与 job_id 不能为空"})
		return
	}

	match, err := h.service.MatchCandidate(c, req.CandidateID, req.JobID)
	switch {
	case errors.Is(err, processor.ErrCandidateNotFound):
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "候选人不存在"})
		return
	case errors.Is(err, processor.ErrJobNotFound):
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "岗位不存在"})
		return
	case err != nil:
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	ctx.JSON(consts.StatusOK, match)
}

// GetMatch 查询一对 (candidate, job) 已有的匹配结果，不触发重新匹配
func (h *ResumeHandler) GetMatch(c context.Context, ctx *app.RequestContext) {
	candidateID := ctx.Query("candidate_id")
	jobID := ctx.Query("job_id")
	if candidateID == "" || jobID == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "candidate_id 与 job_id 不能为空"})
		return
	}

	match, err := h.service.GetMatch(c, candidateID, jobID)
	if errors.Is(err, processor.ErrMatchNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "匹配结果不存在"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	ctx.JSON(consts.StatusOK, match)
}
