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

// JobHandler 岗位相关接口
type JobHandler struct {
	service processor.RecruitService
}

// NewJobHandler 创建岗位处理器
func NewJobHandler(service processor.RecruitService) *JobHandler {
	return &JobHandler{service: service}
}

// CreateJob 上传岗位描述并触发分析。
// 描述内容既可以是表单文件(file)，也可以是表单字段(content)。
func (h *JobHandler) CreateJob(c context.Context, ctx *app.RequestContext) {
	title := ctx.PostForm("title")
	if title == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "岗位名称不能为空"})
		return
	}
	department := ctx.PostForm("department")

	content := ctx.PostForm("content")
	if content == "" {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少岗位描述内容或文件"})
			return
		}
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
		content = string(data)
	}

	jd, err := h.service.ProcessJobDescription(c, title, department, content)
	if errors.Is(err, processor.ErrEmptyDocument) {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "岗位描述内容为空"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	ctx.JSON(consts.StatusOK, jd)
}

// ListJobs 岗位列表
func (h *JobHandler) ListJobs(c context.Context, ctx *app.RequestContext) {
	jobs, err := h.service.ListJobs(c)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}
	ctx.JSON(consts.StatusOK, utils.H{"jobs": jobs})
}

// GetJob 岗位详情
func (h *JobHandler) GetJob(c context.Context, ctx *app.RequestContext) {
	jobID := ctx.Param("job_id")

	jd, err := h.service.GetJob(c, jobID)
	if errors.Is(err, processor.ErrJobNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "岗位不存在"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}
	ctx.JSON(consts.StatusOK, jd)
}

// GetJobCandidates 岗位的匹配候选人列表，按总分倒序。
// shortlisted=true 时只返回入围候选人。
func (h *JobHandler) GetJobCandidates(c context.Context, ctx *app.RequestContext) {
	jobID := ctx.Param("job_id")

	if ctx.Query("shortlisted") == "true" {
		shortlist, err := h.service.GetShortlist(c, jobID)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, utils.H{"job_id": jobID, "candidates": shortlist})
		return
	}

	jwc, err := h.service.GetJobWithCandidates(c, jobID)
	if errors.Is(err, processor.ErrJobNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "岗位不存在"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}
	ctx.JSON(consts.StatusOK, jwc)
}
