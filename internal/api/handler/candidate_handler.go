package handler

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"recruit-agent-go/internal/processor"
)

// CandidateHandler 候选人查询与邮件生成接口
type CandidateHandler struct {
	service processor.RecruitService
	emails  *processor.EmailGenerator
}

// NewCandidateHandler 创建候选人处理器
func NewCandidateHandler(service processor.RecruitService, emails *processor.EmailGenerator) *CandidateHandler {
	return &CandidateHandler{service: service, emails: emails}
}

// GetCandidate 候选人详情
func (h *CandidateHandler) GetCandidate(c context.Context, ctx *app.RequestContext) {
	candidateID := ctx.Param("candidate_id")

	resume, err := h.service.GetCandidate(c, candidateID)
	if errors.Is(err, processor.ErrCandidateNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "候选人不存在"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}
	ctx.JSON(consts.StatusOK, resume)
}

// DownloadOriginal 下载候选人上传的原始简历文件
func (h *CandidateHandler) DownloadOriginal(c context.Context, ctx *app.RequestContext) {
	candidateID := ctx.Param("candidate_id")

	data, filename, err := h.service.GetOriginalDocument(c, candidateID)
	if !h.checkDocumentErr(ctx, err) {
		return
	}

	if filename == "" {
		filename = candidateID
	}
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(consts.StatusOK, "application/octet-stream", data)
}

// GetParsedText 下载候选人简历的解析文本
func (h *CandidateHandler) GetParsedText(c context.Context, ctx *app.RequestContext) {
	candidateID := ctx.Param("candidate_id")

	text, err := h.service.GetParsedText(c, candidateID)
	if !h.checkDocumentErr(ctx, err) {
		return
	}

	ctx.JSON(consts.StatusOK, utils.H{"candidate_id": candidateID, "text": text})
}

// checkDocumentErr 文件类接口的统一错误转码，无错误时返回 true
func (h *CandidateHandler) checkDocumentErr(ctx *app.RequestContext, err error) bool {
	switch {
	case errors.Is(err, processor.ErrCandidateNotFound):
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "候选人不存在"})
		return false
	case errors.Is(err, processor.ErrDocumentNotFound):
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "简历文件未存储"})
		return false
	case err != nil:
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return false
	}
	return true
}

// GetInterviewEmail 生成面试邀约邮件，job_id 指定岗位
func (h *CandidateHandler) GetInterviewEmail(c context.Context, ctx *app.RequestContext) {
	h.generateEmail(c, ctx, true)
}

// GetRejectionEmail 生成婉拒邮件，job_id 指定岗位
func (h *CandidateHandler) GetRejectionEmail(c context.Context, ctx *app.RequestContext) {
	h.generateEmail(c, ctx, false)
}

func (h *CandidateHandler) generateEmail(c context.Context, ctx *app.RequestContext, interview bool) {
	candidateID := ctx.Param("candidate_id")
	jobID := ctx.Query("job_id")
	if jobID == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少 job_id 参数"})
		return
	}

	resume, err := h.service.GetCandidate(c, candidateID)
	if errors.Is(err, processor.ErrCandidateNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "候选人不存在"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	jd, err := h.service.GetJob(c, jobID)
	if errors.Is(err, processor.ErrJobNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "岗位不存在"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	var email processor.Email
	if interview {
		email = h.emails.GenerateInterviewEmail(resume.CandidateName, jd.Title)
	} else {
		email = h.emails.GenerateRejectionEmail(resume.CandidateName, jd.Title)
	}

	ctx.JSON(consts.StatusOK, utils.H{
		"candidate_id": candidateID,
		"job_id":       jobID,
		"to":           resume.Email,
		"subject":      email.Subject,
		"body":         email.Body,
	})
}

// GetStatistics 全库统计
func (h *CandidateHandler) GetStatistics(c context.Context, ctx *app.RequestContext) {
	stats, err := h.service.GetStatistics(c)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}
	ctx.JSON(consts.StatusOK, stats)
}
