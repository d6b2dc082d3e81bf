package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"

	"recruit-agent-go/internal/api/handler"
)

// requestID 为每个请求注入 X-Request-ID，响应头原样带回
func requestID() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		id := string(ctx.GetHeader("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set("request_id", id)
		ctx.Response.Header.Set("X-Request-ID", id)
		ctx.Next(c)
	}
}

// RegisterRoutes 注册 API 路由
func RegisterRoutes(
	h *server.Hertz,
	jobHandler *handler.JobHandler,
	resumeHandler *handler.ResumeHandler,
	candidateHandler *handler.CandidateHandler,
) {
	h.Use(requestID())

	api := h.Group("/api/v1")

	// 岗位
	api.POST("/jobs", jobHandler.CreateJob)
	api.GET("/jobs", jobHandler.ListJobs)
	api.GET("/jobs/:job_id", jobHandler.GetJob)
	api.GET("/jobs/:job_id/candidates", jobHandler.GetJobCandidates)

	// 简历与匹配
	api.POST("/resumes", resumeHandler.UploadResume)
	api.POST("/matches", resumeHandler.CreateMatch)
	api.GET("/matches", resumeHandler.GetMatch)

	// 候选人
	api.GET("/candidates/:candidate_id", candidateHandler.GetCandidate)
	api.GET("/candidates/:candidate_id/file", candidateHandler.DownloadOriginal)
	api.GET("/candidates/:candidate_id/text", candidateHandler.GetParsedText)
	api.GET("/candidates/:candidate_id/emails/interview", candidateHandler.GetInterviewEmail)
	api.GET("/candidates/:candidate_id/emails/rejection", candidateHandler.GetRejectionEmail)

	// 统计与健康检查
	api.GET("/statistics", candidateHandler.GetStatistics)
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
