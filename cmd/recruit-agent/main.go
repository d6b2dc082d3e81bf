package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/pflag"

	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"

	"recruit-agent-go/internal/api/handler"
	"recruit-agent-go/internal/api/router"
	"recruit-agent-go/internal/config"
	"recruit-agent-go/internal/logger"
	"recruit-agent-go/internal/processor"
	"recruit-agent-go/internal/storage"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", configPath).Msg("加载配置失败")
	}

	// 日志系统：应用内用zerolog，Hertz的hlog走适配器共用同一个实例
	logger.Init(cfg.Logger)
	glog.SetLogger(hertzadapter.From(logger.Logger))
	logger.Info().Str("config", configPath).Msg("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化存储失败")
	}
	defer storageManager.Close()
	logger.Info().Msg("存储服务初始化成功")

	service, err := processor.NewRecruitService(cfg, storageManager)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化招聘服务失败")
	}
	logger.Info().Msg("招聘服务初始化成功")

	emailGenerator := processor.NewEmailGenerator()

	jobHandler := handler.NewJobHandler(service)
	resumeHandler := handler.NewResumeHandler(service)
	candidateHandler := handler.NewCandidateHandler(service, emailGenerator)

	h := server.Default(server.WithHostPorts(cfg.Server.Address()))
	router.RegisterRoutes(h, jobHandler, resumeHandler, candidateHandler)
	logger.Info().Str("address", cfg.Server.Address()).Msg("HTTP路由注册成功，服务器启动中")

	go func() {
		if err := h.Run(); err != nil {
			logger.Fatal().Err(err).Msg("启动HTTP服务器失败")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("服务器关闭失败")
	}
	logger.Info().Msg("优雅退出完成")
}
