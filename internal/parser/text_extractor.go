package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"recruit-agent-go/internal/logger"
)

// TextExtractor 文本提取器接口。文档字节到纯文本的转换是外部协作者，
// 核心抽取逻辑只消费它产出的文本。
type TextExtractor interface {
	// ExtractText 从文件字节中提取纯文本，filename 用于类型推断与日志
	ExtractText(ctx context.Context, data []byte, filename string) (string, error)
}

// TikaExtractor 基于 Apache Tika 服务器的文本提取器，
// 支持 PDF/DOCX 等二进制格式。
type TikaExtractor struct {
	serverURL string
	client    *http.Client
	log       zerolog.Logger
}

// TikaOption Tika提取器配置选项
type TikaOption func(*TikaExtractor)

// WithTikaTimeout 设置HTTP超时
func WithTikaTimeout(timeout time.Duration) TikaOption {
	return func(e *TikaExtractor) {
		e.client.Timeout = timeout
	}
}

// WithTikaHTTPClient 替换HTTP客户端，测试时注入
func WithTikaHTTPClient(client *http.Client) TikaOption {
	return func(e *TikaExtractor) {
		e.client = client
	}
}

var _ TextExtractor = (*TikaExtractor)(nil)

// NewTikaExtractor 创建Tika文本提取器
func NewTikaExtractor(serverURL string, options ...TikaOption) *TikaExtractor {
	e := &TikaExtractor{
		serverURL: strings.TrimRight(serverURL, "/"),
		client:    &http.Client{Timeout: 60 * time.Second},
		log:       logger.Component("tika_extractor"),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// ExtractText 把文件字节PUT到Tika的 /tika 端点换取纯文本。
// 纯文本文件不经Tika直接解码。
func (e *TikaExtractor) ExtractText(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("文件内容为空: %s", filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".txt" {
		return decodePlainText(data), nil
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, e.serverURL+"/tika", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("构造Tika请求失败: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	if contentType := contentTypeForExt(ext); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求Tika服务器失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("Tika服务器返回 %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取Tika响应失败: %w", err)
	}

	text := strings.TrimSpace(string(body))
	e.log.Debug().
		Str("filename", filename).
		Int("chars", len(text)).
		Dur("elapsed", time.Since(start)).
		Msg("Tika文本提取完成")
	return text, nil
}

// contentTypeForExt 常见简历格式的MIME类型，未知类型交给Tika自动探测
func contentTypeForExt(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	default:
		return ""
	}
}

// PlainTextExtractor 仅处理纯文本字节的提取器，
// 用于未配置Tika的部署或测试环境。
type PlainTextExtractor struct{}

var _ TextExtractor = (*PlainTextExtractor)(nil)

// NewPlainTextExtractor 创建纯文本提取器
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// ExtractText 按UTF-8解码，非法字节被剔除
func (e *PlainTextExtractor) ExtractText(_ context.Context, data []byte, _ string) (string, error) {
	return decodePlainText(data), nil
}

// decodePlainText 宽容解码：丢弃非法UTF-8序列而不是报错
func decodePlainText(data []byte) string {
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data))
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(data), ""))
}
