package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"recruit-agent-go/internal/config"
	"recruit-agent-go/internal/logger"
)

// TextEmbedder 文本向量化接口。相似度引擎把它作为可选能力：
// 实例缺失或调用失败都只是让相似度退化到下一档，绝不中断匹配。
type TextEmbedder interface {
	// EmbedStrings 批量把文本转为向量
	EmbedStrings(ctx context.Context, texts []string) ([][]float64, error)

	// GetDimensions 返回向量维度
	GetDimensions() int
}

// AliyunEmbedder 调用阿里云DashScope的OpenAI兼容embedding端点
type AliyunEmbedder struct {
	apiKey     string
	model      string
	dimensions int
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

var _ TextEmbedder = (*AliyunEmbedder)(nil)

// NewAliyunEmbedder 创建阿里云Embedder
func NewAliyunEmbedder(cfg config.EmbeddingConfig) (*AliyunEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("embedding API密钥不能为空")
	}

	model := cfg.Model
	if model == "" {
		model = "text-embedding-v3"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/embeddings"
	}

	return &AliyunEmbedder{
		apiKey:     cfg.APIKey,
		model:      model,
		dimensions: cfg.Dimensions,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.Component("aliyun_embedder"),
	}, nil
}

// GetDimensions 返回配置的向量维度
func (a *AliyunEmbedder) GetDimensions() int {
	return a.dimensions
}

// embeddingRequest OpenAI兼容的请求体
type embeddingRequest struct {
	Input          []string `json:"input"`
	Model          string   `json:"model"`
	Dimensions     int      `json:"dimensions,omitempty"`
	EncodingFormat string   `json:"encoding_format,omitempty"`
}

// embeddingResponse OpenAI兼容的响应体
type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// EmbedStrings 批量向量化文本
func (a *AliyunEmbedder) EmbedStrings(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	reqBody := embeddingRequest{
		Input:          texts,
		Model:          a.model,
		Dimensions:     a.dimensions,
		EncodingFormat: "float",
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("序列化embedding请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("构造embedding请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求embedding服务失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取embedding响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding服务返回 %d: %s", resp.StatusCode, string(body))
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("解析embedding响应失败: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("embedding服务错误: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("embedding结果数量不符: 期望 %d 实际 %d", len(texts), len(parsed.Data))
	}

	// 响应中的顺序按index还原
	vectors := make([][]float64, len(texts))
	for _, entry := range parsed.Data {
		if entry.Index < 0 || entry.Index >= len(vectors) {
			return nil, fmt.Errorf("embedding结果索引越界: %d", entry.Index)
		}
		vectors[entry.Index] = entry.Embedding
	}

	a.log.Debug().Int("texts", len(texts)).Str("model", a.model).Msg("文本向量化完成")
	return vectors, nil
}
