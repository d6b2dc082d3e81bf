package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"recruit-agent-go/internal/config"
)

// ObjectStorage 对象存储接口
type ObjectStorage interface {
	// UploadOriginal 上传原始简历文件，返回对象路径
	UploadOriginal(ctx context.Context, candidateID, fileExt string, reader io.Reader, fileSize int64) (string, error)

	// UploadParsedText 上传解析出的纯文本，返回对象路径
	UploadParsedText(ctx context.Context, candidateID string, text string) (string, error)

	// GetOriginal 下载原始简历文件
	GetOriginal(ctx context.Context, objectName string) ([]byte, error)

	// GetParsedText 下载解析文本
	GetParsedText(ctx context.Context, objectName string) (string, error)
}

// 确保MinIO实现了ObjectStorage接口
var _ ObjectStorage = (*MinIO)(nil)

// MinIO 提供对象存储功能
type MinIO struct {
	client         *minio.Client
	cfg            *config.MinIOConfig
	originalBucket string
	parsedBucket   string
}

// NewMinIO 创建MinIO客户端并确保存储桶存在
func NewMinIO(cfg *config.MinIOConfig) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	originalBucket := cfg.OriginalsBucket
	if originalBucket == "" {
		originalBucket = "resume-originals"
	}
	parsedBucket := cfg.ParsedTextBucket
	if parsedBucket == "" {
		parsedBucket = "resume-parsed-text"
	}

	m := &MinIO{
		client:         client,
		cfg:            cfg,
		originalBucket: originalBucket,
		parsedBucket:   parsedBucket,
	}

	if err := m.ensureBucketExists(originalBucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保原始简历存储桶 %s 存在失败: %w", originalBucket, err)
	}
	if err := m.ensureBucketExists(parsedBucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保解析文本存储桶 %s 存在失败: %w", parsedBucket, err)
	}

	return m, nil
}

func (m *MinIO) ensureBucketExists(bucket, location string) error {
	ctx := context.Background()
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("检查存储桶失败: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: location}); err != nil {
		return fmt.Errorf("创建存储桶失败: %w", err)
	}
	return nil
}

// UploadOriginal 上传原始简历文件到 originals 桶
func (m *MinIO) UploadOriginal(ctx context.Context, candidateID, fileExt string, reader io.Reader, fileSize int64) (string, error) {
	ext := strings.TrimPrefix(fileExt, ".")
	objectName := fmt.Sprintf("originals/%s.%s", candidateID, ext)

	_, err := m.client.PutObject(ctx, m.originalBucket, objectName, reader, fileSize,
		minio.PutObjectOptions{ContentType: contentTypeForUpload(ext)})
	if err != nil {
		return "", fmt.Errorf("上传原始简历失败: %w", err)
	}
	return objectName, nil
}

// UploadParsedText 上传解析文本到 parsed-text 桶
func (m *MinIO) UploadParsedText(ctx context.Context, candidateID string, text string) (string, error) {
	objectName := fmt.Sprintf("parsed/%s.txt", candidateID)
	reader := bytes.NewReader([]byte(text))

	_, err := m.client.PutObject(ctx, m.parsedBucket, objectName, reader, int64(reader.Len()),
		minio.PutObjectOptions{ContentType: "text/plain; charset=utf-8"})
	if err != nil {
		return "", fmt.Errorf("上传解析文本失败: %w", err)
	}
	return objectName, nil
}

// GetOriginal 从 originals 桶下载原始简历
func (m *MinIO) GetOriginal(ctx context.Context, objectName string) ([]byte, error) {
	object, err := m.client.GetObject(ctx, m.originalBucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("下载原始简历失败: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("读取原始简历失败: %w", err)
	}
	return data, nil
}

// GetParsedText 从 parsed-text 桶下载解析文本
func (m *MinIO) GetParsedText(ctx context.Context, objectName string) (string, error) {
	object, err := m.client.GetObject(ctx, m.parsedBucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("下载解析文本失败: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return "", fmt.Errorf("读取解析文本失败: %w", err)
	}
	return string(data), nil
}

func contentTypeForUpload(ext string) string {
	switch strings.ToLower(ext) {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "doc":
		return "application/msword"
	case "txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
