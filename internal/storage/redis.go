package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"recruit-agent-go/internal/config"
	"recruit-agent-go/internal/constants"
	"recruit-agent-go/internal/types"
)

// Redis 键值缓存适配器
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedisAdapter 创建Redis客户端并做一次连通性检查
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Redis配置不能为空")
	}

	options := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.PoolSize > 0 {
		options.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		options.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeoutSeconds > 0 {
		options.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	}
	if cfg.ReadTimeoutSeconds > 0 {
		options.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	}
	if cfg.WriteTimeoutSeconds > 0 {
		options.WriteTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	}

	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	return &Redis{Client: client, config: cfg}, nil
}

// Close 关闭Redis连接
func (r *Redis) Close() error {
	return r.Client.Close()
}

// CheckAndRecordFileMD5 把文件MD5写入集合，返回该MD5是否是首次出现。
// 集合整体带过期时间，用于重复上传短路。
func (r *Redis) CheckAndRecordFileMD5(ctx context.Context, md5 string) (bool, error) {
	added, err := r.Client.SAdd(ctx, constants.RawFileMD5SetKey, md5).Result()
	if err != nil {
		return false, fmt.Errorf("记录文件MD5失败: %w", err)
	}
	if expire := r.config.MD5ExpireDuration(); expire > 0 {
		if err := r.Client.Expire(ctx, constants.RawFileMD5SetKey, expire).Err(); err != nil {
			return false, fmt.Errorf("设置MD5集合过期时间失败: %w", err)
		}
	}
	return added > 0, nil
}

// CacheJDAnalysis 缓存岗位描述的分析结果
func (r *Redis) CacheJDAnalysis(ctx context.Context, jd *types.JobDescription) error {
	data, err := json.Marshal(jd)
	if err != nil {
		return fmt.Errorf("序列化岗位分析结果失败: %w", err)
	}
	key := constants.JDAnalysisCachePrefix + jd.ID
	if err := r.Client.Set(ctx, key, data, constants.JDAnalysisCacheTTL).Err(); err != nil {
		return fmt.Errorf("写入岗位分析缓存失败: %w", err)
	}
	return nil
}

// GetJDAnalysis 读取岗位分析缓存，缓存未命中返回 ErrNotFound
func (r *Redis) GetJDAnalysis(ctx context.Context, jobID string) (*types.JobDescription, error) {
	key := constants.JDAnalysisCachePrefix + jobID
	data, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("读取岗位分析缓存失败: %w", err)
	}

	var jd types.JobDescription
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("反序列化岗位分析缓存失败: %w", err)
	}
	return &jd, nil
}

// CacheMatchResult 缓存匹配结果，同一键重复写入时后写胜出
func (r *Redis) CacheMatchResult(ctx context.Context, result *types.MatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("序列化匹配结果失败: %w", err)
	}
	key := matchResultKey(result.CandidateID, result.JobID)
	if err := r.Client.Set(ctx, key, data, constants.MatchResultTTL).Err(); err != nil {
		return fmt.Errorf("写入匹配结果缓存失败: %w", err)
	}
	return nil
}

// GetMatchResult 读取匹配结果缓存，缓存未命中返回 ErrNotFound
func (r *Redis) GetMatchResult(ctx context.Context, candidateID, jobID string) (*types.MatchResult, error) {
	data, err := r.Client.Get(ctx, matchResultKey(candidateID, jobID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("读取匹配结果缓存失败: %w", err)
	}

	var result types.MatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("反序列化匹配结果缓存失败: %w", err)
	}
	return &result, nil
}

func matchResultKey(candidateID, jobID string) string {
	return constants.MatchResultKeyPrefix + candidateID + ":" + jobID
}
