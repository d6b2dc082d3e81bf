package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"recruit-agent-go/internal/logger"
)

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Address 返回 host:port 形式的监听地址
func (s ServerConfig) Address() string {
	host := s.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := s.Port
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf("%s:%d", host, port)
}

// MySQLConfig MySQL 连接配置
type MySQLConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	Database        string `yaml:"database"`
	Charset         string `yaml:"charset"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime_minutes"` // 连接最大生命周期(分钟)
	LogLevel        string `yaml:"log_level"`
}

// DSN 构造 gorm mysql 驱动使用的连接串
func (m MySQLConfig) DSN() string {
	charset := m.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		m.Username, m.Password, m.Host, m.Port, m.Database, charset)
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// 连接池设置
	PoolSize     int `yaml:"pool_size"`
	MinIdleConns int `yaml:"min_idle_conns"`
	// 超时设置(秒)
	DialTimeoutSeconds  int `yaml:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
	// 上传文件MD5去重记录的过期时间(天)
	FileMD5ExpireDays int `yaml:"file_md5_expire_days"`
}

// MD5ExpireDuration 返回文件MD5去重记录的过期时长，默认30天
func (r RedisConfig) MD5ExpireDuration() time.Duration {
	days := r.FileMD5ExpireDays
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

// MinIOConfig MinIO 对象存储配置
type MinIOConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	UseSSL          bool   `yaml:"useSSL"`
	Location        string `yaml:"location"`
	// 原始文件与解析文本分桶存放
	OriginalsBucket  string `yaml:"originalsBucket"`
	ParsedTextBucket string `yaml:"parsedTextBucket"`
}

// TikaConfig Tika 文本提取服务配置
type TikaConfig struct {
	ServerURL string `yaml:"server_url"`
	Timeout   int    `yaml:"timeout_seconds"`
}

// EmbeddingConfig 向量服务配置(OpenAI兼容接口)。未配置 api_key 时相似度引擎
// 自动退化到字符序列比对档位。
type EmbeddingConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// Config 应用程序配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	MySQL     MySQLConfig     `yaml:"mysql"`
	Redis     RedisConfig     `yaml:"redis"`
	MinIO     MinIOConfig     `yaml:"minio"`
	Tika      TikaConfig      `yaml:"tika"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Logger    logger.Config   `yaml:"logger"`

	// 技能词表文件路径，留空时使用内置词表
	LexiconPath string `yaml:"lexicon_path"`
}

// LoadConfig 从YAML文件加载配置，敏感字段支持环境变量覆盖
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// applyEnvOverrides 环境变量优先于文件中的敏感配置
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RECRUIT_MYSQL_PASSWORD"); v != "" {
		cfg.MySQL.Password = v
	}
	if v := os.Getenv("RECRUIT_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("RECRUIT_MINIO_SECRET_KEY"); v != "" {
		cfg.MinIO.SecretAccessKey = v
	}
	if v := os.Getenv("RECRUIT_EMBEDDING_API_KEY"); v != "" {
		cfg.Embedding.APIKey = v
	}
}
