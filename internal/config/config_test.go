package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadConfig 验证YAML配置文件的完整加载
func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  host: 127.0.0.1
  port: 9090
mysql:
  host: db.internal
  port: 3306
  username: recruit
  password: secret
  database: recruit_agent
redis:
  address: cache.internal:6379
  db: 2
  file_md5_expire_days: 7
minio:
  endpoint: oss.internal:9000
  accessKeyID: ak
  secretAccessKey: sk
tika:
  server_url: http://tika.internal:9998
embedding:
  api_key: test-key
  model: text-embedding-v3
lexicon_path: /etc/recruit/lexicon.yaml
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address())
	assert.Equal(t, "db.internal", cfg.MySQL.Host)
	assert.Equal(t, "recruit_agent", cfg.MySQL.Database)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Address)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 7*24*time.Hour, cfg.Redis.MD5ExpireDuration())
	assert.Equal(t, "oss.internal:9000", cfg.MinIO.Endpoint)
	assert.Equal(t, "http://tika.internal:9998", cfg.Tika.ServerURL)
	assert.Equal(t, "test-key", cfg.Embedding.APIKey)
	assert.Equal(t, "/etc/recruit/lexicon.yaml", cfg.LexiconPath)
}

// TestLoadConfigErrors 文件缺失或格式损坏时返回错误
func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeConfigFile(t, "server: [not a mapping")
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

// TestEnvOverrides 环境变量覆盖文件中的敏感字段
func TestEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
mysql:
  password: from-file
redis:
  password: from-file
minio:
  secretAccessKey: from-file
embedding:
  api_key: from-file
`)

	t.Setenv("RECRUIT_MYSQL_PASSWORD", "env-mysql")
	t.Setenv("RECRUIT_REDIS_PASSWORD", "env-redis")
	t.Setenv("RECRUIT_MINIO_SECRET_KEY", "env-minio")
	t.Setenv("RECRUIT_EMBEDDING_API_KEY", "env-embedding")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-mysql", cfg.MySQL.Password)
	assert.Equal(t, "env-redis", cfg.Redis.Password)
	assert.Equal(t, "env-minio", cfg.MinIO.SecretAccessKey)
	assert.Equal(t, "env-embedding", cfg.Embedding.APIKey)
}

// TestServerAddressDefaults 监听地址的零值回退
func TestServerAddressDefaults(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", ServerConfig{}.Address())
	assert.Equal(t, "0.0.0.0:3000", ServerConfig{Port: 3000}.Address())
	assert.Equal(t, "localhost:8080", ServerConfig{Host: "localhost"}.Address())
}

// TestMySQLDSN DSN 拼装与字符集默认值
func TestMySQLDSN(t *testing.T) {
	cfg := MySQLConfig{
		Host: "localhost", Port: 3306,
		Username: "root", Password: "pw", Database: "recruit",
	}
	assert.Equal(t,
		"root:pw@tcp(localhost:3306)/recruit?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())

	cfg.Charset = "latin1"
	assert.Contains(t, cfg.DSN(), "charset=latin1")
}

// TestMD5ExpireDurationDefault 未配置过期天数时默认30天
func TestMD5ExpireDurationDefault(t *testing.T) {
	assert.Equal(t, 30*24*time.Hour, RedisConfig{}.MD5ExpireDuration())
	assert.Equal(t, 30*24*time.Hour, RedisConfig{FileMD5ExpireDays: -1}.MD5ExpireDuration())
}
