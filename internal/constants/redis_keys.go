package constants

import "time"

// Redis 键名与缓存时长约定
const (
	// RawFileMD5SetKey 已上传原始文件MD5集合，用于重复上传短路
	RawFileMD5SetKey = "recruit:file_md5s"

	// JDAnalysisCachePrefix 岗位描述分析结果缓存，后接 jobID
	JDAnalysisCachePrefix = "recruit:jd_analysis:"
	JDAnalysisCacheTTL    = 24 * time.Hour

	// MatchResultKeyPrefix 匹配结果缓存，后接 candidateID:jobID。
	// 同一键重复匹配时整体覆盖，后写胜出。
	MatchResultKeyPrefix = "recruit:match:"
	MatchResultTTL       = 7 * 24 * time.Hour
)
