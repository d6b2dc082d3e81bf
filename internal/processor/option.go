package processor

import (
	"time"

	"recruit-agent-go/internal/lexicon"
	"recruit-agent-go/internal/parser"
	"recruit-agent-go/internal/storage"
)

// ServiceOption 服务选项函数类型
type ServiceOption func(*recruitServiceImpl)

// WithTextExtractor 替换文本提取器(默认按配置构建Tika提取器)
func WithTextExtractor(extractor parser.TextExtractor) ServiceOption {
	return func(s *recruitServiceImpl) {
		if extractor != nil {
			s.extractor = extractor
		}
	}
}

// WithEmbedder 注入向量化后端，供相似度引擎的第二层使用
func WithEmbedder(embedder parser.TextEmbedder) ServiceOption {
	return func(s *recruitServiceImpl) {
		s.embedder = embedder
	}
}

// WithLexicon 替换技能词表(默认使用内置词表)
func WithLexicon(lex *lexicon.Lexicon) ServiceOption {
	return func(s *recruitServiceImpl) {
		if lex != nil {
			s.lexicon = lex
		}
	}
}

// WithRelationalStore 替换关系存储实现，测试用
func WithRelationalStore(store RelationalStore) ServiceOption {
	return func(s *recruitServiceImpl) {
		s.store = store
	}
}

// WithCacheStore 替换缓存实现，测试用
func WithCacheStore(cache CacheStore) ServiceOption {
	return func(s *recruitServiceImpl) {
		s.cache = cache
	}
}

// WithObjectStorage 替换对象存储实现，测试用
func WithObjectStorage(objects storage.ObjectStorage) ServiceOption {
	return func(s *recruitServiceImpl) {
		s.objects = objects
	}
}

// WithClock 注入时钟，测试时固定当前时间
func WithClock(now func() time.Time) ServiceOption {
	return func(s *recruitServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}
