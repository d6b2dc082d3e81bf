package matcher

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"recruit-agent-go/internal/logger"
	"recruit-agent-go/internal/parser"
)

// skillSynonyms 技能同义词表。按序逐对尝试：归一形整体或分词命中
// old 时映射为 new。表是双向登记但覆盖面不对称，未命中的词条
// 原样返回小写去标点形式，这是既定行为，不要"修正"。
var skillSynonyms = []struct{ old, new string }{
	{"javascript", "js"},
	{"js", "javascript"},
	{"react", "reactjs"},
	{"reactjs", "react"},
	{"node", "nodejs"},
	{"nodejs", "node"},
	{"py", "python"},
	{"ml", "machine learning"},
	{"ai", "artificial intelligence"},
	{"ui", "user interface"},
	{"ux", "user experience"},
}

var punctStripPattern = regexp.MustCompile(`[^\w\s]`)

// NormalizeSkill 技能词归一化：小写、去标点、同义词映射
func NormalizeSkill(skill string) string {
	normalized := punctStripPattern.ReplaceAllString(strings.ToLower(skill), "")
	normalized = strings.TrimSpace(normalized)

	words := strings.Fields(normalized)
	for _, pair := range skillSynonyms {
		if pair.old == normalized {
			return pair.new
		}
		for _, w := range words {
			if pair.old == w {
				return pair.new
			}
		}
	}
	return normalized
}

// SimilarityEngine 短文本相似度引擎，三档依次退化：
// 归一化精确相等 -> 向量余弦(embedder可用时) -> 字符序列比对。
// 分层的原因：C++、AWS一类短技能词往往没有可靠的分布式向量，
// 不能默默把它们算成零分。
type SimilarityEngine struct {
	embedder parser.TextEmbedder // 可为nil
	log      zerolog.Logger
}

// NewSimilarityEngine 创建相似度引擎，embedder传nil时只用一三两档
func NewSimilarityEngine(embedder parser.TextEmbedder) *SimilarityEngine {
	return &SimilarityEngine{
		embedder: embedder,
		log:      logger.Component("similarity"),
	}
}

// Similarity 返回[0,1]的相似度，对称且自反(非空串对自身恒为1)
func (e *SimilarityEngine) Similarity(ctx context.Context, a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}

	// 第一档：归一化后精确相等
	if NormalizeSkill(a) == NormalizeSkill(b) {
		return 1.0
	}

	// 第二档：向量余弦
	if e.embedder != nil {
		if score, ok := e.vectorSimilarity(ctx, a, b); ok {
			return score
		}
	}

	// 第三档：字符序列比对
	return SequenceRatio(strings.ToLower(a), strings.ToLower(b))
}

// vectorSimilarity 尝试用向量余弦计算，任何失败都报告不可用
// 而不是返回错误，让调用方落到下一档。
func (e *SimilarityEngine) vectorSimilarity(ctx context.Context, a, b string) (float64, bool) {
	vectors, err := e.embedder.EmbedStrings(ctx, []string{strings.ToLower(a), strings.ToLower(b)})
	if err != nil {
		e.log.Debug().Err(err).Msg("向量化失败，退化到字符序列比对")
		return 0, false
	}
	if len(vectors) != 2 || len(vectors[0]) == 0 || len(vectors[1]) == 0 {
		return 0, false
	}

	score := cosineSimilarity(vectors[0], vectors[1])
	if math.IsNaN(score) {
		return 0, false
	}
	// 余弦值域[-1,1]，粘到[0,1]
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, true
}

// cosineSimilarity 向量余弦
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return math.NaN()
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
