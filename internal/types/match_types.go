package types

import (
	"math"

	"recruit-agent-go/internal/constants"
)

// MatchField 单一维度(技能/经验/学历)的比对结果。
// Found 允许小数：0.5 表示一次部分匹配。
type MatchField struct {
	Required   int     `json:"required"`
	Found      float64 `json:"found"`
	Percentage int     `json:"percentage"`
}

// NewMatchField 构造并立即计算百分比
func NewMatchField(required int, found float64) MatchField {
	f := MatchField{Required: required, Found: found}
	f.CalculatePercentage()
	return f
}

// CalculatePercentage 按约定计算百分比：无需求视为满分，
// 其余情况四舍五入并封顶100（Found 超出 Required 时不加分）。
func (f *MatchField) CalculatePercentage() {
	if f.Required == 0 {
		f.Percentage = 100
		return
	}
	pct := int(math.Round(f.Found / float64(f.Required) * 100))
	if pct > 100 {
		pct = 100
	}
	f.Percentage = pct
}

// MatchWeights 各维度在总分中的固定权重，三项之和为1.0
type MatchWeights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// DefaultMatchWeights 技能50% / 经验30% / 学历20%
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		Skills:     constants.SkillsWeight,
		Experience: constants.ExperienceWeight,
		Education:  constants.EducationWeight,
	}
}

// MatchResult 一次(候选人, 岗位)匹配的完整结果。
// CalculateOverallScore 调用后即视为不可变，仅允许被同键的新一轮匹配整体取代。
type MatchResult struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`

	Skills     MatchField `json:"skills"`
	Experience MatchField `json:"experience"`
	Education  MatchField `json:"education"`

	Weights      MatchWeights `json:"weights"`
	OverallScore int          `json:"overall_score"`
}

// NewMatchResult 创建空的匹配结果
func NewMatchResult(candidateID, jobID string) *MatchResult {
	return &MatchResult{
		CandidateID: candidateID,
		JobID:       jobID,
		Weights:     DefaultMatchWeights(),
	}
}

// CalculateOverallScore 三个维度全部填充后计算加权总分
func (r *MatchResult) CalculateOverallScore() int {
	weighted := float64(r.Skills.Percentage)*r.Weights.Skills +
		float64(r.Experience.Percentage)*r.Weights.Experience +
		float64(r.Education.Percentage)*r.Weights.Education
	r.OverallScore = int(math.Round(weighted))
	return r.OverallScore
}
