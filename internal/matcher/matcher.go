// Package matcher 实现候选人与岗位的逐维度比对打分：
// 技能、经验(年限+领域词)、学历(等级+专业方向)三个维度各产出
// 一个 {required, found, percentage}，再按固定权重合成总分。
package matcher

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"recruit-agent-go/internal/constants"
	"recruit-agent-go/internal/logger"
	"recruit-agent-go/internal/types"
)

// Matcher 对一份简历和一个岗位描述执行完整匹配。
// 无内部可变状态，可被多个请求并发使用。
type Matcher struct {
	sim *SimilarityEngine
	now func() time.Time
	log zerolog.Logger
}

// MatcherOption 配置 Matcher 的函数选项。
type MatcherOption func(*Matcher)

// WithClock 注入时钟，主要供测试固定"当前年份"。
func WithClock(now func() time.Time) MatcherOption {
	return func(m *Matcher) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMatcher 创建匹配器。sim 为 nil 时使用无向量后端的相似度引擎。
func NewMatcher(sim *SimilarityEngine, opts ...MatcherOption) *Matcher {
	if sim == nil {
		sim = NewSimilarityEngine(nil)
	}
	m := &Matcher{
		sim: sim,
		now: time.Now,
		log: logger.Component("matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match 计算一对 (候选人, 岗位) 的匹配结果。
// 任何一侧的字段为空都不会报错：某维度没有要求时该维度直接 100%。
func (m *Matcher) Match(ctx context.Context, resume *types.Resume, jd *types.JobDescription) *types.MatchResult {
	result := types.NewMatchResult(resume.ID, jd.ID)

	result.Skills = m.matchSkills(ctx, resume.Skills, jd.Skills)
	result.Experience = m.matchExperience(ctx, resume.Experience, jd.Experience)
	result.Education = m.matchEducation(ctx, resume.Education, jd.Qualifications)
	result.CalculateOverallScore()

	m.log.Debug().
		Str("candidate_id", resume.ID).
		Str("job_id", jd.ID).
		Int("skills_pct", result.Skills.Percentage).
		Int("experience_pct", result.Experience.Percentage).
		Int("education_pct", result.Education.Percentage).
		Int("overall", result.OverallScore).
		Msg("匹配完成")

	return result
}

// matchSkills 技能维度：先做归一化后的精确比对，命中记满分；
// 否则取与所有候选技能的最大相似度，>0.8 记满分，(0.6, 0.8] 记半分。
func (m *Matcher) matchSkills(ctx context.Context, candidateSkills, requiredSkills []string) types.MatchField {
	found := 0.0

	normalized := make([]string, len(candidateSkills))
	for i, s := range candidateSkills {
		normalized[i] = NormalizeSkill(s)
	}

	for _, required := range requiredSkills {
		reqNorm := NormalizeSkill(required)

		exact := false
		for _, candNorm := range normalized {
			if reqNorm == candNorm {
				found += 1.0
				exact = true
				break
			}
		}
		if exact {
			continue
		}

		best := 0.0
		for _, candidate := range candidateSkills {
			if sim := m.sim.Similarity(ctx, required, candidate); sim > best {
				best = sim
			}
		}
		switch {
		case best > constants.SkillFullMatchThreshold:
			found += 1.0
		case best > constants.SkillPartialMatchThreshold:
			found += 0.5
		}
	}

	return types.NewMatchField(len(requiredSkills), found)
}

// matchExperience 经验维度：年限检查与逐条要求短语检查两路贡献相加。
// 年限满足要求 +1.0，达到要求的 70% +0.5；短于六个词的要求短语按
// 领域词覆盖率(≥70% 命中)判定，较长短语改用相似度引擎，相似度
// 超过 0.6 时按 similarity/0.6 计入。累计值封顶为要求条数。
func (m *Matcher) matchExperience(ctx context.Context, candidateExperience, requirements []string) types.MatchField {
	expText := strings.Join(candidateExperience, "\n")
	expLower := strings.ToLower(expText)
	found := 0.0

	requiredYears := ExtractYearsRequirement(requirements)
	if requiredYears > 0 {
		candidateYears := ExtractYearsCandidate(expText, m.now().Year())
		switch {
		case candidateYears >= requiredYears:
			found += 1.0
		case float64(candidateYears) >= constants.YearsPartialRatio*float64(requiredYears):
			found += 0.5
		}
	}

	for _, phrase := range requirements {
		if len(strings.Fields(phrase)) < 6 {
			terms := ExtractDomainTerms(phrase)
			if len(terms) == 0 {
				continue
			}
			hits := 0
			for _, term := range terms {
				if strings.Contains(expLower, strings.ToLower(term)) {
					hits++
				}
			}
			if float64(hits)/float64(len(terms)) >= constants.DomainTermHitRatio {
				found += 1.0
			}
			continue
		}

		if sim := m.sim.Similarity(ctx, phrase, expText); sim > constants.ExperienceSimilarityThreshold {
			found += sim / constants.ExperienceSimilarityThreshold
		}
	}

	if found > float64(len(requirements)) {
		found = float64(len(requirements))
	}

	return types.NewMatchField(len(requirements), found)
}

// matchEducation 学历维度：学历等级达标 +1.0；专业方向按逐项重合度
// 计入，精确命中记 1，相似度超过 0.7 时记 best/0.7，归一后封顶为 1。
func (m *Matcher) matchEducation(ctx context.Context, candidateEducation []types.Education, requirements []string) types.MatchField {
	found := 0.0

	candidatePhrases := make([]string, 0, len(candidateEducation))
	for _, edu := range candidateEducation {
		candidatePhrases = append(candidatePhrases, edu.Degree)
	}

	requiredDegree := HighestDegree(requirements)
	if requiredDegree > DegreeNone && HighestDegree(candidatePhrases) >= requiredDegree {
		found += 1.0
	}

	requiredFields := ExtractFieldsOfStudy(requirements)
	if len(requiredFields) > 0 {
		candidateFields := ExtractFieldsOfStudy(candidatePhrases)
		fieldSum := 0.0
		for _, required := range requiredFields {
			best := 0.0
			for _, candidate := range candidateFields {
				if required == candidate {
					best = constants.FieldSimilarityThreshold
					break
				}
				if sim := m.sim.Similarity(ctx, required, candidate); sim > constants.FieldSimilarityThreshold && sim > best {
					best = sim
				}
			}
			if best > 0 {
				fieldSum += best / constants.FieldSimilarityThreshold
			}
		}
		fieldScore := fieldSum / float64(len(requiredFields))
		if fieldScore > 1 {
			fieldScore = 1
		}
		found += fieldScore
	}

	if found > float64(len(requirements)) {
		found = float64(len(requirements))
	}

	return types.NewMatchField(len(requirements), found)
}
