package constants

// 匹配评分的固定权重，三项之和恒为1.0
const (
	SkillsWeight     = 0.5
	ExperienceWeight = 0.3
	EducationWeight  = 0.2
)

// 候选人入围的总分门槛(百分制)
const ShortlistThreshold = 70

// 技能相似度判定阈值：高于 SkillFullMatch 记满分，
// 落在 (SkillPartialMatch, SkillFullMatch] 记0.5分
const (
	SkillFullMatchThreshold    = 0.8
	SkillPartialMatchThreshold = 0.6
)

// 工作年限不足时的部分记分比例：达到要求年限的70%记0.5分
const YearsPartialRatio = 0.7

// 领域词命中比例门槛：短需求短语中至少70%领域词出现在候选人经历文本中
const DomainTermHitRatio = 0.7

// 长需求短语走相似度比对的门槛与记分基数
const ExperienceSimilarityThreshold = 0.6

// 专业领域相似度判定门槛
const FieldSimilarityThreshold = 0.7

// 解析出的年份区间的合法边界下限
const MinValidYear = 1950
