package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"recruit-agent-go/internal/config"
	"recruit-agent-go/internal/storage/models"
	"recruit-agent-go/internal/types"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// MySQL 提供关系数据库功能
type MySQL struct {
	db  *gorm.DB
	cfg *config.MySQLConfig
}

// NewMySQL 创建MySQL客户端并自动迁移表结构
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MySQL配置不能为空")
	}

	var logLevel gormlogger.LogLevel
	switch cfg.LogLevel {
	case "silent":
		logLevel = gormlogger.Silent
	case "error":
		logLevel = gormlogger.Error
	case "warn":
		logLevel = gormlogger.Warn
	default:
		logLevel = gormlogger.Info
	}

	gormConfig := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(logLevel),
		PrepareStmt:                              true,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	m := &MySQL{db: db, cfg: cfg}
	if err := m.autoMigrateSchema(); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("自动迁移数据库结构失败: %w", err)
	}

	log.Println("成功连接到MySQL并自动迁移数据库结构")
	return m, nil
}

// autoMigrateSchema 迁移所有表结构，迁移期间关闭SQL日志
func (m *MySQL) autoMigrateSchema() error {
	silentDB := m.db.Session(&gorm.Session{
		Logger: m.db.Logger.LogMode(gormlogger.Silent),
	})
	return silentDB.AutoMigrate(
		&models.Job{},
		&models.Candidate{},
		&models.MatchRecord{},
	)
}

// DB 返回GORM数据库连接实例
func (m *MySQL) DB() *gorm.DB {
	return m.db
}

// Close 关闭数据库连接
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveJob 持久化岗位及其分析结果
func (m *MySQL) SaveJob(ctx context.Context, jd *types.JobDescription) error {
	record, err := jobToRecord(jd)
	if err != nil {
		return err
	}
	return m.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
}

// GetJob 按ID取岗位
func (m *MySQL) GetJob(ctx context.Context, jobID string) (*types.JobDescription, error) {
	var record models.Job
	err := m.db.WithContext(ctx).First(&record, "job_id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询岗位失败: %w", err)
	}
	return recordToJob(&record)
}

// ListJobs 列出全部岗位，按创建时间倒序
func (m *MySQL) ListJobs(ctx context.Context) ([]*types.JobDescription, error) {
	var records []models.Job
	if err := m.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询岗位列表失败: %w", err)
	}
	jobs := make([]*types.JobDescription, 0, len(records))
	for i := range records {
		jd, err := recordToJob(&records[i])
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, jd)
	}
	return jobs, nil
}

// SaveCandidate 持久化候选人及其简历分析结果
func (m *MySQL) SaveCandidate(ctx context.Context, resume *types.Resume, meta *CandidateMeta) error {
	record, err := candidateToRecord(resume, meta)
	if err != nil {
		return err
	}
	return m.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
}

// GetCandidate 按ID取候选人
func (m *MySQL) GetCandidate(ctx context.Context, candidateID string) (*types.Resume, error) {
	var record models.Candidate
	err := m.db.WithContext(ctx).First(&record, "candidate_id = ?", candidateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询候选人失败: %w", err)
	}
	return recordToCandidate(&record)
}

// GetCandidateMeta 按ID取候选人记录里的简历文件附加信息
func (m *MySQL) GetCandidateMeta(ctx context.Context, candidateID string) (*CandidateMeta, error) {
	var record models.Candidate
	err := m.db.WithContext(ctx).First(&record, "candidate_id = ?", candidateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询候选人文件信息失败: %w", err)
	}
	return &CandidateMeta{
		OriginalFilename: record.OriginalFilename,
		OriginalFileOSS:  record.OriginalFileOSS,
		ParsedTextOSS:    record.ParsedTextOSS,
		RawTextMD5:       record.RawTextMD5,
	}, nil
}

// SaveMatch 持久化匹配结果，同一 (candidate, job) 重复匹配时整行覆盖
func (m *MySQL) SaveMatch(ctx context.Context, result *types.MatchResult, shortlisted bool) error {
	record, err := matchToRecord(result, shortlisted)
	if err != nil {
		return err
	}
	return m.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
}

// GetMatch 取某对 (candidate, job) 的匹配结果
func (m *MySQL) GetMatch(ctx context.Context, candidateID, jobID string) (*types.MatchResult, error) {
	var record models.MatchRecord
	err := m.db.WithContext(ctx).
		First(&record, "candidate_id = ? AND job_id = ?", candidateID, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询匹配结果失败: %w", err)
	}
	return recordToMatch(&record)
}

// ListMatchesByJob 取某岗位的全部匹配结果，按总分倒序。
// onlyShortlisted 为 true 时只返回入围候选人。
func (m *MySQL) ListMatchesByJob(ctx context.Context, jobID string, onlyShortlisted bool) ([]*types.MatchResult, error) {
	query := m.db.WithContext(ctx).Where("job_id = ?", jobID)
	if onlyShortlisted {
		query = query.Where("shortlisted = ?", true)
	}

	var records []models.MatchRecord
	if err := query.Order("overall_score DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询岗位匹配列表失败: %w", err)
	}

	results := make([]*types.MatchResult, 0, len(records))
	for i := range records {
		result, err := recordToMatch(&records[i])
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Statistics 全库统计口径
type Statistics struct {
	TotalJobs        int64   `json:"total_jobs"`
	TotalCandidates  int64   `json:"total_candidates"`
	TotalMatches     int64   `json:"total_matches"`
	ShortlistedCount int64   `json:"shortlisted_count"`
	AverageScore     float64 `json:"average_score"`
}

// GetStatistics 汇总岗位/候选人/匹配的总量与均分
func (m *MySQL) GetStatistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{}
	db := m.db.WithContext(ctx)

	if err := db.Model(&models.Job{}).Count(&stats.TotalJobs).Error; err != nil {
		return nil, fmt.Errorf("统计岗位数失败: %w", err)
	}
	if err := db.Model(&models.Candidate{}).Count(&stats.TotalCandidates).Error; err != nil {
		return nil, fmt.Errorf("统计候选人数失败: %w", err)
	}
	if err := db.Model(&models.MatchRecord{}).Count(&stats.TotalMatches).Error; err != nil {
		return nil, fmt.Errorf("统计匹配数失败: %w", err)
	}
	if err := db.Model(&models.MatchRecord{}).
		Where("shortlisted = ?", true).
		Count(&stats.ShortlistedCount).Error; err != nil {
		return nil, fmt.Errorf("统计入围数失败: %w", err)
	}

	if stats.TotalMatches > 0 {
		var avg *float64
		if err := db.Model(&models.MatchRecord{}).
			Select("AVG(overall_score)").Scan(&avg).Error; err != nil {
			return nil, fmt.Errorf("计算平均分失败: %w", err)
		}
		if avg != nil {
			stats.AverageScore = *avg
		}
	}

	return stats, nil
}

// CandidateMeta 候选人记录里与简历文件相关的附加信息
type CandidateMeta struct {
	OriginalFilename string
	OriginalFileOSS  string
	ParsedTextOSS    string
	RawTextMD5       string
}

func jobToRecord(jd *types.JobDescription) (*models.Job, error) {
	skills, err := json.Marshal(jd.Skills)
	if err != nil {
		return nil, fmt.Errorf("序列化岗位技能失败: %w", err)
	}
	experience, err := json.Marshal(jd.Experience)
	if err != nil {
		return nil, fmt.Errorf("序列化岗位经验要求失败: %w", err)
	}
	qualifications, err := json.Marshal(jd.Qualifications)
	if err != nil {
		return nil, fmt.Errorf("序列化岗位学历要求失败: %w", err)
	}
	responsibilities, err := json.Marshal(jd.Responsibilities)
	if err != nil {
		return nil, fmt.Errorf("序列化岗位职责失败: %w", err)
	}

	return &models.Job{
		JobID:                jd.ID,
		JobTitle:             jd.Title,
		Department:           jd.Department,
		JobDescriptionText:   jd.Content,
		SkillsJSON:           skills,
		ExperienceJSON:       experience,
		QualificationsJSON:   qualifications,
		ResponsibilitiesJSON: responsibilities,
		Status:               "ACTIVE",
		CreatedAt:            jd.CreatedAt,
	}, nil
}

func recordToJob(record *models.Job) (*types.JobDescription, error) {
	jd := types.NewJobDescription(record.JobTitle, record.Department, record.JobDescriptionText)
	jd.ID = record.JobID
	jd.CreatedAt = record.CreatedAt

	for _, pair := range []struct {
		data []byte
		dest *[]string
	}{
		{record.SkillsJSON, &jd.Skills},
		{record.ExperienceJSON, &jd.Experience},
		{record.QualificationsJSON, &jd.Qualifications},
		{record.ResponsibilitiesJSON, &jd.Responsibilities},
	} {
		if len(pair.data) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.data, pair.dest); err != nil {
			return nil, fmt.Errorf("反序列化岗位字段失败: %w", err)
		}
	}
	return jd, nil
}

func candidateToRecord(resume *types.Resume, meta *CandidateMeta) (*models.Candidate, error) {
	skills, err := json.Marshal(resume.Skills)
	if err != nil {
		return nil, fmt.Errorf("序列化候选人技能失败: %w", err)
	}
	experience, err := json.Marshal(resume.Experience)
	if err != nil {
		return nil, fmt.Errorf("序列化候选人经历失败: %w", err)
	}
	education, err := json.Marshal(resume.Education)
	if err != nil {
		return nil, fmt.Errorf("序列化候选人学历失败: %w", err)
	}
	certifications, err := json.Marshal(resume.Certifications)
	if err != nil {
		return nil, fmt.Errorf("序列化候选人证书失败: %w", err)
	}

	record := &models.Candidate{
		CandidateID:        resume.ID,
		Name:               resume.CandidateName,
		Email:              resume.Email,
		SkillsJSON:         skills,
		ExperienceJSON:     experience,
		EducationJSON:      education,
		CertificationsJSON: certifications,
		CreatedAt:          resume.CreatedAt,
	}
	if meta != nil {
		record.OriginalFilename = meta.OriginalFilename
		record.OriginalFileOSS = meta.OriginalFileOSS
		record.ParsedTextOSS = meta.ParsedTextOSS
		record.RawTextMD5 = meta.RawTextMD5
	}
	return record, nil
}

func recordToCandidate(record *models.Candidate) (*types.Resume, error) {
	resume := types.NewResume(record.Name, record.Email, "")
	resume.ID = record.CandidateID
	resume.CreatedAt = record.CreatedAt

	if len(record.SkillsJSON) > 0 {
		if err := json.Unmarshal(record.SkillsJSON, &resume.Skills); err != nil {
			return nil, fmt.Errorf("反序列化候选人技能失败: %w", err)
		}
	}
	if len(record.ExperienceJSON) > 0 {
		if err := json.Unmarshal(record.ExperienceJSON, &resume.Experience); err != nil {
			return nil, fmt.Errorf("反序列化候选人经历失败: %w", err)
		}
	}
	if len(record.EducationJSON) > 0 {
		if err := json.Unmarshal(record.EducationJSON, &resume.Education); err != nil {
			return nil, fmt.Errorf("反序列化候选人学历失败: %w", err)
		}
	}
	if len(record.CertificationsJSON) > 0 {
		if err := json.Unmarshal(record.CertificationsJSON, &resume.Certifications); err != nil {
			return nil, fmt.Errorf("反序列化候选人证书失败: %w", err)
		}
	}
	return resume, nil
}

func matchToRecord(result *types.MatchResult, shortlisted bool) (*models.MatchRecord, error) {
	skills, err := json.Marshal(result.Skills)
	if err != nil {
		return nil, fmt.Errorf("序列化技能维度失败: %w", err)
	}
	experience, err := json.Marshal(result.Experience)
	if err != nil {
		return nil, fmt.Errorf("序列化经验维度失败: %w", err)
	}
	education, err := json.Marshal(result.Education)
	if err != nil {
		return nil, fmt.Errorf("序列化学历维度失败: %w", err)
	}

	return &models.MatchRecord{
		CandidateID:    result.CandidateID,
		JobID:          result.JobID,
		SkillsJSON:     skills,
		ExperienceJSON: experience,
		EducationJSON:  education,
		OverallScore:   result.OverallScore,
		Shortlisted:    shortlisted,
		MatchedAt:      time.Now(),
	}, nil
}

func recordToMatch(record *models.MatchRecord) (*types.MatchResult, error) {
	result := types.NewMatchResult(record.CandidateID, record.JobID)
	result.OverallScore = record.OverallScore

	for _, pair := range []struct {
		data []byte
		dest *types.MatchField
	}{
		{record.SkillsJSON, &result.Skills},
		{record.ExperienceJSON, &result.Experience},
		{record.EducationJSON, &result.Education},
	} {
		if len(pair.data) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.data, pair.dest); err != nil {
			return nil, fmt.Errorf("反序列化匹配维度失败: %w", err)
		}
	}
	return result, nil
}
