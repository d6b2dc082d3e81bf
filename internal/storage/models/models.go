package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job 岗位信息表
type Job struct {
	JobID                string         `gorm:"type:char(36);primaryKey"`
	JobTitle             string         `gorm:"type:varchar(255);not null"`
	Department           string         `gorm:"type:varchar(255)"`
	JobDescriptionText   string         `gorm:"type:text;not null"`
	SkillsJSON           datatypes.JSON `gorm:"type:json"`
	ExperienceJSON       datatypes.JSON `gorm:"type:json"`
	QualificationsJSON   datatypes.JSON `gorm:"type:json"`
	ResponsibilitiesJSON datatypes.JSON `gorm:"type:json"`
	Status               string         `gorm:"type:varchar(50);default:'ACTIVE';index:idx_jobs_status"`
	CreatedAt            time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt            time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (Job) TableName() string {
	return "jobs"
}

// Candidate 候选人表，一行对应一次简历提交
type Candidate struct {
	CandidateID        string         `gorm:"type:char(36);primaryKey"`
	Name               string         `gorm:"type:varchar(255)"`
	Email              string         `gorm:"type:varchar(255);index:idx_candidates_email"`
	OriginalFilename   string         `gorm:"type:varchar(255)"`
	OriginalFileOSS    string         `gorm:"type:varchar(1024)"`
	ParsedTextOSS      string         `gorm:"type:varchar(1024)"`
	RawTextMD5         string         `gorm:"type:char(32);index:idx_candidates_raw_text_md5"`
	SkillsJSON         datatypes.JSON `gorm:"type:json"`
	ExperienceJSON     datatypes.JSON `gorm:"type:json"`
	EducationJSON      datatypes.JSON `gorm:"type:json"`
	CertificationsJSON datatypes.JSON `gorm:"type:json"`
	CreatedAt          time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt          time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// MatchRecord 匹配结果表，(candidate_id, job_id) 唯一，重复匹配整行覆盖
type MatchRecord struct {
	CandidateID    string         `gorm:"type:char(36);primaryKey"`
	JobID          string         `gorm:"type:char(36);primaryKey;index:idx_matches_job_id"`
	SkillsJSON     datatypes.JSON `gorm:"type:json"`
	ExperienceJSON datatypes.JSON `gorm:"type:json"`
	EducationJSON  datatypes.JSON `gorm:"type:json"`
	OverallScore   int            `gorm:"not null;index:idx_matches_overall_score"`
	Shortlisted    bool           `gorm:"not null;default:false;index:idx_matches_shortlisted"`
	MatchedAt      time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt      time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (MatchRecord) TableName() string {
	return "match_records"
}
