package processor

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"recruit-agent-go/internal/config"
	"recruit-agent-go/internal/constants"
	"recruit-agent-go/internal/lexicon"
	"recruit-agent-go/internal/logger"
	"recruit-agent-go/internal/matcher"
	"recruit-agent-go/internal/parser"
	"recruit-agent-go/internal/storage"
	"recruit-agent-go/internal/types"
)

// RelationalStore 服务依赖的关系存储能力，由 storage.MySQL 提供
type RelationalStore interface {
	SaveJob(ctx context.Context, jd *types.JobDescription) error
	GetJob(ctx context.Context, jobID string) (*types.JobDescription, error)
	ListJobs(ctx context.Context) ([]*types.JobDescription, error)
	SaveCandidate(ctx context.Context, resume *types.Resume, meta *storage.CandidateMeta) error
	GetCandidate(ctx context.Context, candidateID string) (*types.Resume, error)
	GetCandidateMeta(ctx context.Context, candidateID string) (*storage.CandidateMeta, error)
	SaveMatch(ctx context.Context, result *types.MatchResult, shortlisted bool) error
	GetMatch(ctx context.Context, candidateID, jobID string) (*types.MatchResult, error)
	ListMatchesByJob(ctx context.Context, jobID string, onlyShortlisted bool) ([]*types.MatchResult, error)
	GetStatistics(ctx context.Context) (*storage.Statistics, error)
}

// CacheStore 服务依赖的缓存能力，由 storage.Redis 提供
type CacheStore interface {
	CheckAndRecordFileMD5(ctx context.Context, md5 string) (bool, error)
	CacheJDAnalysis(ctx context.Context, jd *types.JobDescription) error
	GetJDAnalysis(ctx context.Context, jobID string) (*types.JobDescription, error)
	CacheMatchResult(ctx context.Context, result *types.MatchResult) error
	GetMatchResult(ctx context.Context, candidateID, jobID string) (*types.MatchResult, error)
}

// recruitServiceImpl 是RecruitService的实现。
// 采用Facade模式，内部持有所有需要的组件。
type recruitServiceImpl struct {
	cfg       *config.Config
	lexicon   *lexicon.Lexicon
	extractor parser.TextExtractor
	embedder  parser.TextEmbedder

	cvAnalyzer *parser.CVAnalyzer
	jdAnalyzer *parser.JDAnalyzer
	matcher    *matcher.Matcher

	store   RelationalStore
	cache   CacheStore
	objects storage.ObjectStorage

	now func() time.Time
	log zerolog.Logger
}

// NewRecruitService 创建招聘服务实例。store 里未初始化的组件
// (缓存、对象存储)按尽力而为处理，关系存储缺失时持久化操作报错。
func NewRecruitService(cfg *config.Config, store *storage.Storage, opts ...ServiceOption) (RecruitService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	s := &recruitServiceImpl{
		cfg: cfg,
		now: time.Now,
		log: logger.Component("recruit_service"),
	}

	// 词表：配置了外部词表文件则加载，否则用内置词表
	if cfg.LexiconPath != "" {
		lex, err := lexicon.LoadFile(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("加载技能词表失败: %w", err)
		}
		s.lexicon = lex
	} else {
		s.lexicon = lexicon.Default()
	}

	// 文本提取：配置了Tika则走Tika，否则只处理纯文本
	if cfg.Tika.ServerURL != "" {
		var tikaOpts []parser.TikaOption
		if cfg.Tika.Timeout > 0 {
			tikaOpts = append(tikaOpts, parser.WithTikaTimeout(time.Duration(cfg.Tika.Timeout)*time.Second))
		}
		s.extractor = parser.NewTikaExtractor(cfg.Tika.ServerURL, tikaOpts...)
	} else {
		s.extractor = parser.NewPlainTextExtractor()
	}

	// 向量化后端可选，缺失时相似度引擎退化到字符序列比对
	if cfg.Embedding.APIKey != "" {
		embedder, err := parser.NewAliyunEmbedder(cfg.Embedding)
		if err != nil {
			return nil, fmt.Errorf("创建向量化客户端失败: %w", err)
		}
		s.embedder = embedder
	}

	if store != nil {
		if store.MySQL != nil {
			s.store = store.MySQL
		}
		if store.Redis != nil {
			s.cache = store.Redis
		}
		if store.MinIO != nil {
			s.objects = store.MinIO
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	s.cvAnalyzer = parser.NewCVAnalyzer(s.lexicon)
	s.jdAnalyzer = parser.NewJDAnalyzer(s.lexicon)
	s.matcher = matcher.NewMatcher(
		matcher.NewSimilarityEngine(s.embedder),
		matcher.WithClock(s.now),
	)

	return s, nil
}

// ProcessJobDescription 分析岗位描述并持久化，缓存写入尽力而为
func (s *recruitServiceImpl) ProcessJobDescription(ctx context.Context, title, department, content string) (*types.JobDescription, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyDocument
	}

	jd := types.NewJobDescription(title, department, content)
	jd.ID = newID()
	jd.CreatedAt = s.now()
	s.jdAnalyzer.Analyze(jd)

	if s.store == nil {
		return nil, ErrStorageNotInit
	}
	if err := s.store.SaveJob(ctx, jd); err != nil {
		return nil, fmt.Errorf("持久化岗位失败: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheJDAnalysis(ctx, jd); err != nil {
			s.log.Warn().Err(err).Str("job_id", jd.ID).Msg("写入岗位分析缓存失败")
		}
	}

	s.log.Info().
		Str("job_id", jd.ID).
		Str("title", jd.Title).
		Int("skills", len(jd.Skills)).
		Int("experience_reqs", len(jd.Experience)).
		Int("qualifications", len(jd.Qualifications)).
		Msg("岗位描述处理完成")

	return jd, nil
}

// ProcessResume 处理上传的简历文件。jobID 非空时执行匹配并按
// 总分门槛判定入围。重复上传同一份文件内容返回 ErrDuplicateContent。
func (s *recruitServiceImpl) ProcessResume(ctx context.Context, filename string, data []byte, jobID string) (*ResumeProcessResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	if s.store == nil {
		return nil, ErrStorageNotInit
	}

	sum := md5.Sum(data)
	rawMD5 := hex.EncodeToString(sum[:])
	if s.cache != nil {
		firstSeen, err := s.cache.CheckAndRecordFileMD5(ctx, rawMD5)
		if err != nil {
			s.log.Warn().Err(err).Msg("文件MD5查重失败，跳过查重")
		} else if !firstSeen {
			return nil, ErrDuplicateContent
		}
	}

	text, err := s.extractor.ExtractText(ctx, data, filename)
	if err != nil {
		return nil, fmt.Errorf("提取简历文本失败: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	name, email := extractContactInfo(text)
	resume := types.NewResume(name, email, text)
	resume.ID = newID()
	resume.CreatedAt = s.now()
	s.cvAnalyzer.Analyze(resume)

	meta := &storage.CandidateMeta{
		OriginalFilename: filename,
		RawTextMD5:       rawMD5,
	}
	if s.objects != nil {
		ext := filepath.Ext(filename)
		if ext == "" {
			ext = ".bin"
		}
		if path, err := s.objects.UploadOriginal(ctx, resume.ID, ext, bytes.NewReader(data), int64(len(data))); err != nil {
			s.log.Warn().Err(err).Str("candidate_id", resume.ID).Msg("上传原始简历失败")
		} else {
			meta.OriginalFileOSS = path
		}
		if path, err := s.objects.UploadParsedText(ctx, resume.ID, text); err != nil {
			s.log.Warn().Err(err).Str("candidate_id", resume.ID).Msg("上传解析文本失败")
		} else {
			meta.ParsedTextOSS = path
		}
	}

	if err := s.store.SaveCandidate(ctx, resume, meta); err != nil {
		return nil, fmt.Errorf("持久化候选人失败: %w", err)
	}

	result := &ResumeProcessResult{Resume: resume}
	if jobID != "" {
		jd, err := s.loadJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		match, shortlisted, err := s.runMatch(ctx, resume, jd)
		if err != nil {
			return nil, err
		}
		result.Match = match
		result.Shortlisted = shortlisted
	}

	s.log.Info().
		Str("candidate_id", resume.ID).
		Str("filename", filename).
		Int("skills", len(resume.Skills)).
		Bool("matched", result.Match != nil).
		Msg("简历处理完成")

	return result, nil
}

// MatchCandidate 用已持久化的数据重新匹配，结果整体覆盖旧记录
func (s *recruitServiceImpl) MatchCandidate(ctx context.Context, candidateID, jobID string) (*types.MatchResult, error) {
	if s.store == nil {
		return nil, ErrStorageNotInit
	}

	resume, err := s.store.GetCandidate(ctx, candidateID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}

	jd, err := s.loadJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	match, _, err := s.runMatch(ctx, resume, jd)
	return match, err
}

// GetMatch 读取已有匹配结果：缓存命中直接返回，否则落库，
// 两边都没有时返回 ErrMatchNotFound。不触发重新匹配。
func (s *recruitServiceImpl) GetMatch(ctx context.Context, candidateID, jobID string) (*types.MatchResult, error) {
	if s.store == nil {
		return nil, ErrStorageNotInit
	}

	if s.cache != nil {
		if match, err := s.cache.GetMatchResult(ctx, candidateID, jobID); err == nil {
			return match, nil
		}
	}

	match, err := s.store.GetMatch(ctx, candidateID, jobID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return match, nil
}

// GetOriginalDocument 从对象存储下载候选人的原始简历文件
func (s *recruitServiceImpl) GetOriginalDocument(ctx context.Context, candidateID string) ([]byte, string, error) {
	meta, err := s.candidateMeta(ctx, candidateID)
	if err != nil {
		return nil, "", err
	}
	if meta.OriginalFileOSS == "" {
		return nil, "", ErrDocumentNotFound
	}

	data, err := s.objects.GetOriginal(ctx, meta.OriginalFileOSS)
	if err != nil {
		return nil, "", fmt.Errorf("下载原始简历失败: %w", err)
	}
	return data, meta.OriginalFilename, nil
}

// GetParsedText 从对象存储下载候选人简历的解析文本
func (s *recruitServiceImpl) GetParsedText(ctx context.Context, candidateID string) (string, error) {
	meta, err := s.candidateMeta(ctx, candidateID)
	if err != nil {
		return "", err
	}
	if meta.ParsedTextOSS == "" {
		return "", ErrDocumentNotFound
	}

	text, err := s.objects.GetParsedText(ctx, meta.ParsedTextOSS)
	if err != nil {
		return "", fmt.Errorf("下载解析文本失败: %w", err)
	}
	return text, nil
}

// candidateMeta 取候选人的文件附加信息，对象存储未配置时直接报错
func (s *recruitServiceImpl) candidateMeta(ctx context.Context, candidateID string) (*storage.CandidateMeta, error) {
	if s.store == nil || s.objects == nil {
		return nil, ErrStorageNotInit
	}

	meta, err := s.store.GetCandidateMeta(ctx, candidateID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return meta, nil
}

func (s *recruitServiceImpl) GetJob(ctx context.Context, jobID string) (*types.JobDescription, error) {
	if s.store == nil {
		return nil, ErrStorageNotInit
	}
	jd, err := s.store.GetJob(ctx, jobID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	return jd, err
}

func (s *recruitServiceImpl) ListJobs(ctx context.Context) ([]*types.JobDescription, error) {
	if s.store == nil {
		return nil, ErrStorageNotInit
	}
	return s.store.ListJobs(ctx)
}

func (s *recruitServiceImpl) GetCandidate(ctx context.Context, candidateID string) (*types.Resume, error) {
	if s.store == nil {
		return nil, ErrStorageNotInit
	}
	resume, err := s.store.GetCandidate(ctx, candidateID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrCandidateNotFound
	}
	return resume, err
}

// GetJobWithCandidates 取岗位及其全部匹配候选人，按总分倒序
func (s *recruitServiceImpl) GetJobWithCandidates(ctx context.Context, jobID string) (*JobWithCandidates, error) {
	jd, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	matches, err := s.store.ListMatchesByJob(ctx, jobID, false)
	if err != nil {
		return nil, fmt.Errorf("查询岗位匹配列表失败: %w", err)
	}

	return &JobWithCandidates{
		Job:        jd,
		Candidates: s.buildCandidateMatches(ctx, matches),
	}, nil
}

// GetShortlist 取岗位的入围候选人列表，按总分倒序
func (s *recruitServiceImpl) GetShortlist(ctx context.Context, jobID string) ([]*CandidateMatch, error) {
	if s.store == nil {
		return nil, ErrStorageNotInit
	}
	matches, err := s.store.ListMatchesByJob(ctx, jobID, true)
	if err != nil {
		return nil, fmt.Errorf("查询入围列表失败: %w", err)
	}
	return s.buildCandidateMatches(ctx, matches), nil
}

func (s *recruitServiceImpl) GetStatistics(ctx context.Context) (*storage.Statistics, error) {
	if s.store == nil {
		return nil, ErrStorageNotInit
	}
	return s.store.GetStatistics(ctx)
}

// loadJob 先查缓存再落库
func (s *recruitServiceImpl) loadJob(ctx context.Context, jobID string) (*types.JobDescription, error) {
	if s.cache != nil {
		if jd, err := s.cache.GetJDAnalysis(ctx, jobID); err == nil {
			return jd, nil
		}
	}

	jd, err := s.store.GetJob(ctx, jobID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return jd, nil
}

// runMatch 执行匹配、入围判定与持久化，缓存写入尽力而为
func (s *recruitServiceImpl) runMatch(ctx context.Context, resume *types.Resume, jd *types.JobDescription) (*types.MatchResult, bool, error) {
	match := s.matcher.Match(ctx, resume, jd)
	shortlisted := match.OverallScore >= constants.ShortlistThreshold

	if err := s.store.SaveMatch(ctx, match, shortlisted); err != nil {
		return nil, false, fmt.Errorf("持久化匹配结果失败: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.CacheMatchResult(ctx, match); err != nil {
			s.log.Warn().Err(err).
				Str("candidate_id", match.CandidateID).
				Str("job_id", match.JobID).
				Msg("写入匹配结果缓存失败")
		}
	}

	return match, shortlisted, nil
}

func (s *recruitServiceImpl) buildCandidateMatches(ctx context.Context, matches []*types.MatchResult) []*CandidateMatch {
	candidates := make([]*CandidateMatch, 0, len(matches))
	for _, match := range matches {
		cm := &CandidateMatch{
			CandidateID: match.CandidateID,
			Match:       match,
			Shortlisted: match.OverallScore >= constants.ShortlistThreshold,
		}
		if resume, err := s.store.GetCandidate(ctx, match.CandidateID); err == nil {
			cm.CandidateName = resume.CandidateName
			cm.Email = resume.Email
		}
		candidates = append(candidates, cm)
	}
	return candidates
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// extractContactInfo 从简历文本头部取候选人姓名与邮箱。
// 姓名取第一行非空且不含邮箱的短行，取不到就留空。
func extractContactInfo(text string) (name, email string) {
	email = emailPattern.FindString(text)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "@") || len(line) > 80 {
			break
		}
		name = line
		break
	}
	return name, email
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
