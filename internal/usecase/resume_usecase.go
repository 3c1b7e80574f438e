package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-compass/internal/domain/resume"
	"career-compass/internal/domain/skill"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

const DefaultResumeMaxBytes = 5 << 20

type ResumeUpload struct {
	Resume          resume.Parsed
	Completeness    int
	ExperienceYears float64
	Extracted       skill.Extraction
	Skills          []skill.UserSkill
}

type ResumeUsecase interface {
	UploadResume(ctx context.Context, userID uuid.UUID, filename string, data []byte) (ResumeUpload, error)
}

type Resume struct {
	structurer *resume.Structurer
	extractor  *skill.Extractor
	skills     repository.SkillRepository
	userSkills repository.UserSkillRepository
	cache      Cache
	logger     *log.Logger

	threshold float64
	maxBytes  int
}

type ResumeOptions struct {
	Threshold float64
	MaxBytes  int
}

func NewResumeUsecase(
	structurer *resume.Structurer,
	extractor *skill.Extractor,
	skills repository.SkillRepository,
	userSkills repository.UserSkillRepository,
	cache Cache,
	logger *log.Logger,
	opts ResumeOptions,
) *Resume {
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		opts.Threshold = DefaultConfidenceThreshold
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultResumeMaxBytes
	}
	if cache == nil {
		cache = noopCache{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Resume{
		structurer: structurer,
		extractor:  extractor,
		skills:     skills,
		userSkills: userSkills,
		cache:      cache,
		logger:     logger,
		threshold:  opts.Threshold,
		maxBytes:   opts.MaxBytes,
	}
}

// UploadResume parses the document, extracts skills from its full text and
// stores each one against the user with source Resume. A skill already on
// the profile is overwritten with the level derived from the resume.
func (u *Resume) UploadResume(ctx context.Context, userID uuid.UUID, filename string, data []byte) (ResumeUpload, error) {
	start := time.Now()
	if len(data) > u.maxBytes {
		return ResumeUpload{}, ErrResumeTooLarge
	}

	parsed, err := u.structurer.Parse(filename, data)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrUnsupportedFormat):
			return ResumeUpload{}, ErrUnsupportedResume
		case errors.Is(err, resume.ErrEmptyDocument):
			return ResumeUpload{}, ErrEmptyResume
		case errors.Is(err, resume.ErrDecode), errors.Is(err, resume.ErrUnreadableDocument):
			return ResumeUpload{}, ErrUnreadableResume
		default:
			return ResumeUpload{}, ErrInternal
		}
	}

	extracted := u.extractor.ExtractSkills(parsed.Text, u.threshold)
	levels := u.extractor.ExtractSkillLevels(parsed.Text, extracted.Names())

	saved := make([]skill.UserSkill, 0, len(extracted))
	for _, s := range extracted {
		catalog, err := ensureCatalogSkill(ctx, u.skills, u.extractor.Vocabulary(), s.Name)
		if err != nil {
			u.logger.Printf("resume status=error user_id=%s skill=%q stage=catalog err=%v", userID, s.Name, err)
			return ResumeUpload{}, ErrInternal
		}

		level, ok := levels[s.Name]
		if !ok {
			level = skill.DefaultSkillLevel
		}
		us, err := u.userSkills.Upsert(ctx, skill.UserSkill{
			UserID:           userID,
			SkillID:          catalog.ID,
			ProficiencyLevel: skill.ClampProficiency(level),
			Source:           skill.SourceResume,
		})
		if err != nil {
			if isForeignKeyViolation(err) {
				return ResumeUpload{}, ErrUserNotFound
			}
			u.logger.Printf("resume status=error user_id=%s skill=%q stage=upsert err=%v", userID, s.Name, err)
			return ResumeUpload{}, ErrInternal
		}
		saved = append(saved, us)
	}

	invalidateInsights(ctx, u.cache, userID)

	out := ResumeUpload{
		Resume:          parsed,
		Completeness:    resume.CompletenessScore(parsed),
		ExperienceYears: parsed.YearsOfExperience(),
		Extracted:       extracted,
		Skills:          saved,
	}
	u.logger.Printf("resume status=ok user_id=%s file=%q skills=%d completeness=%d duration=%s",
		userID, filename, len(saved), out.Completeness, time.Since(start))
	return out, nil
}
