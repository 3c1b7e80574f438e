package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInternal                = errors.New("internal error")
	ErrUserNotFound            = errors.New("user not found")
	ErrCareerNotFound          = errors.New("career not found")
	ErrIndustryNotFound        = errors.New("industry not found")
	ErrSkillNotFound           = errors.New("skill not found")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrUnsupportedResume       = errors.New("unsupported resume format")
	ErrUnreadableResume        = errors.New("resume could not be read")
	ErrEmptyResume             = errors.New("resume contains no text")
	ErrResumeTooLarge          = errors.New("resume too large")
	ErrRegenerationInProgress  = errors.New("recommendation regeneration already in progress")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
