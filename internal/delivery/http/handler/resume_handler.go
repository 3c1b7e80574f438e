package handler

import (
	"errors"
	"io"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/skill"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const resumeFormField = "resume"

type ResumeHandler struct {
	uc       usecase.ResumeUsecase
	maxBytes int64
}

func NewResumeHandler(uc usecase.ResumeUsecase, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = usecase.DefaultResumeMaxBytes
	}
	return &ResumeHandler{uc: uc, maxBytes: maxBytes}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/me/resume", h.Upload)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile(resumeFormField)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file part in the request", nil, err)
	}
	if fh.Filename == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file selected", nil, nil)
	}
	if fh.Size > h.maxBytes {
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "Resume too large", nil, usecase.ErrResumeTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unable to read upload", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unable to read upload", nil, err)
	}

	res, err := h.uc.UploadResume(c.Context(), userID, fh.Filename, data)
	if err != nil {
		return mapResumeUsecaseError(err)
	}

	extracted := res.Extracted
	if extracted == nil {
		extracted = skill.Extraction{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ResumeUploadResponse{
		Resume:            res.Resume,
		CompletenessScore: res.Completeness,
		ExperienceYears:   res.ExperienceYears,
		ExtractedSkills:   extracted,
		Skills:            dto.NewUserSkillResponses(res.Skills),
	})
}

func mapResumeUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnsupportedResume):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, "Unsupported file format", nil, err)
	case errors.Is(err, usecase.ErrResumeTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "Resume too large", nil, err)
	case errors.Is(err, usecase.ErrEmptyResume):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Resume contains no text", nil, err)
	case errors.Is(err, usecase.ErrUnreadableResume):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Resume could not be read", nil, err)
	default:
		return mapUsecaseError(err)
	}
}
