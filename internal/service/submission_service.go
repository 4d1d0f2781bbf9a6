package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/dto"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/repository"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/scoring"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionService interface {
	SubmitTest(formID string, req dto.SubmitTestDTO) (*dto.TestResultDTO, error)
	ListSubmissions() ([]dto.SubmissionDTO, error)
}

type submissionService struct {
	formRepo       repository.FormRepository
	submissionRepo repository.SubmissionRepository
}

func NewSubmissionService(formRepo repository.FormRepository, submissionRepo repository.SubmissionRepository) SubmissionService {
	return &submissionService{formRepo: formRepo, submissionRepo: submissionRepo}
}

// SubmitTest scores a respondent's answers against the stored form and
// records the attempt. The form lookup happens first: scoring is never
// invoked for a missing form.
func (s *submissionService) SubmitTest(formID string, req dto.SubmitTestDTO) (*dto.TestResultDTO, error) {
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		log.Error().Err(err).Str("formID", formID).Msg("SubmitTest: failed to load form")
		return nil, fmt.Errorf("error fetching form %s: %w", formID, err)
	}

	answers := req.Answers
	if answers == nil {
		answers = model.AnswerSet{}
	}
	result := scoring.Score(form.Questions.Data(), answers)

	submission := model.Submission{
		ID:          uuid.NewString(),
		FormID:      form.ID,
		Username:    req.Username,
		Answers:     datatypes.NewJSONType(answers),
		Score:       result.Score,
		MaxScore:    result.MaxScore,
		SubmittedAt: time.Now(),
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Str("formID", formID).Msg("SubmitTest: failed to persist submission")
		return nil, fmt.Errorf("database error recording submission: %w", err)
	}

	return &dto.TestResultDTO{
		Score:      result.Score,
		MaxScore:   result.MaxScore,
		Percentage: scoring.Percentage(result.Score, result.MaxScore),
	}, nil
}

func (s *submissionService) ListSubmissions() ([]dto.SubmissionDTO, error) {
	submissions, err := s.submissionRepo.FindAllWithForms()
	if err != nil {
		log.Error().Err(err).Msg("ListSubmissions: failed to fetch submissions")
		return nil, fmt.Errorf("error fetching submissions: %w", err)
	}

	dtos := make([]dto.SubmissionDTO, 0, len(submissions))
	for _, sub := range submissions {
		d := dto.SubmissionDTO{
			ID:          sub.ID,
			FormID:      sub.FormID,
			Username:    sub.Username,
			Answers:     sub.Answers.Data(),
			Score:       sub.Score,
			MaxScore:    sub.MaxScore,
			SubmittedAt: sub.SubmittedAt,
		}
		if sub.Form != nil {
			d.FormTitle = sub.Form.Title
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
