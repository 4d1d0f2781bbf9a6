package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/dto"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/repository"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/scoring"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FormService interface {
	CreateForm(req dto.FormCreateDTO) (*dto.FormDTO, error)
	ListForms() ([]dto.FormDTO, error)
	GetForm(id string) (*dto.FormDTO, error)
	GetFormForTest(id string) (*dto.TestFormDTO, error)
}

type formService struct {
	formRepo repository.FormRepository
}

func NewFormService(formRepo repository.FormRepository) FormService {
	return &formService{formRepo: formRepo}
}

func (s *formService) CreateForm(req dto.FormCreateDTO) (*dto.FormDTO, error) {
	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}

	questions := make([]model.Question, 0, len(req.Questions))
	if err := copier.Copy(&questions, &req.Questions); err != nil {
		log.Error().Err(err).Msg("CreateForm: failed to map question DTOs to models")
		return nil, fmt.Errorf("error preparing form data: %w", err)
	}
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
	}

	form := model.Form{
		ID:          uuid.NewString(),
		Title:       req.Title,
		HeaderImage: req.HeaderImage,
		Questions:   datatypes.NewJSONType(questions),
		CreatedAt:   time.Now(),
	}
	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Msg("CreateForm: failed to persist form")
		return nil, fmt.Errorf("database error creating form: %w", err)
	}

	resp, err := toFormDTO(&form)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *formService) ListForms() ([]dto.FormDTO, error) {
	forms, err := s.formRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListForms: failed to fetch forms")
		return nil, fmt.Errorf("error fetching forms: %w", err)
	}
	dtos := make([]dto.FormDTO, 0, len(forms))
	for i := range forms {
		d, err := toFormDTO(&forms[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *d)
	}
	return dtos, nil
}

func (s *formService) GetForm(id string) (*dto.FormDTO, error) {
	form, err := s.findForm(id)
	if err != nil {
		return nil, err
	}
	return toFormDTO(form)
}

func (s *formService) GetFormForTest(id string) (*dto.TestFormDTO, error) {
	form, err := s.findForm(id)
	if err != nil {
		return nil, err
	}
	safe := scoring.Sanitize(form)
	return &safe, nil
}

func (s *formService) findForm(id string) (*model.Form, error) {
	form, err := s.formRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		log.Error().Err(err).Str("formID", id).Msg("Failed to load form")
		return nil, fmt.Errorf("error fetching form %s: %w", id, err)
	}
	return form, nil
}

func toFormDTO(form *model.Form) (*dto.FormDTO, error) {
	resp := dto.FormDTO{
		ID:          form.ID,
		Title:       form.Title,
		HeaderImage: form.HeaderImage,
		CreatedAt:   form.CreatedAt,
	}
	questions := form.Questions.Data()
	if err := copier.Copy(&resp.Questions, &questions); err != nil {
		log.Error().Err(err).Str("formID", form.ID).Msg("Failed to copy form questions to DTO")
		return nil, fmt.Errorf("error preparing form response: %w", err)
	}
	return &resp, nil
}

// validateQuestions enforces the authoring invariants that used to live
// only in the client: unique question ids, a single category group whose
// belongsTo values reference declared categories with no category left
// empty, cloze positions inside the tokenized text, and comprehension
// answers referencing an existing option.
func validateQuestions(questions []dto.QuestionCreateDTO) error {
	seen := make(map[string]bool)
	for i, q := range questions {
		if q.ID != "" {
			if seen[q.ID] {
				return fmt.Errorf("%w: duplicate question id %q", ErrInvalidForm, q.ID)
			}
			seen[q.ID] = true
		}

		switch q.Type {
		case model.QuestionCategorize:
			if err := validateCategorize(q); err != nil {
				return fmt.Errorf("%w: question %d: %s", ErrInvalidForm, i+1, err)
			}
		case model.QuestionCloze:
			if err := validateCloze(q); err != nil {
				return fmt.Errorf("%w: question %d: %s", ErrInvalidForm, i+1, err)
			}
		case model.QuestionComprehension:
			if err := validateComprehension(q); err != nil {
				return fmt.Errorf("%w: question %d: %s", ErrInvalidForm, i+1, err)
			}
		}
	}
	return nil
}

func validateCategorize(q dto.QuestionCreateDTO) error {
	if len(q.CategoryItems) != 1 {
		return fmt.Errorf("a categorize question needs exactly one category group, got %d", len(q.CategoryItems))
	}
	group := q.CategoryItems[0]
	names := model.CategoryGroup{Category: group.Category}.Categories()
	categories := make(map[string]bool, len(names))
	for _, name := range names {
		categories[name] = false
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories declared")
	}
	for _, item := range group.Items {
		if _, ok := categories[item.BelongsTo]; !ok {
			return fmt.Errorf("item %q belongs to undeclared category %q", item.Text, item.BelongsTo)
		}
		categories[item.BelongsTo] = true
	}
	for name, covered := range categories {
		if !covered {
			return fmt.Errorf("category %q has no items", name)
		}
	}
	return nil
}

func validateCloze(q dto.QuestionCreateDTO) error {
	tokens := len(strings.Fields(q.Text))
	for _, w := range q.ClozeWords {
		if w.Position >= tokens {
			return fmt.Errorf("cloze word %q has position %d outside the %d-word text", w.Word, w.Position, tokens)
		}
	}
	return nil
}

func validateComprehension(q dto.QuestionCreateDTO) error {
	for _, sub := range q.ComprehensionQuestions {
		found := false
		for _, opt := range sub.Options {
			if opt.ID == sub.CorrectOptionID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("sub-question %q has correctOptionId %q matching no option", sub.Question, sub.CorrectOptionID)
		}
	}
	return nil
}
