package lattice_services

import (
	"context"
	"errors"
	"time"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/repository/lattice_repository"
)

type SectionService struct {
	sections *lattice_repository.SectionRepo
	cards    *lattice_repository.CardRepo
	boardSvc ExistenceChecker
}

func NewSectionService(
	sections *lattice_repository.SectionRepo,
	cards *lattice_repository.CardRepo,
	boardSvc ExistenceChecker,
) *SectionService {
	return &SectionService{sections: sections, cards: cards, boardSvc: boardSvc}
}

func (s *SectionService) Exists(ctx context.Context, id uint64) (bool, error) {
	return s.sections.Exists(ctx, id)
}

func (s *SectionService) CreateSection(ctx context.Context, data lattice_model.SectionCreateDto) (uint64, Result) {
	exists, err := s.boardSvc.Exists(ctx, data.BoardID)
	if err != nil {
		return 0, failure("check board existence", err)
	}
	if !exists {
		return 0, NotFound
	}

	section := &lattice_model.Section{
		BoardID:   data.BoardID,
		Name:      data.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sections.Create(ctx, section); err != nil {
		return 0, failure("create section", err)
	}
	return section.ID, Ok
}

func (s *SectionService) GetSectionInfo(ctx context.Context, id uint64) (*lattice_model.SectionDto, Result) {
	section, err := s.sections.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrSectionNotFound) {
		return nil, NotFound
	} else if err != nil {
		return nil, failure("get section", err)
	}

	cards, err := s.cards.ListBySection(ctx, id)
	if err != nil {
		return nil, failure("list section cards", err)
	}

	dto := lattice_model.SectionToDto(section, lattice_model.CardsToDtos(cards))
	return &dto, Ok
}

func (s *SectionService) ListCards(ctx context.Context, id uint64) ([]lattice_model.CardDto, Result) {
	exists, err := s.sections.Exists(ctx, id)
	if err != nil {
		return nil, failure("check section existence", err)
	}
	if !exists {
		return nil, NotFound
	}

	cards, err := s.cards.ListBySection(ctx, id)
	if err != nil {
		return nil, failure("list section cards", err)
	}
	return lattice_model.CardsToDtos(cards), Ok
}

func (s *SectionService) UpdateSection(ctx context.Context, id uint64, data lattice_model.SectionUpdateDto) Result {
	section, err := s.sections.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrSectionNotFound) {
		return NotFound
	} else if err != nil {
		return failure("get section", err)
	}

	if section.Name == data.Name {
		return Ok
	}

	rows, err := s.sections.UpdateName(ctx, id, data.Name)
	if err != nil {
		return failure("update section", err)
	}
	if rows == 0 {
		return UnknownError
	}
	return Ok
}

func (s *SectionService) DeleteSection(ctx context.Context, id uint64) Result {
	rows, err := s.sections.Delete(ctx, id)
	if err != nil {
		return failure("delete section", err)
	}
	if rows == 0 {
		return NotFound
	}
	return Ok
}
