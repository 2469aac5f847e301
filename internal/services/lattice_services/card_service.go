package lattice_services

import (
	"context"
	"errors"
	"time"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/repository/lattice_repository"
)

type CardService struct {
	cards      *lattice_repository.CardRepo
	sectionSvc ExistenceChecker
	userSvc    ExistenceChecker
}

func NewCardService(
	cards *lattice_repository.CardRepo,
	sectionSvc ExistenceChecker,
	userSvc ExistenceChecker,
) *CardService {
	return &CardService{cards: cards, sectionSvc: sectionSvc, userSvc: userSvc}
}

// CreateCard validates the section reference only. AssignedTo and
// CreatedBy go to the store as-is; a bad value surfaces as a constraint
// error.
func (s *CardService) CreateCard(ctx context.Context, data lattice_model.CardCreateDto) (uint64, Result) {
	exists, err := s.sectionSvc.Exists(ctx, data.SectionID)
	if err != nil {
		return 0, failure("check section existence", err)
	}
	if !exists {
		return 0, NotFound
	}

	createdBy := data.CreatedBy
	card := &lattice_model.Card{
		Name:        data.Name,
		Description: data.Description,
		AssignedTo:  data.AssignedTo,
		SectionID:   data.SectionID,
		Status:      data.Status,
		CreatedBy:   &createdBy,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return 0, failure("create card", err)
	}
	return card.ID, Ok
}

func (s *CardService) GetCardInfo(ctx context.Context, id uint64) (*lattice_model.CardDto, Result) {
	card, err := s.cards.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrCardNotFound) {
		return nil, NotFound
	} else if err != nil {
		return nil, failure("get card", err)
	}
	dto := lattice_model.CardToDto(card)
	return &dto, Ok
}

// UpdateCard replaces section, name, description and status. The new
// SectionId is not re-validated here; a bad one surfaces as a constraint
// error.
func (s *CardService) UpdateCard(ctx context.Context, id uint64, data lattice_model.CardUpdateDto) Result {
	card, err := s.cards.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrCardNotFound) {
		return NotFound
	} else if err != nil {
		return failure("get card", err)
	}

	card.SectionID = data.SectionID
	card.Name = data.Name
	card.Description = data.Description
	card.Status = data.Status

	rows, err := s.cards.Update(ctx, card)
	if err != nil {
		return failure("update card", err)
	}
	if rows == 0 {
		return UnknownError
	}
	return Ok
}

func (s *CardService) AssignTo(ctx context.Context, cardID, userID uint64) Result {
	if _, err := s.cards.GetByID(ctx, cardID); errors.Is(err, lattice_repository.ErrCardNotFound) {
		return NotFound
	} else if err != nil {
		return failure("get card", err)
	}

	exists, err := s.userSvc.Exists(ctx, userID)
	if err != nil {
		return failure("check user existence", err)
	}
	if !exists {
		return UserNotFound
	}

	rows, err := s.cards.Assign(ctx, cardID, userID)
	if err != nil {
		return failure("assign card", err)
	}
	if rows == 0 {
		return UnknownError
	}
	return Ok
}

func (s *CardService) DeleteCard(ctx context.Context, id uint64) Result {
	rows, err := s.cards.Delete(ctx, id)
	if err != nil {
		return failure("delete card", err)
	}
	if rows == 0 {
		return NotFound
	}
	return Ok
}
