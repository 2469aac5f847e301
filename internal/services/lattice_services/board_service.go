package lattice_services

import (
	"context"
	"errors"
	"time"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/repository/lattice_repository"
)

type BoardService struct {
	boards   *lattice_repository.BoardRepo
	sections *lattice_repository.SectionRepo
	users    *lattice_repository.UserRepo
	teamSvc  ExistenceChecker
}

func NewBoardService(
	boards *lattice_repository.BoardRepo,
	sections *lattice_repository.SectionRepo,
	users *lattice_repository.UserRepo,
	teamSvc ExistenceChecker,
) *BoardService {
	return &BoardService{boards: boards, sections: sections, users: users, teamSvc: teamSvc}
}

// creatorDto resolves an optional created_by reference to a user view.
// A dangling reference yields nil, same as an absent one.
func creatorDto(ctx context.Context, users *lattice_repository.UserRepo, id *uint64) (*lattice_model.UserDto, error) {
	if id == nil {
		return nil, nil
	}
	user, err := users.GetByID(ctx, *id)
	if errors.Is(err, lattice_repository.ErrUserNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	dto := lattice_model.UserToDto(user)
	return &dto, nil
}

func (s *BoardService) Exists(ctx context.Context, id uint64) (bool, error) {
	return s.boards.Exists(ctx, id)
}

// CreateBoard validates the team reference only. CreatedBy goes to the
// store as-is; a bad value surfaces as a constraint error.
func (s *BoardService) CreateBoard(ctx context.Context, data lattice_model.BoardCreateDto) (uint64, Result) {
	exists, err := s.teamSvc.Exists(ctx, data.TeamID)
	if err != nil {
		return 0, failure("check team existence", err)
	}
	if !exists {
		return 0, NotFound
	}

	createdBy := data.CreatedBy
	board := &lattice_model.Board{
		TeamID:    data.TeamID,
		CreatedBy: &createdBy,
		Name:      data.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.boards.Create(ctx, board); err != nil {
		return 0, failure("create board", err)
	}
	return board.ID, Ok
}

func (s *BoardService) GetBoardInfo(ctx context.Context, id uint64) (*lattice_model.BoardDto, Result) {
	board, err := s.boards.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrBoardNotFound) {
		return nil, NotFound
	} else if err != nil {
		return nil, failure("get board", err)
	}

	sections, err := s.sections.ListByBoard(ctx, id)
	if err != nil {
		return nil, failure("list board sections", err)
	}
	creator, err := creatorDto(ctx, s.users, board.CreatedBy)
	if err != nil {
		return nil, failure("get board creator", err)
	}

	dto := lattice_model.BoardToDto(board, creator, lattice_model.SectionsToDtos(sections))
	return &dto, Ok
}

func (s *BoardService) UpdateBoard(ctx context.Context, id uint64, data lattice_model.BoardUpdateDto) Result {
	board, err := s.boards.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrBoardNotFound) {
		return NotFound
	} else if err != nil {
		return failure("get board", err)
	}

	if board.Name == data.Name {
		return Ok
	}

	rows, err := s.boards.UpdateName(ctx, id, data.Name)
	if err != nil {
		return failure("update board", err)
	}
	if rows == 0 {
		return UnknownError
	}
	return Ok
}

func (s *BoardService) DeleteBoard(ctx context.Context, id uint64) Result {
	rows, err := s.boards.Delete(ctx, id)
	if err != nil {
		return failure("delete board", err)
	}
	if rows == 0 {
		return NotFound
	}
	return Ok
}
