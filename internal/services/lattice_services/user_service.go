package lattice_services

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/repository/lattice_repository"
)

type UserService struct {
	users       *lattice_repository.UserRepo
	memberships *lattice_repository.MembershipRepo
	cards       *lattice_repository.CardRepo
}

func NewUserService(
	users *lattice_repository.UserRepo,
	memberships *lattice_repository.MembershipRepo,
	cards *lattice_repository.CardRepo,
) *UserService {
	return &UserService{users: users, memberships: memberships, cards: cards}
}

// isEmailValid accepts only a bare address, no display name.
func isEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (s *UserService) Exists(ctx context.Context, id uint64) (bool, error) {
	return s.users.Exists(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, data lattice_model.UserCreateDto) (uint64, Result) {
	if !isEmailValid(data.Email) {
		return 0, InvalidEmail
	}

	if _, err := s.users.GetByEmail(ctx, data.Email); err == nil {
		return 0, EmailAlreadyTaken
	} else if !errors.Is(err, lattice_repository.ErrUserNotFound) {
		return 0, failure("check email uniqueness", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, failure("hash password", err)
	}

	user := &lattice_model.UserAccount{
		Name:         data.Name,
		PasswordHash: string(hash),
		Email:        data.Email,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, failure("create user", err)
	}
	return user.ID, Ok
}

func (s *UserService) GetUserInfo(ctx context.Context, id uint64) (*lattice_model.UserDto, Result) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrUserNotFound) {
		return nil, NotFound
	} else if err != nil {
		return nil, failure("get user", err)
	}
	dto := lattice_model.UserToDto(user)
	return &dto, Ok
}

func (s *UserService) ListUsers(ctx context.Context) ([]lattice_model.UserDto, Result) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, failure("list users", err)
	}
	return lattice_model.UsersToDtos(users), Ok
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, data lattice_model.UserUpdateDto) Result {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrUserNotFound) {
		return NotFound
	} else if err != nil {
		return failure("get user", err)
	}

	if !isEmailValid(data.Email) {
		return InvalidEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return failure("hash password", err)
	}

	user.Name = data.Name
	user.PasswordHash = string(hash)
	user.Email = data.Email

	rows, err := s.users.Update(ctx, user)
	if err != nil {
		return failure("update user", err)
	}
	if rows == 0 {
		return UnknownError
	}
	return Ok
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) Result {
	rows, err := s.users.Delete(ctx, id)
	if err != nil {
		return failure("delete user", err)
	}
	if rows == 0 {
		return NotFound
	}
	return Ok
}

// ListTeams returns the teams the user belongs to, built from the user's
// membership rows.
func (s *UserService) ListTeams(ctx context.Context, id uint64) ([]lattice_model.TeamDto, Result) {
	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		return nil, failure("check user existence", err)
	}
	if !exists {
		return nil, NotFound
	}

	rows, err := s.memberships.ListByUser(ctx, id)
	if err != nil {
		return nil, failure("list user teams", err)
	}
	teams := make([]lattice_model.TeamDto, 0, len(rows))
	for i := range rows {
		teams = append(teams, lattice_model.MembershipToTeamDto(&rows[i]))
	}
	return teams, Ok
}

func (s *UserService) ListAssignedCards(ctx context.Context, id uint64) ([]lattice_model.CardDto, Result) {
	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		return nil, failure("check user existence", err)
	}
	if !exists {
		return nil, NotFound
	}

	cards, err := s.cards.ListByAssignee(ctx, id)
	if err != nil {
		return nil, failure("list assigned cards", err)
	}
	return lattice_model.CardsToDtos(cards), Ok
}
