package lattice_services

import (
	"context"
	"errors"
	"time"

	"github.com/leleneme/lattice/internal/model/lattice_model"
	"github.com/leleneme/lattice/internal/repository/lattice_repository"
)

type TeamService struct {
	teams       *lattice_repository.TeamRepo
	memberships *lattice_repository.MembershipRepo
	boards      *lattice_repository.BoardRepo
	sections    *lattice_repository.SectionRepo
	users       *lattice_repository.UserRepo
	userSvc     ExistenceChecker
}

func NewTeamService(
	teams *lattice_repository.TeamRepo,
	memberships *lattice_repository.MembershipRepo,
	boards *lattice_repository.BoardRepo,
	sections *lattice_repository.SectionRepo,
	users *lattice_repository.UserRepo,
	userSvc ExistenceChecker,
) *TeamService {
	return &TeamService{
		teams:       teams,
		memberships: memberships,
		boards:      boards,
		sections:    sections,
		users:       users,
		userSvc:     userSvc,
	}
}

func (s *TeamService) Exists(ctx context.Context, id uint64) (bool, error) {
	return s.teams.Exists(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, data lattice_model.TeamCreateDto) (uint64, Result) {
	exists, err := s.userSvc.Exists(ctx, data.OwnerID)
	if err != nil {
		return 0, failure("check owner existence", err)
	}
	if !exists {
		return 0, NotFound
	}

	team := &lattice_model.Team{
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return 0, failure("create team", err)
	}
	return team.ID, Ok
}

func (s *TeamService) GetTeamInfo(ctx context.Context, id uint64) (*lattice_model.TeamDto, Result) {
	team, err := s.teams.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrTeamNotFound) {
		return nil, NotFound
	} else if err != nil {
		return nil, failure("get team", err)
	}

	dto, result := s.hydrateTeam(ctx, team)
	if result != Ok {
		return nil, result
	}
	return dto, Ok
}

func (s *TeamService) ListTeams(ctx context.Context) ([]lattice_model.TeamDto, Result) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, failure("list teams", err)
	}

	dtos := make([]lattice_model.TeamDto, 0, len(teams))
	for i := range teams {
		dto, result := s.hydrateTeam(ctx, &teams[i])
		if result != Ok {
			return nil, result
		}
		dtos = append(dtos, *dto)
	}
	return dtos, Ok
}

// hydrateTeam attaches the owner and the member list to a team row.
func (s *TeamService) hydrateTeam(ctx context.Context, team *lattice_model.Team) (*lattice_model.TeamDto, Result) {
	owner, err := s.users.GetByID(ctx, team.OwnerID)
	if err != nil {
		return nil, failure("get team owner", err)
	}
	memberships, err := s.memberships.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, failure("list team memberships", err)
	}
	dto := lattice_model.TeamToDto(team, lattice_model.UserToDto(owner), memberships)
	return &dto, Ok
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, data lattice_model.TeamUpdateDto) Result {
	team, err := s.teams.GetByID(ctx, id)
	if errors.Is(err, lattice_repository.ErrTeamNotFound) {
		return NotFound
	} else if err != nil {
		return failure("get team", err)
	}

	if team.Name == data.Name {
		return Ok
	}

	rows, err := s.teams.UpdateName(ctx, id, data.Name)
	if err != nil {
		return failure("update team", err)
	}
	if rows == 0 {
		return UnknownError
	}
	return Ok
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) Result {
	rows, err := s.teams.Delete(ctx, id)
	if err != nil {
		return failure("delete team", err)
	}
	if rows == 0 {
		return NotFound
	}
	return Ok
}

// ListBoards returns the team's boards with creator and sections attached.
// Cards are not loaded at this depth.
func (s *TeamService) ListBoards(ctx context.Context, id uint64) ([]lattice_model.BoardDto, Result) {
	exists, err := s.teams.Exists(ctx, id)
	if err != nil {
		return nil, failure("check team existence", err)
	}
	if !exists {
		return nil, NotFound
	}

	boards, err := s.boards.ListByTeam(ctx, id)
	if err != nil {
		return nil, failure("list team boards", err)
	}

	dtos := make([]lattice_model.BoardDto, 0, len(boards))
	for i := range boards {
		sections, err := s.sections.ListByBoard(ctx, boards[i].ID)
		if err != nil {
			return nil, failure("list board sections", err)
		}
		creator, err := creatorDto(ctx, s.users, boards[i].CreatedBy)
		if err != nil {
			return nil, failure("get board creator", err)
		}
		dtos = append(dtos, lattice_model.BoardToDto(&boards[i], creator, lattice_model.SectionsToDtos(sections)))
	}
	return dtos, Ok
}

func (s *TeamService) ListMembers(ctx context.Context, id uint64) ([]lattice_model.UserDto, Result) {
	exists, err := s.teams.Exists(ctx, id)
	if err != nil {
		return nil, failure("check team existence", err)
	}
	if !exists {
		return nil, NotFound
	}

	rows, err := s.memberships.ListByTeam(ctx, id)
	if err != nil {
		return nil, failure("list team members", err)
	}
	members := make([]lattice_model.UserDto, 0, len(rows))
	for i := range rows {
		members = append(members, lattice_model.MembershipToUserDto(&rows[i]))
	}
	return members, Ok
}

func (s *TeamService) AddMember(ctx context.Context, teamID, userID uint64) Result {
	exists, err := s.userSvc.Exists(ctx, userID)
	if err != nil {
		return failure("check user existence", err)
	}
	if !exists {
		return UserNotFound
	}

	exists, err = s.teams.Exists(ctx, teamID)
	if err != nil {
		return failure("check team existence", err)
	}
	if !exists {
		return NotFound
	}

	membership := &lattice_model.UserTeam{
		TeamID:    teamID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.memberships.Create(ctx, membership); err != nil {
		return failure("add team member", err)
	}
	return Ok
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID uint64) Result {
	_, err := s.memberships.Find(ctx, teamID, userID)
	if errors.Is(err, lattice_repository.ErrMembershipNotFound) {
		return NotFound
	} else if err != nil {
		return failure("find membership", err)
	}

	rows, err := s.memberships.Delete(ctx, teamID, userID)
	if err != nil {
		return failure("remove team member", err)
	}
	if rows == 0 {
		return UnknownError
	}
	return Ok
}
