package lattice_model

// Pure entity-to-view conversions. Anything that needs a query stays in
// the service layer; these only reshape data that is already loaded.

func UserToDto(u *UserAccount) UserDto {
	return UserDto{ID: u.ID, CreatedAt: u.CreatedAt, Name: u.Name}
}

func UsersToDtos(users []UserAccount) []UserDto {
	dtos := make([]UserDto, 0, len(users))
	for i := range users {
		dtos = append(dtos, UserToDto(&users[i]))
	}
	return dtos
}

// MembershipToUserDto flattens a membership row into a member view. The
// identifier and name come from the joined user account; the timestamp is
// the membership's own.
func MembershipToUserDto(m *MembershipWithUser) UserDto {
	return UserDto{ID: m.UserID, CreatedAt: m.CreatedAt, Name: m.UserName}
}

// MembershipToTeamDto flattens a membership row into a team view. The
// name and owner come from the joined team, the rest from the membership
// row itself. Members are not populated in this view.
func MembershipToTeamDto(m *MembershipWithTeam) TeamDto {
	return TeamDto{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Name:      m.TeamName,
		Owner:     UserDto{ID: m.OwnerID, CreatedAt: m.OwnerCreatedAt, Name: m.OwnerName},
	}
}

// TeamToDto builds a full team view. Members are mapped from the raw
// membership rows, one flattening pass per row.
func TeamToDto(t *Team, owner UserDto, memberships []MembershipWithUser) TeamDto {
	members := make([]UserDto, 0, len(memberships))
	for i := range memberships {
		members = append(members, MembershipToUserDto(&memberships[i]))
	}
	return TeamDto{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Name:      t.Name,
		Owner:     owner,
		Members:   members,
	}
}

func BoardToDto(b *Board, creator *UserDto, sections []SectionDto) BoardDto {
	return BoardDto{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		TeamID:    b.TeamID,
		Name:      b.Name,
		Creator:   creator,
		Sections:  sections,
	}
}

func SectionToDto(s *Section, cards []CardDto) SectionDto {
	return SectionDto{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		BoardID:   s.BoardID,
		Name:      s.Name,
		Cards:     cards,
	}
}

func SectionsToDtos(sections []Section) []SectionDto {
	dtos := make([]SectionDto, 0, len(sections))
	for i := range sections {
		dtos = append(dtos, SectionToDto(&sections[i], nil))
	}
	return dtos
}

func CardToDto(c *Card) CardDto {
	return CardDto{
		ID:          c.ID,
		CreatedAt:   c.CreatedAt,
		SectionID:   c.SectionID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		AssignedTo:  c.AssignedTo,
	}
}

func CardsToDtos(cards []Card) []CardDto {
	dtos := make([]CardDto, 0, len(cards))
	for i := range cards {
		dtos = append(dtos, CardToDto(&cards[i]))
	}
	return dtos
}
