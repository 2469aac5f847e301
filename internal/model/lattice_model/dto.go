package lattice_model

import (
	"time"
)

// Request payloads.

type UserCreateDto struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type UserUpdateDto struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type TeamCreateDto struct {
	OwnerID uint64 `json:"ownerId"`
	Name    string `json:"name"`
}

type TeamUpdateDto struct {
	Name string `json:"name"`
}

type UserJoinTeamDto struct {
	UserID uint64 `json:"userId"`
}

type BoardCreateDto struct {
	TeamID    uint64 `json:"teamId"`
	Name      string `json:"name"`
	CreatedBy uint64 `json:"createdBy"`
}

type BoardUpdateDto struct {
	Name string `json:"name"`
}

type SectionCreateDto struct {
	BoardID uint64 `json:"boardId"`
	Name    string `json:"name"`
}

type SectionUpdateDto struct {
	Name string `json:"name"`
}

type CardCreateDto struct {
	SectionID   uint64     `json:"sectionId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      CardStatus `json:"status"`
	CreatedBy   uint64     `json:"createdBy"`
	AssignedTo  *uint64    `json:"assignedTo"`
}

type CardUpdateDto struct {
	SectionID   uint64     `json:"sectionId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      CardStatus `json:"status"`
}

// Response payloads. Optional fields are omitted when absent, with one
// exception: CardDto.AssignedTo is always emitted, null included.

type CreationResult struct {
	ID uint64 `json:"id"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

type UserDto struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
}

type TeamDto struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Owner     UserDto   `json:"owner"`
	Members   []UserDto `json:"members,omitzero"`
}

type BoardDto struct {
	ID        uint64       `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	TeamID    uint64       `json:"teamId"`
	Name      string       `json:"name"`
	Creator   *UserDto     `json:"creator,omitempty"`
	Sections  []SectionDto `json:"sections,omitzero"`
}

type SectionDto struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	BoardID   uint64    `json:"boardId"`
	Name      string    `json:"name"`
	Cards     []CardDto `json:"cards,omitzero"`
}

type CardDto struct {
	ID          uint64     `json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	SectionID   uint64     `json:"sectionId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      CardStatus `json:"status"`
	AssignedTo  *uint64    `json:"assignedTo"`
}
