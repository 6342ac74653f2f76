package domain

type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthYear int    `json:"birthYear,omitempty"`
	Team      string `json:"team,omitempty"`
	Contact   string `json:"contact,omitempty"`
	Role      string `json:"role,omitempty"`
	IsActive  bool   `json:"isActive"`
	JoinedAt  string `json:"joinedAt,omitempty"`
}

type NewMemberPayload struct {
	Name      string
	BirthYear int
	Team      string
	Contact   string
	Role      string
	JoinedAt  string
}
