package domain

type CellRole string

const (
	RoleLeader    CellRole = "leader"
	RoleSubleader CellRole = "subleader"
	RoleMember    CellRole = "member"
)

func ValidCellRole(role CellRole) bool {
	switch role {
	case RoleLeader, RoleSubleader, RoleMember:
		return true
	}
	return false
}

type CellAssignment struct {
	MemberID string   `json:"memberId"`
	Role     CellRole `json:"role"`
}

type Cell struct {
	ID       string           `json:"id"`
	Number   int              `json:"number"`
	Name     string           `json:"name"`
	LeaderID string           `json:"leaderId"`
	Members  []CellAssignment `json:"members"`
}

// ReplaceLeader removes the current leader assignment (matched by id or by
// role) and prepends the new one. Non-leader assignments are kept as-is.
func (c *Cell) ReplaceLeader(leaderID string) {
	kept := make([]CellAssignment, 0, len(c.Members))
	for _, a := range c.Members {
		if a.MemberID == c.LeaderID || a.Role == RoleLeader {
			continue
		}
		kept = append(kept, a)
	}
	c.Members = append([]CellAssignment{{MemberID: leaderID, Role: RoleLeader}}, kept...)
	c.LeaderID = leaderID
}

// UpsertAssignment updates the member's role if already rostered, otherwise
// appends a new assignment. A member never appears twice in one cell.
func (c *Cell) UpsertAssignment(memberID string, role CellRole) {
	for i, a := range c.Members {
		if a.MemberID == memberID {
			c.Members[i].Role = role
			return
		}
	}
	c.Members = append(c.Members, CellAssignment{MemberID: memberID, Role: role})
}

func (c *Cell) RemoveAssignment(memberID string) bool {
	for i, a := range c.Members {
		if a.MemberID == memberID {
			c.Members = append(c.Members[:i], c.Members[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cell) HasMember(memberID string) bool {
	for _, a := range c.Members {
		if a.MemberID == memberID {
			return true
		}
	}
	return false
}

// RosterEntry is a hydrated cell assignment. Member is nil when the referenced
// member no longer exists in the registry ("unregistered").
type RosterEntry struct {
	Role   CellRole `json:"role"`
	Member *Member  `json:"member"`
}

type HydratedCell struct {
	Cell
	Roster []RosterEntry `json:"roster"`
}
