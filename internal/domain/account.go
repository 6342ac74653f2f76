package domain

type Account struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	DisplayName  string   `json:"displayName,omitempty"`
	PasswordHash string   `json:"passwordHash"`
	Roles        []string `json:"roles,omitempty"`
	CellID       string   `json:"cellId,omitempty"`
}

func (a *Account) IsAdmin() bool {
	for _, role := range a.Roles {
		if role == "admin" {
			return true
		}
	}
	return false
}

type AccountUpdate struct {
	DisplayName *string
	Password    *string
	Roles       *[]string
	CellID      *string
}
