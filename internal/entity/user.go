package entity

// UserRole определяет роль пользователя в системе
type UserRole string

const (
	RoleStudent      UserRole = "student"
	RoleEventManager UserRole = "event_manager"
)

// Valid проверяет, что роль является одной из известных
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleEventManager
}

type User struct {
	ID                int64    `json:"id"`
	Username          string   `json:"username"`
	PasswordHash      string   `json:"-"`
	Email             string   `json:"email"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Role              UserRole `json:"role"`
	Department        string   `json:"department,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	ProfileImage      string   `json:"profileImage,omitempty"`
	Company           string   `json:"company,omitempty"`
	YearsOfExperience int      `json:"yearsOfExperience,omitempty"`
}
