package models

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is an account record in data/users.json. Password holds a bcrypt hash.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
