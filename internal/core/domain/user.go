package domain

// User is an account record consumed by the auth collaborator.
type User struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt, never exposed
}
