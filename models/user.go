package models

// User represents an account on the upstream API.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	ProfileImage string `json:"profile_image,omitempty"`
	Level        string `json:"level"` // "1", "2" or "3"
	Active       bool   `json:"active"`
	IsVerified   bool   `json:"is_verified"`
	LastLogin    string `json:"last_login,omitempty"`
	CreatedAt    string `json:"created_at"`
	CreatedBy    string `json:"created_by,omitempty"`
	ModifiedAt   string `json:"modified_at"`
	ModifiedBy   string `json:"modified_by,omitempty"`
}

// UserInput is the payload for creating or updating a user upstream.
type UserInput struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password,omitempty"`
	Level    string `json:"level,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}
