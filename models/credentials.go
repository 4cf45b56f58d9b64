package models

// Credentials carries a username/password pair presented by a client.
// Role is set only on registration; login ignores it.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}
