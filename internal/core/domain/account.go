package domain

import "time"

// Account models a system user. Admins manage developers and their
// equipment; developers only ever see their own dashboard.
type Account struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"is_active"`
	IsAdmin      bool       `json:"is_admin"`
	IsSuperuser  bool       `json:"is_superuser"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Identity is the authenticated caller of an operation. A nil *Identity
// means the request carried no valid credentials.
type Identity struct {
	AccountID   string
	Username    string
	IsAdmin     bool
	IsSuperuser bool
}
