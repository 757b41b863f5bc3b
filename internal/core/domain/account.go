package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrAccessDenied = errors.New("access denied")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidRefreshToken = errors.New("invalid refresh token")
var ErrAccountNotFound = errors.New("system account not found")
var ErrAccountInUse = errors.New("system account has created or updated news articles")

// SystemAccount models a back-office user. PasswordHash is a bcrypt hash and
// never serialized.
type SystemAccount struct {
	AccountID    int64  `json:"accountId"`
	AccountName  string `json:"accountName"`
	AccountEmail string `json:"accountEmail"`
	AccountRole  Role   `json:"accountRole"`
	PasswordHash string `json:"-"`
}

// Identity is the authenticated subject derived from a verified credential.
// An identity with ID 0 is the configured admin override, which has no
// backing row in the account store.
type Identity struct {
	ID    int64
	Email string
	Role  Role
}
