package user

import (
	"crypto/subtle"
	"errors"
)

const RoleAdmin = "admin"

var ErrInvalidCredentials = errors.New("invalid credentials")

type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CredentialVerifier checks a username/password pair and returns the identity
// it belongs to, or ErrInvalidCredentials.
type CredentialVerifier interface {
	Verify(username, password string) (*User, error)
}

// StaticVerifier accepts exactly one configured pair.
type StaticVerifier struct {
	Username string
	Password string
}

func NewStaticVerifier(username, password string) *StaticVerifier {
	return &StaticVerifier{Username: username, Password: password}
}

func (v *StaticVerifier) Verify(username, password string) (*User, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
	if !userOK || !passOK || v.Username == "" {
		return nil, ErrInvalidCredentials
	}
	return &User{Username: v.Username, Role: RoleAdmin}, nil
}
