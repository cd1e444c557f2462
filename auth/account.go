package auth

import (
	"errors"
	"time"

	"github.com/rs/xid"
)

// Account is the persisted form of a registered user. Password always holds
// the encoded credential.
type Account struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"-"`
}

type ID string

//AddAccountCommand is a validated signup carrying the plaintext password
type AddAccountCommand struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

//EncodedAccountCommand is what reaches an AddAccountRepository: Password is
// the encrypter's output, never the plaintext
type EncodedAccountCommand struct {
	Name     string
	Email    string
	Password string
}

var (
	ErrExistingEmail = errors.New("email in use")
	ErrNotFound      = errors.New("account not found")
)

func NewID() ID {
	return ID(xid.New().String())
}

func IsValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}

func newAccount(cmd EncodedAccountCommand) *Account {
	return &Account{
		ID:        NewID(),
		Name:      cmd.Name,
		Email:     cmd.Email,
		Password:  cmd.Password,
		CreatedAt: time.Now().UTC(),
	}
}
