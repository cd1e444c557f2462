package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type BcryptEncrypter struct {
	Cost int
}

func NewBcryptEncrypter(cost int) *BcryptEncrypter {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptEncrypter{Cost: cost}
}

func (b *BcryptEncrypter) Encrypt(ctx context.Context, value string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(value), b.Cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func hashMatchesPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
