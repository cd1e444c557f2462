package auth

import "context"

type AddAccount interface {
	Add(ctx context.Context, cmd AddAccountCommand) (*Account, error)
}

type Encrypter interface {
	Encrypt(ctx context.Context, value string) (string, error)
}

type AddAccountRepository interface {
	Add(ctx context.Context, cmd EncodedAccountCommand) (*Account, error)
}

type Repository interface {
	AddAccountRepository
	FindByEmail(ctx context.Context, email string) (*Account, error)
}
