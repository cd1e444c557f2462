package auth

import "context"

type dbAddAccount struct {
	encrypter Encrypter
	accounts  AddAccountRepository
}

//NewDbAddAccount returns the AddAccount use case. Failures from the encrypter
// or the repository are returned as-is.
func NewDbAddAccount(encrypter Encrypter, accounts AddAccountRepository) AddAccount {
	return &dbAddAccount{encrypter: encrypter, accounts: accounts}
}

func (svc *dbAddAccount) Add(ctx context.Context, cmd AddAccountCommand) (*Account, error) {
	hash, err := svc.encrypter.Encrypt(ctx, cmd.Password)
	if err != nil {
		return nil, err
	}

	encoded := EncodedAccountCommand{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Password: hash,
	}

	return svc.accounts.Add(ctx, encoded)
}
