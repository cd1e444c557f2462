package auth

import (
	"context"
	"sync"
)

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[ID]*Account
}

func NewAccountRepository() Repository {
	return &accountRepository{accounts: map[ID]*Account{}}
}

func (repo *accountRepository) Add(_ context.Context, cmd EncodedAccountCommand) (*Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, v := range repo.accounts {
		if v.Email == cmd.Email {
			return nil, ErrExistingEmail
		}
	}

	acc := newAccount(cmd)
	repo.accounts[acc.ID] = acc

	stored := *acc
	return &stored, nil
}

func (repo *accountRepository) FindByEmail(_ context.Context, email string) (*Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, v := range repo.accounts {
		if v.Email == email {
			acc := *v
			return &acc, nil
		}
	}
	return nil, ErrNotFound
}
