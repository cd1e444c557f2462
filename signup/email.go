package signup

import "regexp"

var emailRegexp = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$")

type EmailValidator interface {
	IsValid(email string) (bool, error)
}

type EmailValidatorAdapter struct {
	MaxLength int
}

func NewEmailValidatorAdapter(maxLength int) *EmailValidatorAdapter {
	return &EmailValidatorAdapter{MaxLength: maxLength}
}

func (a *EmailValidatorAdapter) IsValid(email string) (bool, error) {
	if a.MaxLength > 0 && len(email) > a.MaxLength {
		return false, nil
	}
	return emailRegexp.MatchString(email), nil
}
