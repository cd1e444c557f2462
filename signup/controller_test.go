package signup

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jimiolaniyan/signup/auth"
)

type emailValidatorStub struct {
	email  string
	calls  int
	result bool
	err    error
}

func (e *emailValidatorStub) IsValid(email string) (bool, error) {
	e.calls++
	e.email = email
	return e.result, e.err
}

type addAccountSpy struct {
	cmd   auth.AddAccountCommand
	calls int
	err   error
}

func (a *addAccountSpy) Add(_ context.Context, cmd auth.AddAccountCommand) (*auth.Account, error) {
	a.calls++
	a.cmd = cmd
	if a.err != nil {
		return nil, a.err
	}
	return &auth.Account{ID: "valid_id", Name: "valid_name", Email: "valid_email", Password: "valid_password"}, nil
}

func makeSut() (*Controller, *emailValidatorStub, *addAccountSpy) {
	emailValidator := &emailValidatorStub{result: true}
	addAccount := &addAccountSpy{}
	return NewController(emailValidator, addAccount, nil), emailValidator, addAccount
}

func str(s string) *string { return &s }

func validRequest() SignupRequest {
	return SignupRequest{
		Name:                 str("valid_name"),
		Email:                str("valid_email"),
		Password:             str("valid_password"),
		PasswordConfirmation: str("valid_password"),
	}
}

func TestController_MissingParams(t *testing.T) {
	tests := []struct {
		param string
		strip func(*SignupRequest)
	}{
		{"name", func(r *SignupRequest) { r.Name = nil }},
		{"email", func(r *SignupRequest) { r.Email = nil }},
		{"password", func(r *SignupRequest) { r.Password = nil }},
		{"passwordConfirmation", func(r *SignupRequest) { r.PasswordConfirmation = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			sut, emailValidator, addAccount := makeSut()
			req := validRequest()
			tt.strip(&req)

			res := sut.Handle(context.Background(), req)

			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.Equal(t, &MissingParamError{Param: tt.param}, res.Body)
			assert.Zero(t, emailValidator.calls)
			assert.Zero(t, addAccount.calls)
		})
	}
}

func TestController_ReturnsBadRequestForInvalidEmail(t *testing.T) {
	sut, emailValidator, addAccount := makeSut()
	emailValidator.result = false
	req := validRequest()
	req.Email = str("invalid_email")

	res := sut.Handle(context.Background(), req)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, &InvalidParamError{Param: "email"}, res.Body)
	assert.Zero(t, addAccount.calls)
}

func TestController_ReturnsBadRequestWhenConfirmationFails(t *testing.T) {
	sut, emailValidator, _ := makeSut()
	req := validRequest()
	req.PasswordConfirmation = str("different_valid_password")

	res := sut.Handle(context.Background(), req)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, &InvalidParamError{Param: "passwordConfirmation"}, res.Body)
	assert.Zero(t, emailValidator.calls)
}

func TestController_ServerErrors(t *testing.T) {
	t.Run("email validator fails", func(t *testing.T) {
		sut, emailValidator, addAccount := makeSut()
		emailValidator.err = errors.New("validator exploded")

		res := sut.Handle(context.Background(), validRequest())

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Equal(t, &ServerError{}, res.Body)
		assert.Zero(t, addAccount.calls)
	})

	t.Run("add account fails", func(t *testing.T) {
		sut, _, addAccount := makeSut()
		addAccount.err = errors.New("db down")

		res := sut.Handle(context.Background(), validRequest())

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Equal(t, &ServerError{}, res.Body)
		assert.NotContains(t, res.Body.(error).Error(), "db down")
	})
}

func TestController_CallsCollaboratorsWithCorrectValues(t *testing.T) {
	sut, emailValidator, addAccount := makeSut()

	sut.Handle(context.Background(), validRequest())

	assert.Equal(t, "valid_email", emailValidator.email)
	assert.Equal(t, 1, addAccount.calls)
	assert.Equal(t, auth.AddAccountCommand{Name: "valid_name", Email: "valid_email", Password: "valid_password"}, addAccount.cmd)
}

func TestController_ReturnsCreatedOnValidData(t *testing.T) {
	sut, _, _ := makeSut()

	res := sut.Handle(context.Background(), validRequest())

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, &auth.Account{ID: "valid_id", Name: "valid_name", Email: "valid_email", Password: "valid_password"}, res.Body)
}
