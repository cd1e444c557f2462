package signup

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/jimiolaniyan/signup/auth"
)

// Response is the status code and body produced for one signup request.
// Body is an *auth.Account on success and one of the param errors or
// *ServerError otherwise.
type Response struct {
	StatusCode int
	Body       interface{}
}

// Controller turns a SignupRequest into a Response.
type Controller struct {
	emailValidator EmailValidator
	addAccount     auth.AddAccount
	logger         *slog.Logger
}

// NewController constructs a Controller. A nil logger discards output.
func NewController(emailValidator EmailValidator, addAccount auth.AddAccount, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{emailValidator: emailValidator, addAccount: addAccount, logger: logger}
}

// Handle validates req, then creates the account. Validation failures give
// 400; any collaborator failure gives 500 with an opaque ServerError.
func (c *Controller) Handle(ctx context.Context, req SignupRequest) Response {
	if err := ValidateRequest(req); err != nil {
		return badRequest(err)
	}

	valid, err := c.emailValidator.IsValid(*req.Email)
	if err != nil {
		c.logger.Error("email validation failed", "error", err)
		return serverError()
	}
	if !valid {
		return badRequest(&InvalidParamError{Param: "email"})
	}

	acc, err := c.addAccount.Add(ctx, auth.AddAccountCommand{
		Name:     *req.Name,
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		c.logger.Error("add account failed", "error", err)
		return serverError()
	}

	c.logger.Info("account created", "account_id", acc.ID)
	return created(acc)
}

func badRequest(err error) Response {
	return Response{StatusCode: http.StatusBadRequest, Body: err}
}

func serverError() Response {
	return Response{StatusCode: http.StatusInternalServerError, Body: &ServerError{}}
}

func created(acc *auth.Account) Response {
	return Response{StatusCode: http.StatusCreated, Body: acc}
}
