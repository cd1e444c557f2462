package signup

//SignupRequest is the raw signup payload. A nil field was absent from the request.
type SignupRequest struct {
	Name                 *string `json:"name"`
	Email                *string `json:"email"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"passwordConfirmation"`
}

//ValidateRequest reports the first missing field in the order name, email,
// password, passwordConfirmation, then checks that the confirmation matches.
func ValidateRequest(req SignupRequest) error {
	required := []struct {
		param string
		value *string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"password", req.Password},
		{"passwordConfirmation", req.PasswordConfirmation},
	}

	for _, field := range required {
		if field.value == nil {
			return &MissingParamError{Param: field.param}
		}
	}

	if *req.Password != *req.PasswordConfirmation {
		return &InvalidParamError{Param: "passwordConfirmation"}
	}

	return nil
}
