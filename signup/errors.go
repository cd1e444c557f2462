package signup

import (
	"encoding/json"
	"fmt"
)

//MissingParamError reports a required request field that was not sent
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Name() string { return "MissingParamError" }

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("Missing param: %s", e.Param)
}

func (e *MissingParamError) MarshalJSON() ([]byte, error) {
	return marshalError(e.Name(), e.Error())
}

//InvalidParamError reports a field that was sent but failed a semantic check
type InvalidParamError struct {
	Param string
}

func (e *InvalidParamError) Name() string { return "InvalidParamError" }

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("Invalid param: %s", e.Param)
}

func (e *InvalidParamError) MarshalJSON() ([]byte, error) {
	return marshalError(e.Name(), e.Error())
}

// ServerError is returned to callers in place of any collaborator failure.
// It intentionally carries nothing from the failure it replaces.
type ServerError struct{}

func (e *ServerError) Name() string { return "ServerError" }

func (e *ServerError) Error() string { return "Internal server error" }

func (e *ServerError) MarshalJSON() ([]byte, error) {
	return marshalError(e.Name(), e.Error())
}

func marshalError(name, message string) ([]byte, error) {
	return json.Marshal(struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}{name, message})
}
