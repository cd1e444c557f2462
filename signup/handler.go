package signup

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/jimiolaniyan/signup/auth"
)

const SignupPath = "/api/signup"

func NewRouter(c *Controller) *httprouter.Router {
	router := httprouter.New()
	router.Handler(http.MethodPost, SignupPath, SignupHandler(c))
	router.Handler(http.MethodGet, "/healthz", HealthHandler())
	return router
}

func SignupHandler(c *Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeSignupRequest(r.Body)
		if err != nil {
			encodeResponse(w, badRequest(&InvalidParamError{Param: "body"}))
			return
		}

		res := c.Handle(r.Context(), req)
		if acc, ok := res.Body.(*auth.Account); ok {
			loc := strings.TrimSuffix(r.URL.Path, "/")
			w.Header().Set("Location", fmt.Sprintf("%s/%s", loc, acc.ID))
		}
		encodeResponse(w, res)
	})
}

func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encodeResponse(w, Response{StatusCode: http.StatusOK, Body: map[string]string{"status": "ok"}})
	})
}

func encodeResponse(w http.ResponseWriter, res Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_ = json.NewEncoder(w).Encode(res.Body)
}

func decodeSignupRequest(body io.ReadCloser) (SignupRequest, error) {
	req := SignupRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return SignupRequest{}, err
	}
	return req, nil
}
