package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"newsapi/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

var integerID = regexp.MustCompile(`^-?[0-9]+$`)

// pathID reads a numeric path variable. Anything that is not a 32-bit integer is a bad request.
func pathID(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	if !integerID.MatchString(raw) {
		return 0, apperr.BadRequest(fmt.Errorf("%s %q is not an integer", name, raw))
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperr.BadRequest(fmt.Errorf("%s %q: %w", name, raw, err))
	}
	return int(id), nil
}

// decodeBody decodes a JSON body into dst and validates its struct tags.
// Unknown fields are ignored.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest(fmt.Errorf("decode body: %w", err))
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.BadRequest(fmt.Errorf("validate body: %w", err))
	}
	return nil
}
