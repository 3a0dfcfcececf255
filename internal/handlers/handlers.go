package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// idParam extracts the {id} route parameter. Returns 0 when missing or not
// a positive integer.
func idParam(r *http.Request) uint {
	raw := chi.URLParam(r, "id")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return uint(n)
}

// apiError carries a status + error code out of a transaction callback so
// the handler can answer with the right code instead of a blanket 500.
type apiError struct {
	status int
	code   string
}

func (e *apiError) Error() string { return e.code }
