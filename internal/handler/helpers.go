package handler

import (
	"errors"
	"net/http"

	"github.com/Yvaloski/MyDeskApp/internal/domain"
	"github.com/Yvaloski/MyDeskApp/internal/httputil"
)

// handleError converts domain errors to the stable error envelope.
// Structural errors (not-found, invalid target, cyclic move) arrive
// here unchanged from the service layer; only transient and unexpected
// failures collapse to opaque 500s.
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondFail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTarget):
		httputil.RespondFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCyclicMove):
		httputil.RespondFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondFail(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrTransient):
		httputil.RespondError(w, http.StatusInternalServerError, "temporary storage failure, retry the request")
	case errors.As(err, &httpErr):
		httputil.RespondFail(w, httpErr.StatusCode(), httpErr.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
