package apierror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// messageBody is the wire envelope for every failed request
type messageBody struct {
	Message string `json:"message"`
}

// Render writes err as a {"message": ...} JSON body with the mapped status
// code. Internal error detail never reaches the wire: the cause is logged and
// the client sees a generic message.
func Render(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = InternalWrap(err, "internal error")
	}

	message := apiErr.Message
	if apiErr.Code == ErrCodeInternal {
		slog.Error("Internal error", "err", apiErr)
		message = "internal error"
	}

	render.Status(r, apiErr.HTTPStatus())
	render.JSON(w, r, messageBody{Message: message})
}
