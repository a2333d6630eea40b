package pkg

import "errors"

// Error taxonomy recovered at the request boundary. Handlers map these to
// 404 / 401 / 403 / 400; anything else is a 500. Unauthenticated additionally
// carries a login redirect hint so clients can send the actor to the login
// flow instead of merely showing a notice.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrUnauthorized    = errors.New("insufficient rights")
	ErrValidation      = errors.New("validation failed")
)
