package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.err
}

// Fail hands err to the route's ErrorHandler instead of rendering anything.
//
//	return handler.Fail(errors.Join(handler.ErrNotFound, err))
func Fail(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
