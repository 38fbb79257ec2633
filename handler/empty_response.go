package handler

import "net/http"

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty answers with 204 No Content, used when a check passed and the
// client has nothing to do.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus answers with status and no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}
