package response

// ErrorResponse is the generic failure body returned by every API
// route. Callers get no more detail than this; specifics are logged
// server-side.
type ErrorResponse struct {
	// example: Failed to fetch streams
	Error string `json:"error"`
}
