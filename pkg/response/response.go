package response

type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorResponse is returned for validation failures that can be pinned
// to a single form field.
type FieldErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

type ListResponse struct {
	Data     any  `json:"data"`
	Degraded bool `json:"degraded,omitempty"`
}

type PageResponse struct {
	Data  any   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
