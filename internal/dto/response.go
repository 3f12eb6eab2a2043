package dto

// ListParams defines the common limit/offset query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// SuccessEnvelope is the uniform body for successful responses.
// Items is only set for list responses and carries the element count.
type SuccessEnvelope struct {
	Error   bool   `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Items   *int   `json:"items,omitempty"`
	Data    any    `json:"data"`
}

// ErrorEnvelope is the uniform body for failed responses. Fields carries
// per-field validation messages when binding fails.
type ErrorEnvelope struct {
	Error   bool              `json:"error"`
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// NewSuccessEnvelope builds the envelope for a single-entity response.
func NewSuccessEnvelope(status int, message string, data any) SuccessEnvelope {
	return SuccessEnvelope{Status: status, Message: message, Data: data}
}

// NewListEnvelope builds the envelope for a list response with its item count.
func NewListEnvelope(status int, message string, items int, data any) SuccessEnvelope {
	return SuccessEnvelope{Status: status, Message: message, Items: &items, Data: data}
}

// NewErrorEnvelope builds the envelope for a failed response.
func NewErrorEnvelope(status int, message string) ErrorEnvelope {
	return ErrorEnvelope{Error: true, Status: status, Message: message}
}

// NewValidationErrorEnvelope builds the envelope for a binding failure with
// per-field messages.
func NewValidationErrorEnvelope(status int, message string, fields map[string]string) ErrorEnvelope {
	return ErrorEnvelope{Error: true, Status: status, Message: message, Fields: fields}
}
