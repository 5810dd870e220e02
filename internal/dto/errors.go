package dto

// BaseError — корневой формат ошибки транспорта.
// Доменные отказы мутаций сюда не попадают: они возвращаются как payload с success=false.
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError — ошибка конкретного поля запроса или query-параметра.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// ValidationErrorResponse 400, Code: "validation_error"
type ValidationErrorResponse BaseError

// InternalErrorResponse 500, Code: "internal_error"
type InternalErrorResponse BaseError

// UnavailableErrorResponse 503, Code: "unavailable"
type UnavailableErrorResponse BaseError

func NewValidationError(msg string, fields []FieldError) ValidationErrorResponse {
	return ValidationErrorResponse(BaseError{Code: "validation_error", Message: msg, Fields: fields})
}
func NewInternalError(details string) InternalErrorResponse {
	return InternalErrorResponse(BaseError{Code: "internal_error", Message: "internal server error", Details: details})
}
func NewUnavailableError(details string) UnavailableErrorResponse {
	return UnavailableErrorResponse(BaseError{Code: "unavailable", Message: "service unavailable", Details: details})
}
