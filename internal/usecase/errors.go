package usecase

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Códigos usados pelos handlers para mapear status HTTP.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeDuplicateLead = "DUPLICATE_LEAD"
	CodeInvalidStatus = "INVALID_STATUS"
	CodeLeadNotFound  = "LEAD_NOT_FOUND"
	CodeDatabase      = "DATABASE_ERROR"
)
