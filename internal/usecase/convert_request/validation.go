package convert_request

import "fmt"

// validateRequestID проверяет идентификатор заявки до обращения к хранилищу
func validateRequestID(req *Request) error {
	if req.RequestID <= 0 {
		return fmt.Errorf("%w: request id must be positive", ErrInvalidInput)
	}
	return nil
}

// validateConversion валидирует параметры конвертации.
// Вызывается после проверки существования и статуса заявки.
func validateConversion(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID == "" {
		return fmt.Errorf("%w: clientId must not be empty", ErrInvalidInput)
	}

	return nil
}
