package domain

// Service is a legal service offered by the firm
type Service struct {
	ID          int64
	Name        string
	Description *string
}
