package ptr

// Ptr возвращает указатель на значение
func Ptr[T any](v T) *T {
	return &v
}

// Value разыменовывает указатель, для nil возвращает нулевое значение
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NonEmpty возвращает nil для пустой строки
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
