package lunchbreak

import "errors"

var (
	// ErrLunchBreakNotFound возвращается, когда у специалиста нет обеда
	ErrLunchBreakNotFound = errors.New("lunchbreak.repository: lunch break not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("lunchbreak.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("lunchbreak.repository: failed to execute query")
)
