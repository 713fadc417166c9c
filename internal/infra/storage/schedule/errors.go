package schedule

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот расписания не найден
	ErrSlotNotFound = errors.New("schedule.repository: slot not found")

	// ErrDuplicateSlot возвращается, когда слот с таким интервалом уже существует
	ErrDuplicateSlot = errors.New("schedule.repository: duplicate slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
