package request

import "github.com/fideslex/booking-service/pkg/dbmetrics"

// DBExecutor интерфейс исполнителя запросов (БД или транзакция из контекста)
type DBExecutor = dbmetrics.DBExecutor
