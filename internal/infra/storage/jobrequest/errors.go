package jobrequest

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("jobrequest.repository: job request not found")

	// ErrDuplicateRequest возвращается, когда активная заявка мастера в этот
	// салон уже существует
	ErrDuplicateRequest = errors.New("jobrequest.repository: job request already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("jobrequest.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("jobrequest.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("jobrequest.repository: failed to scan row")
)
