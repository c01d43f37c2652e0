package jobrequests

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("job request not found")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrDuplicateRequest возвращается при повторной подаче активной заявки в тот же салон
	ErrDuplicateRequest = errors.New("job request already exists for this salon")

	// ErrAlreadyReviewed возвращается при попытке повторного рассмотрения заявки
	ErrAlreadyReviewed = errors.New("job request already reviewed")

	// ErrAccessDenied возвращается, когда у актора нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
