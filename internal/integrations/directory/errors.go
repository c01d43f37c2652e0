package directory

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден в справочнике
	ErrMasterNotFound = errors.New("master not found")

	// ErrSalonNotFound возвращается, когда салон не найден в справочнике
	ErrSalonNotFound = errors.New("salon not found")

	// ErrServiceNotFound возвращается, когда одна из запрошенных услуг не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("directory client: invalid response")
)
