package create_booking

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("create_booking: master not found")

	// ErrMasterNotApproved возвращается, когда мастер не прошел модерацию
	ErrMasterNotApproved = errors.New("create_booking: master is not approved")

	// ErrMasterHasNoSalon возвращается, когда мастер не привязан к салону
	ErrMasterHasNoSalon = errors.New("create_booking: master is not attached to a salon")

	// ErrServiceNotFound возвращается, когда одна из услуг не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceWrongSalon возвращается, когда услуга принадлежит другому салону
	ErrServiceWrongSalon = errors.New("create_booking: service belongs to another salon")

	// ErrMasterNotAvailable возвращается, когда время вне рабочего графика мастера
	ErrMasterNotAvailable = errors.New("create_booking: master is not available at this time")

	// ErrSlotNotAvailable возвращается, когда слот уже занят активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidDate возвращается при попытке бронирования на прошедшие дату или время
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrAccessDenied возвращается, когда бронирование создает не клиент
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
