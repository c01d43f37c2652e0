package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/akoncore/BookingSystem/internal/domain"
	bookingRepo "github.com/akoncore/BookingSystem/internal/infra/storage/booking"
	directoryClient "github.com/akoncore/BookingSystem/internal/integrations/directory"
	"github.com/akoncore/BookingSystem/internal/integrations/notifier"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	scheduleService ScheduleService
	directoryClient DirectoryClient
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleService ScheduleService,
	directoryClient DirectoryClient,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		scheduleService: scheduleService,
		directoryClient: directoryClient,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в сериализуемой транзакции;
// частичный уникальный индекс по активным бронированиям страхует от гонки
// двух одновременных запросов на один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, master=%d, services=%v, date=%s, time=%s",
		req.Actor.ID, req.MasterID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронирование создает только клиент, от своего имени
	if !req.Actor.IsClient() {
		uc.logger.Warn("CreateBooking: access denied for actor=%d role=%s", req.Actor.ID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	// 3. Момент записи не должен быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем мастера и определяем салон
	master, err := uc.directoryClient.GetMaster(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrMasterNotFound) {
			uc.logger.Warn("CreateBooking: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("CreateBooking: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	if !master.IsApproved {
		uc.logger.Warn("CreateBooking: master id=%d is not approved", req.MasterID)
		return nil, ErrMasterNotApproved
	}
	if master.SalonID == nil {
		uc.logger.Warn("CreateBooking: master id=%d has no salon", req.MasterID)
		return nil, ErrMasterHasNoSalon
	}
	salonID := *master.SalonID

	// 5. Получаем услуги и проверяем принадлежность салону мастера
	services, err := uc.directoryClient.GetServices(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, directoryClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: some of services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	if err := validateServicesSalon(services, salonID); err != nil {
		uc.logger.Warn("CreateBooking: service validation failed: %v", err)
		return nil, err
	}

	// Стоимость считается по актуальным ценам, названия фиксируются
	var totalPrice float64
	serviceNames := make([]string, 0, len(services))
	for _, svc := range services {
		totalPrice += svc.Price
		serviceNames = append(serviceNames, svc.Name)
	}

	var result *domain.Booking

	// 6. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Время должно попадать в рабочий график мастера
		available, err := uc.scheduleService.IsAvailable(txCtx, req.MasterID, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check schedule: %v", err)
			return fmt.Errorf("%w: failed to check schedule: %v", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("CreateBooking: master=%d not available on %s at %s",
				req.MasterID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrMasterNotAvailable
		}

		// 6.2. Слот не должен быть занят активным бронированием
		taken, err := uc.bookingRepo.HasActiveAt(txCtx, req.MasterID, req.Date, req.StartTime.String())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot %s %s already taken for master=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, req.MasterID)
			return ErrSlotNotAvailable
		}

		// 6.3. Создаем бронирование
		booking := &domain.Booking{
			BookingCode:     domain.NewBookingCode(),
			ClientID:        req.Actor.ID,
			MasterID:        req.MasterID,
			SalonID:         salonID,
			AppointmentDate: req.Date,
			AppointmentTime: req.StartTime,
			ServiceIDs:      req.ServiceIDs,
			ServiceNames:    serviceNames,
			TotalPrice:      totalPrice,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурентная вставка на тот же слот уперлась в уникальный индекс
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot lost to concurrent booking, master=%d", req.MasterID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 7. Уведомления после фиксации транзакции, сбои не влияют на результат
	message := fmt.Sprintf("Booking %s on %s at %s",
		result.BookingCode, result.AppointmentDate.Format(domain.DateFormat), result.AppointmentTime)
	uc.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventBookingCreated,
		RecipientID: result.ClientID,
		BookingID:   result.ID,
		BookingCode: result.BookingCode,
		Amount:      result.TotalPrice,
		Message:     message + " has been created",
	})
	uc.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventBookingCreated,
		RecipientID: result.MasterID,
		BookingID:   result.ID,
		BookingCode: result.BookingCode,
		Message:     message + " is waiting for your confirmation",
	})

	uc.logger.Info("CreateBooking: booking id=%d code=%s created", result.ID, result.BookingCode)
	return toResponse(result), nil
}
