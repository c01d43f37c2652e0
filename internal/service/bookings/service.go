package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akoncore/BookingSystem/internal/domain"
	bookingRepo "github.com/akoncore/BookingSystem/internal/infra/storage/booking"
	"github.com/akoncore/BookingSystem/internal/integrations/notifier"
	"github.com/akoncore/BookingSystem/internal/integrations/payments"
	"github.com/akoncore/BookingSystem/internal/service/bookings/models"
	paymentModels "github.com/akoncore/BookingSystem/internal/service/payments/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo   BookingRepository
	paymentPolicy PaymentPolicy
	paymentClient PaymentClient
	notifier      Notifier
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	paymentPolicy PaymentPolicy,
	paymentClient PaymentClient,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		paymentPolicy: paymentPolicy,
		paymentClient: paymentClient,
		notifier:      notifier,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// GetByID получает бронирование по ID.
// Видеть бронирование могут только его участники и администраторы.
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for actor=%d", id, actor.ID)

	booking, err := s.fetch(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanView(booking) {
		s.logger.Warn("GetByID: access denied for actor=%d to booking id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента.
// Клиент видит только свою историю, администратор любую.
func (s *Service) GetClientBookings(ctx context.Context, actor domain.Actor, clientID int64, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d by actor=%d", clientID, actor.ID)

	if !actor.IsAdmin() && !(actor.IsClient() && actor.ID == clientID) {
		s.logger.Warn("GetClientBookings: access denied for actor=%d to client=%d", actor.ID, clientID)
		return nil, ErrAccessDenied
	}

	filter, err := s.toDomainFilter(req)
	if err != nil {
		return nil, err
	}
	filter.ClientID = &clientID

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: fetched %d bookings for client=%d", len(bookings), clientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetMasterBookings получает бронирования мастера.
// Мастер видит только свои записи, администратор любые.
func (s *Service) GetMasterBookings(ctx context.Context, actor domain.Actor, masterID int64, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetMasterBookings: fetching bookings for master=%d by actor=%d", masterID, actor.ID)

	if !actor.IsAdmin() && !(actor.IsMaster() && actor.ID == masterID) {
		s.logger.Warn("GetMasterBookings: access denied for actor=%d to master=%d", actor.ID, masterID)
		return nil, ErrAccessDenied
	}

	filter, err := s.toDomainFilter(req)
	if err != nil {
		return nil, err
	}
	filter.MasterID = &masterID

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetMasterBookings: repository error for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: GetMasterBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMasterBookings: fetched %d bookings for master=%d", len(bookings), masterID)
	return models.FromDomainBookingList(bookings), nil
}

// Confirm переводит бронирование из pending в confirmed.
// Подтверждает только назначенный мастер.
func (s *Service) Confirm(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d by actor=%d", id, actor.ID)

	booking, err := s.fetch(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanConfirm(booking) {
		s.logger.Warn("Confirm: access denied for actor=%d to booking id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	if err := s.transition(ctx, "Confirm", booking, domain.ActionConfirm); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventBookingConfirmed,
		RecipientID: booking.ClientID,
		BookingID:   booking.ID,
		BookingCode: booking.BookingCode,
		Message: fmt.Sprintf("Your booking %s on %s at %s has been confirmed",
			booking.BookingCode, booking.AppointmentDate.Format(domain.DateFormat), booking.AppointmentTime),
	})

	s.logger.Info("Confirm: booking id=%d confirmed", id)
	return models.FromDomainBooking(booking), nil
}

// Complete переводит бронирование из confirmed в completed, считает
// распределение выручки и передает его платежному сервису.
// Завершает только назначенный мастер.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, id int64) (*models.CompleteBookingResponse, error) {
	s.logger.Info("Complete: completing booking id=%d by actor=%d", id, actor.ID)

	booking, err := s.fetch(ctx, "Complete", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanComplete(booking) {
		s.logger.Warn("Complete: access denied for actor=%d to booking id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	if err := s.transition(ctx, "Complete", booking, domain.ActionComplete); err != nil {
		return nil, err
	}

	split := s.paymentPolicy.Split(booking.TotalPrice)

	// Бронирование уже завершено, сбой выплаты не откатывает переход
	if _, err := s.paymentClient.SubmitPayout(ctx, payments.PayoutRequest{
		BookingID:    booking.ID,
		BookingCode:  booking.BookingCode,
		MasterID:     booking.MasterID,
		SalonID:      booking.SalonID,
		TotalAmount:  split.TotalPrice,
		MasterAmount: split.MasterAmount,
		SalonAmount:  split.SalonAmount,
	}); err != nil {
		s.logger.Error("Complete: payout submission failed for booking id=%d: %v", id, err)
	}

	s.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventBookingCompleted,
		RecipientID: booking.ClientID,
		BookingID:   booking.ID,
		BookingCode: booking.BookingCode,
		Amount:      booking.TotalPrice,
		Message:     fmt.Sprintf("Your booking %s has been completed", booking.BookingCode),
	})

	s.logger.Info("Complete: booking id=%d completed, master=%.2f salon=%.2f",
		id, split.MasterAmount, split.SalonAmount)

	return &models.CompleteBookingResponse{
		Booking: *models.FromDomainBooking(booking),
		Payout:  split,
	}, nil
}

// Cancel отменяет бронирование и рассчитывает возврат по действующей политике.
// Отменить могут клиент-владелец, назначенный мастер или администратор.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, id int64, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by actor=%d", id, actor.ID)

	booking, err := s.fetch(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanCancel(booking) {
		s.logger.Warn("Cancel: access denied for actor=%d to booking id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	quote, err := s.paymentPolicy.Quote(booking)
	if err != nil {
		s.logger.Error("Cancel: refund quote failed for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - refund quote: %v", ErrInternal, err)
	}
	if !quote.CanCancel {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled: %s", id, quote.Reason)
		return nil, s.transitionError(domain.ActionCancel, booking.Status)
	}

	now := s.timeProvider.Now()
	notes := s.cancellationNotes(actor, booking, quote, req.Reason, now)

	ok, err := s.bookingRepo.CancelWithNotes(ctx, id, domain.TransitionSources[domain.ActionCancel], notes, now)
	if err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	if !ok {
		// Статус изменился между чтением и обновлением
		return nil, s.refreshedTransitionError(ctx, domain.ActionCancel, id, booking.Status)
	}

	booking.Status = domain.StatusCancelled
	booking.Notes = &notes
	booking.CancelledAt = &now

	if quote.RefundAmount > 0 {
		// Отмена уже состоялась, сбой возврата не откатывает её
		if _, err := s.paymentClient.SubmitRefund(ctx, payments.RefundRequest{
			BookingID:    booking.ID,
			BookingCode:  booking.BookingCode,
			ClientID:     booking.ClientID,
			RefundAmount: quote.RefundAmount,
		}); err != nil {
			s.logger.Error("Cancel: refund submission failed for booking id=%d: %v", id, err)
		}
	}

	message := fmt.Sprintf("Booking %s on %s at %s has been cancelled",
		booking.BookingCode, booking.AppointmentDate.Format(domain.DateFormat), booking.AppointmentTime)
	s.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventBookingCancelled,
		RecipientID: booking.ClientID,
		BookingID:   booking.ID,
		BookingCode: booking.BookingCode,
		Amount:      quote.RefundAmount,
		Message:     message,
	})
	s.notifier.Notify(ctx, notifier.Event{
		Type:        notifier.EventBookingCancelled,
		RecipientID: booking.MasterID,
		BookingID:   booking.ID,
		BookingCode: booking.BookingCode,
		Message:     message,
	})

	s.logger.Info("Cancel: booking id=%d cancelled, refund=%.2f (%s)", id, quote.RefundAmount, quote.Reason)

	return &models.CancelBookingResponse{
		Booking: *models.FromDomainBooking(booking),
		Refund:  quote,
	}, nil
}

// CancellationPreview рассчитывает условия отмены без её выполнения.
// Расчёт идемпотентен и доступен участникам бронирования и администраторам.
func (s *Service) CancellationPreview(ctx context.Context, actor domain.Actor, id int64) (*paymentModels.RefundQuote, error) {
	s.logger.Info("CancellationPreview: booking id=%d for actor=%d", id, actor.ID)

	booking, err := s.fetch(ctx, "CancellationPreview", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanView(booking) {
		s.logger.Warn("CancellationPreview: access denied for actor=%d to booking id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	quote, err := s.paymentPolicy.Quote(booking)
	if err != nil {
		s.logger.Error("CancellationPreview: quote failed for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CancellationPreview - refund quote: %v", ErrInternal, err)
	}

	return &quote, nil
}

// BulkTransition массово переводит бронирования по указанному действию.
// Бронирования в неподходящем статусе молча пропускаются; возвращается
// число реально обновлённых. Доступно только администраторам.
func (s *Service) BulkTransition(ctx context.Context, actor domain.Actor, action domain.TransitionAction, req *models.BulkTransitionRequest) (*models.BulkTransitionResponse, error) {
	s.logger.Info("BulkTransition: action=%s count=%d by actor=%d", action, len(req.BookingIDs), actor.ID)

	if !actor.IsAdmin() {
		s.logger.Warn("BulkTransition: access denied for actor=%d", actor.ID)
		return nil, ErrAccessDenied
	}

	if !domain.ValidAction(action) {
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}
	if len(req.BookingIDs) == 0 {
		return nil, fmt.Errorf("%w: booking ids list is empty", ErrInvalidInput)
	}
	if len(req.BookingIDs) > domain.MaxBulkBookingIDs {
		return nil, fmt.Errorf("%w: booking ids list exceeds %d entries", ErrInvalidInput, domain.MaxBulkBookingIDs)
	}

	updated, err := s.bookingRepo.BulkTransitionStatus(ctx, req.BookingIDs, domain.TransitionSources[action], action.TargetStatus())
	if err != nil {
		s.logger.Error("BulkTransition: repository error: %v", err)
		return nil, fmt.Errorf("%w: BulkTransition - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BulkTransition: action=%s requested=%d updated=%d", action, len(req.BookingIDs), updated)
	return &models.BulkTransitionResponse{
		RequestedCount: len(req.BookingIDs),
		UpdatedCount:   updated,
	}, nil
}

// Delete физически удаляет бронирование в обход машины состояний.
// Административная операция для очистки данных.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d by actor=%d", id, actor.ID)

	if !actor.IsAdmin() {
		s.logger.Warn("Delete: access denied for actor=%d", actor.ID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

func (s *Service) fetch(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// transition выполняет compare-and-set переход статуса. Из двух конкурентных
// одинаковых переходов ровно один получает успех, второй увидит
// ErrInvalidTransition.
func (s *Service) transition(ctx context.Context, op string, booking *domain.Booking, action domain.TransitionAction) error {
	ok, err := s.bookingRepo.TransitionStatus(ctx, booking.ID, domain.TransitionSources[action], action.TargetStatus())
	if err != nil {
		s.logger.Error("%s: repository error for booking id=%d: %v", op, booking.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	if !ok {
		return s.refreshedTransitionError(ctx, action, booking.ID, booking.Status)
	}

	booking.Status = action.TargetStatus()
	return nil
}

// refreshedTransitionError перечитывает актуальный статус, чтобы сообщение
// об ошибке называло реальное состояние, а не прочитанное до гонки.
func (s *Service) refreshedTransitionError(ctx context.Context, action domain.TransitionAction, id int64, lastSeen domain.BookingStatus) error {
	current := lastSeen
	if fresh, err := s.bookingRepo.GetByID(ctx, id); err == nil {
		current = fresh.Status
	}
	return s.transitionError(action, current)
}

var actionPast = map[domain.TransitionAction]string{
	domain.ActionConfirm:  "confirmed",
	domain.ActionComplete: "completed",
	domain.ActionCancel:   "cancelled",
}

func (s *Service) transitionError(action domain.TransitionAction, current domain.BookingStatus) error {
	sources := domain.TransitionSources[action]
	quoted := make([]string, 0, len(sources))
	for _, src := range sources {
		quoted = append(quoted, fmt.Sprintf("%q", string(src)))
	}
	return fmt.Errorf("%w: cannot %s: current status is %q, only %s can be %s",
		ErrInvalidTransition, action, string(current), strings.Join(quoted, " or "), actionPast[action])
}

func (s *Service) cancellationNotes(actor domain.Actor, booking *domain.Booking, quote paymentModels.RefundQuote, reason string, now time.Time) string {
	var sb strings.Builder
	if booking.Notes != nil && *booking.Notes != "" {
		sb.WriteString(*booking.Notes)
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("Cancelled by: %s\n", actor.CancelledBy(booking)))
	sb.WriteString(fmt.Sprintf("Cancelled at: %s\n", now.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Refund: %.2f (%s)", quote.RefundAmount, quote.Reason))
	if reason != "" {
		sb.WriteString("\nReason: ")
		sb.WriteString(reason)
	}
	return sb.String()
}

func (s *Service) toDomainFilter(req *models.ListBookingsRequest) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:     req.Date,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}

	if req.Status != nil {
		status, ok := models.ToDomainBookingStatus(*req.Status)
		if !ok {
			return filter, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}
