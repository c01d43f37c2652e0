package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoncore/BookingSystem/internal/domain"
	bookingRepo "github.com/akoncore/BookingSystem/internal/infra/storage/booking"
	"github.com/akoncore/BookingSystem/internal/integrations/notifier"
	"github.com/akoncore/BookingSystem/internal/integrations/payments"
	"github.com/akoncore/BookingSystem/internal/service/bookings/models"
	paymentModels "github.com/akoncore/BookingSystem/internal/service/payments/models"
	"github.com/akoncore/BookingSystem/pkg/ptr"
	"github.com/akoncore/BookingSystem/pkg/types"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking

	transitionOK  bool
	cancelOK      bool
	bulkUpdated   int64
	err           error
	deleteErr     error
	transitionErr error

	transitions int
	lastFrom    []domain.BookingStatus
	lastTo      domain.BookingStatus
	lastNotes   string
	deletedID   int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.list, f.err
}

func (f *fakeBookingRepo) TransitionStatus(_ context.Context, _ int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error) {
	if f.transitionErr != nil {
		return false, f.transitionErr
	}
	f.transitions++
	f.lastFrom = from
	f.lastTo = to
	if f.transitionOK {
		f.booking.Status = to
		f.transitionOK = false // второй такой же переход уже не пройдет
		return true, nil
	}
	return false, nil
}

func (f *fakeBookingRepo) CancelWithNotes(_ context.Context, _ int64, from []domain.BookingStatus, notes string, cancelledAt time.Time) (bool, error) {
	f.lastFrom = from
	f.lastNotes = notes
	if f.cancelOK {
		f.booking.Status = domain.StatusCancelled
		f.booking.Notes = &notes
		f.booking.CancelledAt = &cancelledAt
		return true, nil
	}
	return false, nil
}

func (f *fakeBookingRepo) BulkTransitionStatus(_ context.Context, _ []int64, _ []domain.BookingStatus, _ domain.BookingStatus) (int64, error) {
	return f.bulkUpdated, f.err
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakePolicy struct {
	split paymentModels.Split
	quote paymentModels.RefundQuote
	err   error
}

func (f *fakePolicy) Split(_ float64) paymentModels.Split { return f.split }

func (f *fakePolicy) Quote(_ *domain.Booking) (paymentModels.RefundQuote, error) {
	return f.quote, f.err
}

type fakePaymentClient struct {
	payouts []payments.PayoutRequest
	refunds []payments.RefundRequest
	err     error
}

func (f *fakePaymentClient) SubmitPayout(_ context.Context, req payments.PayoutRequest) (*payments.PayoutAck, error) {
	f.payouts = append(f.payouts, req)
	if f.err != nil {
		return nil, f.err
	}
	return &payments.PayoutAck{PayoutID: "p-1", Status: "accepted"}, nil
}

func (f *fakePaymentClient) SubmitRefund(_ context.Context, req payments.RefundRequest) (*payments.RefundAck, error) {
	f.refunds = append(f.refunds, req)
	if f.err != nil {
		return nil, f.err
	}
	return &payments.RefundAck{RefundID: "r-1", Status: "accepted"}, nil
}

type fakeNotifier struct {
	events []notifier.Event
}

func (f *fakeNotifier) Notify(_ context.Context, event notifier.Event) {
	f.events = append(f.events, event)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	repo     *fakeBookingRepo
	policy   *fakePolicy
	client   *fakePaymentClient
	notifier *fakeNotifier
	svc      *Service
}

func newTestEnv(booking *domain.Booking) *testEnv {
	env := &testEnv{
		repo: &fakeBookingRepo{booking: booking, transitionOK: true, cancelOK: true},
		policy: &fakePolicy{
			split: paymentModels.Split{TotalPrice: 5000, MasterAmount: 3500, SalonAmount: 1500},
			quote: paymentModels.RefundQuote{CanCancel: true, RefundAmount: 5000, RefundPercent: 100},
		},
		client:   &fakePaymentClient{},
		notifier: &fakeNotifier{},
	}
	env.svc = NewService(env.repo, env.policy, env.client, env.notifier, nopLogger{})
	env.svc.timeProvider = &fixedClock{now: time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)}
	return env
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              42,
		BookingCode:     "BK-ABCDEF1234",
		ClientID:        10,
		MasterID:        20,
		SalonID:         3,
		AppointmentDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		AppointmentTime: types.TimeString("11:00"),
		ServiceIDs:      []int64{1, 2},
		ServiceNames:    []string{"Haircut", "Styling"},
		TotalPrice:      5000,
		Status:          status,
	}
}

var (
	client      = domain.Actor{ID: 10, Role: domain.RoleClient}
	master      = domain.Actor{ID: 20, Role: domain.RoleMaster}
	admin       = domain.Actor{ID: 1, Role: domain.RoleAdmin}
	otherClient = domain.Actor{ID: 11, Role: domain.RoleClient}
	otherMaster = domain.Actor{ID: 21, Role: domain.RoleMaster}
)

func TestGetByID(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusPending))

	for _, actor := range []domain.Actor{client, master, admin} {
		resp, err := env.svc.GetByID(context.Background(), actor, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "BK-ABCDEF1234", resp.BookingCode)
		assert.Equal(t, "2025-10-15", resp.AppointmentDate)
		assert.Equal(t, "11:00", resp.AppointmentTime)
	}
}

func TestGetByID_AccessDenied(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusPending))

	_, err := env.svc.GetByID(context.Background(), otherClient, 42)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusPending))

	_, err := env.svc.GetByID(context.Background(), admin, 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetClientBookings(t *testing.T) {
	env := newTestEnv(nil)
	env.repo.list = []*domain.Booking{testBooking(domain.StatusCompleted)}

	resp, err := env.svc.GetClientBookings(context.Background(), client, 10, &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = env.svc.GetClientBookings(context.Background(), otherClient, 10, &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = env.svc.GetClientBookings(context.Background(), admin, 10, &models.ListBookingsRequest{})
	assert.NoError(t, err)
}

func TestGetClientBookings_InvalidStatus(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.svc.GetClientBookings(context.Background(), client, 10, &models.ListBookingsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetMasterBookings(t *testing.T) {
	env := newTestEnv(nil)
	env.repo.list = []*domain.Booking{testBooking(domain.StatusConfirmed)}

	resp, err := env.svc.GetMasterBookings(context.Background(), master, 20, &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = env.svc.GetMasterBookings(context.Background(), otherMaster, 20, &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestConfirm(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusPending))

	resp, err := env.svc.Confirm(context.Background(), master, 42)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, []domain.BookingStatus{domain.StatusPending}, env.repo.lastFrom)
	assert.Equal(t, domain.StatusConfirmed, env.repo.lastTo)

	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, notifier.EventBookingConfirmed, env.notifier.events[0].Type)
	assert.Equal(t, int64(10), env.notifier.events[0].RecipientID)
}

func TestConfirm_AccessDenied(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusPending))

	for _, actor := range []domain.Actor{client, admin, otherMaster} {
		_, err := env.svc.Confirm(context.Background(), actor, 42)
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
}

func TestConfirm_ConcurrentLoser(t *testing.T) {
	// из двух одинаковых переходов второй упирается в CAS и получает
	// сообщение с актуальным статусом
	env := newTestEnv(testBooking(domain.StatusPending))

	_, err := env.svc.Confirm(context.Background(), master, 42)
	require.NoError(t, err)

	_, err = env.svc.Confirm(context.Background(), master, 42)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), `cannot confirm: current status is "confirmed", only "pending" can be confirmed`)
}

func TestComplete(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))

	resp, err := env.svc.Complete(context.Background(), master, 42)
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Booking.Status)
	assert.Equal(t, 3500.0, resp.Payout.MasterAmount)
	assert.Equal(t, 1500.0, resp.Payout.SalonAmount)

	require.Len(t, env.client.payouts, 1)
	payout := env.client.payouts[0]
	assert.Equal(t, int64(42), payout.BookingID)
	assert.Equal(t, int64(20), payout.MasterID)
	assert.Equal(t, int64(3), payout.SalonID)
	assert.Equal(t, 3500.0, payout.MasterAmount)

	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, notifier.EventBookingCompleted, env.notifier.events[0].Type)
}

func TestComplete_PayoutFailureDoesNotRollBack(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))
	env.client.err = assert.AnError

	resp, err := env.svc.Complete(context.Background(), master, 42)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Booking.Status)
	assert.Len(t, env.client.payouts, 1)
}

func TestComplete_FromPending(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusPending))
	env.repo.transitionOK = false

	_, err := env.svc.Complete(context.Background(), master, 42)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), `cannot complete: current status is "pending", only "confirmed" can be completed`)
	assert.Empty(t, env.client.payouts)
}

func TestCancel(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))

	resp, err := env.svc.Cancel(context.Background(), client, 42, &models.CancelBookingRequest{Reason: "plans changed"})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Booking.Status)
	assert.Equal(t, 5000.0, resp.Refund.RefundAmount)
	require.NotNil(t, resp.Booking.CancelledAt)

	assert.Contains(t, env.repo.lastNotes, "Cancelled by: client")
	assert.Contains(t, env.repo.lastNotes, "Refund: 5000.00")
	assert.Contains(t, env.repo.lastNotes, "Reason: plans changed")

	require.Len(t, env.client.refunds, 1)
	assert.Equal(t, 5000.0, env.client.refunds[0].RefundAmount)
	assert.Equal(t, int64(10), env.client.refunds[0].ClientID)

	// уведомляются и клиент, и мастер
	require.Len(t, env.notifier.events, 2)
	assert.Equal(t, int64(10), env.notifier.events[0].RecipientID)
	assert.Equal(t, int64(20), env.notifier.events[1].RecipientID)
}

func TestCancel_PreservesExistingNotes(t *testing.T) {
	booking := testBooking(domain.StatusPending)
	booking.Notes = ptr.Ptr("Allergic to ammonia dye")
	env := newTestEnv(booking)

	_, err := env.svc.Cancel(context.Background(), admin, 42, &models.CancelBookingRequest{})
	require.NoError(t, err)

	assert.Contains(t, env.repo.lastNotes, "Allergic to ammonia dye")
	assert.Contains(t, env.repo.lastNotes, "Cancelled by: admin")
}

func TestCancel_ZeroRefundSkipsPaymentService(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))
	env.policy.quote = paymentModels.RefundQuote{CanCancel: true, RefundAmount: 0, Reason: "cancelled less than 24 hours before appointment"}

	_, err := env.svc.Cancel(context.Background(), client, 42, &models.CancelBookingRequest{})
	require.NoError(t, err)
	assert.Empty(t, env.client.refunds)
}

func TestCancel_TerminalStatus(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusCompleted))
	env.policy.quote = paymentModels.RefundQuote{CanCancel: false, Reason: "booking is already completed"}

	_, err := env.svc.Cancel(context.Background(), admin, 42, &models.CancelBookingRequest{})
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), `current status is "completed"`)
}

func TestCancel_AccessDenied(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusPending))

	for _, actor := range []domain.Actor{otherClient, otherMaster} {
		_, err := env.svc.Cancel(context.Background(), actor, 42, &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
}

func TestCancellationPreview(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusConfirmed))

	quote, err := env.svc.CancellationPreview(context.Background(), client, 42)
	require.NoError(t, err)
	assert.True(t, quote.CanCancel)
	assert.Equal(t, 5000.0, quote.RefundAmount)

	// предпросмотр ничего не меняет
	assert.Equal(t, 0, env.repo.transitions)
	assert.Empty(t, env.client.refunds)
	assert.Empty(t, env.notifier.events)

	_, err = env.svc.CancellationPreview(context.Background(), otherClient, 42)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestBulkTransition(t *testing.T) {
	env := newTestEnv(nil)
	env.repo.bulkUpdated = 3

	resp, err := env.svc.BulkTransition(context.Background(), admin, domain.ActionCancel, &models.BulkTransitionRequest{
		BookingIDs: []int64{1, 2, 3, 4, 5},
	})
	require.NoError(t, err)

	// бронирования в неподходящем статусе молча пропущены
	assert.Equal(t, 5, resp.RequestedCount)
	assert.Equal(t, int64(3), resp.UpdatedCount)
}

func TestBulkTransition_Validation(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.svc.BulkTransition(context.Background(), master, domain.ActionCancel, &models.BulkTransitionRequest{BookingIDs: []int64{1}})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = env.svc.BulkTransition(context.Background(), admin, "reopen", &models.BulkTransitionRequest{BookingIDs: []int64{1}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.BulkTransition(context.Background(), admin, domain.ActionConfirm, &models.BulkTransitionRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooMany := make([]int64, domain.MaxBulkBookingIDs+1)
	_, err = env.svc.BulkTransition(context.Background(), admin, domain.ActionConfirm, &models.BulkTransitionRequest{BookingIDs: tooMany})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(testBooking(domain.StatusCancelled))

	require.NoError(t, env.svc.Delete(context.Background(), admin, 42))
	assert.Equal(t, int64(42), env.repo.deletedID)

	assert.ErrorIs(t, env.svc.Delete(context.Background(), client, 42), ErrAccessDenied)
	assert.ErrorIs(t, env.svc.Delete(context.Background(), master, 42), ErrAccessDenied)
}

func TestDelete_NotFound(t *testing.T) {
	env := newTestEnv(nil)
	env.repo.deleteErr = bookingRepo.ErrBookingNotFound

	assert.ErrorIs(t, env.svc.Delete(context.Background(), admin, 99), ErrBookingNotFound)
}
