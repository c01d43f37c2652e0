package jobrequests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoncore/BookingSystem/internal/domain"
	requestRepo "github.com/akoncore/BookingSystem/internal/infra/storage/jobrequest"
	"github.com/akoncore/BookingSystem/internal/integrations/directory"
	"github.com/akoncore/BookingSystem/internal/integrations/notifier"
	"github.com/akoncore/BookingSystem/internal/service/jobrequests/models"
	"github.com/akoncore/BookingSystem/pkg/ptr"
)

type fakeRequestRepo struct {
	request   *domain.MasterJobRequest
	createErr error
	reviewOK  bool

	deletedRejected bool
	created         *domain.MasterJobRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, req *domain.MasterJobRequest) (*domain.MasterJobRequest, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	req.ID = 17
	f.created = req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.MasterJobRequest, error) {
	if f.request == nil || f.request.ID != id {
		return nil, requestRepo.ErrRequestNotFound
	}
	copied := *f.request
	return &copied, nil
}

func (f *fakeRequestRepo) DeleteRejected(_ context.Context, _, _ int64) error {
	f.deletedRejected = true
	return nil
}

func (f *fakeRequestRepo) Review(_ context.Context, _ int64, to domain.JobRequestStatus, _ int64, _ *string, _ time.Time) (bool, error) {
	if f.reviewOK {
		f.request.Status = to
		f.reviewOK = false
		return true, nil
	}
	return false, nil
}

type fakeDirectory struct {
	salonErr error
}

func (f *fakeDirectory) GetSalon(_ context.Context, salonID int64) (*directory.Salon, error) {
	if f.salonErr != nil {
		return nil, f.salonErr
	}
	return &directory.Salon{ID: salonID, Name: "Neon"}, nil
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

var (
	master = domain.Actor{ID: 20, Role: domain.RoleMaster}
	admin  = domain.Actor{ID: 1, Role: domain.RoleAdmin}
	client = domain.Actor{ID: 10, Role: domain.RoleClient}
)

func newTestService(repo *fakeRequestRepo, dir *fakeDirectory, n *fakeNotifier) *Service {
	svc := NewService(repo, dir, n, nopLogger{})
	svc.timeProvider = &fixedClock{now: time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)}
	return svc
}

func TestCreate(t *testing.T) {
	repo := &fakeRequestRepo{}
	n := &fakeNotifier{}
	svc := newTestService(repo, &fakeDirectory{}, n)

	resp, err := svc.Create(context.Background(), master, &models.CreateRequest{
		SalonID:         3,
		Specialization:  ptr.Ptr("colorist"),
		ExperienceYears: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(17), resp.ID)
	assert.Equal(t, int64(20), resp.MasterID)
	assert.Equal(t, int64(3), resp.SalonID)
	assert.Equal(t, "pending", resp.Status)

	// место отклоненной заявки освобождается перед вставкой
	assert.True(t, repo.deletedRejected)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.JobRequestPending, repo.created.Status)

	require.Len(t, n.events, 1)
	assert.Equal(t, notifier.EventJobRequestCreated, n.events[0].Type)
}

func TestCreate_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeRequestRepo{}, &fakeDirectory{}, &fakeNotifier{})

	for _, actor := range []domain.Actor{client, admin} {
		_, err := svc.Create(context.Background(), actor, &models.CreateRequest{SalonID: 3})
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
}

func TestCreate_SalonNotFound(t *testing.T) {
	dir := &fakeDirectory{salonErr: directory.ErrSalonNotFound}
	svc := newTestService(&fakeRequestRepo{}, dir, &fakeNotifier{})

	_, err := svc.Create(context.Background(), master, &models.CreateRequest{SalonID: 99})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestCreate_Duplicate(t *testing.T) {
	repo := &fakeRequestRepo{createErr: requestRepo.ErrDuplicateRequest}
	svc := newTestService(repo, &fakeDirectory{}, &fakeNotifier{})

	_, err := svc.Create(context.Background(), master, &models.CreateRequest{SalonID: 3})
	assert.ErrorIs(t, err, ErrDuplicateRequest)
}

func TestCreate_MissingSalon(t *testing.T) {
	svc := newTestService(&fakeRequestRepo{}, &fakeDirectory{}, &fakeNotifier{})

	_, err := svc.Create(context.Background(), master, &models.CreateRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func pendingRequest() *domain.MasterJobRequest {
	return &domain.MasterJobRequest{
		ID:       17,
		MasterID: 20,
		SalonID:  3,
		Status:   domain.JobRequestPending,
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeRequestRepo{request: pendingRequest()}
	svc := newTestService(repo, &fakeDirectory{}, &fakeNotifier{})

	resp, err := svc.GetByID(context.Background(), master, 17)
	require.NoError(t, err)
	assert.Equal(t, int64(17), resp.ID)

	_, err = svc.GetByID(context.Background(), admin, 17)
	assert.NoError(t, err)

	otherMaster := domain.Actor{ID: 21, Role: domain.RoleMaster}
	_, err = svc.GetByID(context.Background(), otherMaster, 17)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), admin, 99)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestReview_Approve(t *testing.T) {
	repo := &fakeRequestRepo{request: pendingRequest(), reviewOK: true}
	n := &fakeNotifier{}
	svc := newTestService(repo, &fakeDirectory{}, n)

	resp, err := svc.Review(context.Background(), admin, 17, &models.ReviewRequest{Approve: true})
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, int64(1), *resp.ReviewedBy)
	assert.NotNil(t, resp.ReviewedAt)

	require.Len(t, n.events, 1)
	assert.Equal(t, notifier.EventJobRequestReviewed, n.events[0].Type)
	assert.Equal(t, int64(20), n.events[0].RecipientID)
	assert.Contains(t, n.events[0].Message, "approved")
}

func TestReview_RejectRequiresReason(t *testing.T) {
	repo := &fakeRequestRepo{request: pendingRequest(), reviewOK: true}
	svc := newTestService(repo, &fakeDirectory{}, &fakeNotifier{})

	_, err := svc.Review(context.Background(), admin, 17, &models.ReviewRequest{Approve: false})
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.Review(context.Background(), admin, 17, &models.ReviewRequest{Approve: false, RejectionReason: ptr.Ptr("no open positions")})
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "no open positions", *resp.RejectionReason)
}

func TestReview_OnlyOnce(t *testing.T) {
	repo := &fakeRequestRepo{request: pendingRequest(), reviewOK: true}
	svc := newTestService(repo, &fakeDirectory{}, &fakeNotifier{})

	_, err := svc.Review(context.Background(), admin, 17, &models.ReviewRequest{Approve: true})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), admin, 17, &models.ReviewRequest{Approve: true})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestReview_ConcurrentLoser(t *testing.T) {
	// CAS не прошел, хотя прочитанная заявка еще была pending
	repo := &fakeRequestRepo{request: pendingRequest(), reviewOK: false}
	svc := newTestService(repo, &fakeDirectory{}, &fakeNotifier{})

	_, err := svc.Review(context.Background(), admin, 17, &models.ReviewRequest{Approve: true})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestReview_AccessDenied(t *testing.T) {
	repo := &fakeRequestRepo{request: pendingRequest(), reviewOK: true}
	svc := newTestService(repo, &fakeDirectory{}, &fakeNotifier{})

	for _, actor := range []domain.Actor{client, master} {
		_, err := svc.Review(context.Background(), actor, 17, &models.ReviewRequest{Approve: true})
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
}
