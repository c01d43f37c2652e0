package jobrequest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/pkg/dbmetrics"
	"github.com/akoncore/BookingSystem/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var requestColumns = []string{
	"id",
	"master_id",
	"salon_id",
	"specialization",
	"experience_years",
	"bio",
	"offered_services",
	"status",
	"rejection_reason",
	"reviewed_by",
	"reviewed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок мастеров на работу в салоне
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку. Нарушение уникальности (master, salon)
// транслируется в ErrDuplicateRequest.
func (r *Repository) Create(ctx context.Context, req *domain.MasterJobRequest) (*domain.MasterJobRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("master_job_requests").
		Columns(
			"master_id",
			"salon_id",
			"specialization",
			"experience_years",
			"bio",
			"offered_services",
			"status",
		).
		Values(
			req.MasterID,
			req.SalonID,
			req.Specialization,
			req.ExperienceYears,
			req.Bio,
			req.OfferedServices,
			req.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt, &updatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateRequest
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.MasterJobRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("master_job_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.MasterJobRequest
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.MasterID,
		&req.SalonID,
		&req.Specialization,
		&req.ExperienceYears,
		&req.Bio,
		&req.OfferedServices,
		&req.Status,
		&req.RejectionReason,
		&req.ReviewedBy,
		&req.ReviewedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}

// DeleteRejected удаляет отклоненную заявку пары (master, salon), чтобы мастер
// мог подать заявку повторно. Подтвержденные и ожидающие заявки не трогаются.
func (r *Repository) DeleteRejected(ctx context.Context, masterID, salonID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("master_job_requests").
		Where(squirrel.Eq{
			"master_id": masterID,
			"salon_id":  salonID,
			"status":    string(domain.JobRequestRejected),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteRejected - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteRejected - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// Review атомарно переводит заявку из pending в целевой статус рецензирования.
// Возвращает false, если заявка уже рассмотрена (тот же compare-and-set, что и
// у переходов бронирования).
func (r *Repository) Review(ctx context.Context, id int64, to domain.JobRequestStatus, reviewerID int64, rejectionReason *string, reviewedAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("master_job_requests").
		Set("status", to).
		Set("rejection_reason", rejectionReason).
		Set("reviewed_by", reviewerID).
		Set("reviewed_at", reviewedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": string(domain.JobRequestPending),
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Review - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Review - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Review - get rows affected: %v", ErrExecQuery, err)
	}

	return affected > 0, nil
}
