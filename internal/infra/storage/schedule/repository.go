package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akoncore/BookingSystem/internal/domain"
	"github.com/akoncore/BookingSystem/pkg/dbmetrics"
	"github.com/akoncore/BookingSystem/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"master_id",
	"weekday",
	"start_time",
	"end_time",
	"is_working",
	"created_at",
	"updated_at",
}

// Repository репозиторий недельного расписания мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByMasterAndWeekday получает запись расписания мастера на день недели.
// Отсутствие строки — это штатный ответ "мастер не работает", поэтому
// возвращается ErrScheduleNotFound, который вызывающая сторона трактует сама.
func (r *Repository) GetByMasterAndWeekday(ctx context.Context, masterID int64, weekday int) (*domain.MasterSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("master_schedules").
		Where(squirrel.Eq{
			"master_id": masterID,
			"weekday":   weekday,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMasterAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.MasterSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.MasterID,
		&s.Weekday,
		&s.StartTime,
		&s.EndTime,
		&s.IsWorking,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMasterAndWeekday - scan schedule: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// ListByMaster получает полное недельное расписание мастера, упорядоченное по дням
func (r *Repository) ListByMaster(ctx context.Context, masterID int64) ([]*domain.MasterSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("master_schedules").
		Where(squirrel.Eq{"master_id": masterID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMaster - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMaster - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.MasterSchedule, 0, 7)
	for rows.Next() {
		var s domain.MasterSchedule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.MasterID,
			&s.Weekday,
			&s.StartTime,
			&s.EndTime,
			&s.IsWorking,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByMaster - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByMaster - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// Upsert создает или обновляет запись расписания на (master, weekday).
// Одна строка на пару обеспечивается уникальным ограничением.
func (r *Repository) Upsert(ctx context.Context, s *domain.MasterSchedule) (*domain.MasterSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("master_schedules").
		Columns(
			"master_id",
			"weekday",
			"start_time",
			"end_time",
			"is_working",
		).
		Values(
			s.MasterID,
			s.Weekday,
			s.StartTime,
			s.EndTime,
			s.IsWorking,
		).
		Suffix(`ON CONFLICT (master_id, weekday) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_working = EXCLUDED.is_working,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
