package booking

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

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"booking_code",
	"client_id",
	"master_id",
	"salon_id",
	"appointment_date",
	"appointment_time",
	"service_ids",
	"service_names",
	"total_price",
	"status",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Частичный уникальный индекс uq_bookings_active_slot гарантирует не более
// одного активного бронирования на (master, date, time); нарушение индекса
// транслируется в ErrSlotTaken и никогда не отдается наружу как сырая ошибка БД.
// Если в контексте передана активная транзакция, используется она.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_code",
			"client_id",
			"master_id",
			"salon_id",
			"appointment_date",
			"appointment_time",
			"service_ids",
			"service_names",
			"total_price",
			"status",
			"notes",
		).
		Values(
			b.BookingCode,
			b.ClientID,
			b.MasterID,
			b.SalonID,
			b.AppointmentDate,
			b.AppointmentTime,
			pq.Array(b.ServiceIDs),
			pq.Array(b.ServiceNames),
			b.TotalPrice,
			b.Status,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...))
}

// HasActiveAt проверяет, занято ли точное время активным бронированием мастера.
// Совпадение только по точному времени начала; пересечения интервалов не
// учитываются. Внутри транзакции создания найденная строка блокируется
// (FOR UPDATE) до её завершения.
func (r *Repository) HasActiveAt(ctx context.Context, masterID int64, date time.Time, at string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"master_id":        masterID,
			"appointment_date": date,
			"appointment_time": at,
		}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - scan: %v", ErrScanRow, err)
	}
	return true, nil
}

// ListWithFilter получает бронирования с гибкой фильтрацией.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.MasterID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"master_id": *filter.MasterID})
	}
	if filter.SalonID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"salon_id": *filter.SalonID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.DateTo})
	}

	switch {
	case filter.Status != nil:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	case filter.OnlyActive:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)})
	case filter.OnlyCompleted:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(domain.StatusCompleted)})
	}

	if filter.Date != nil {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("appointment_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, appointment_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// BookedTimes возвращает времена начала активных бронирований мастера на дату
func (r *Repository) BookedTimes(ctx context.Context, masterID int64, date time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("appointment_time").
		From("bookings").
		Where(squirrel.Eq{
			"master_id":        masterID,
			"appointment_date": date,
		}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		OrderBy("appointment_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: BookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// TransitionStatus атомарно переводит бронирование из одного из допустимых
// исходных статусов в целевой (compare-and-set). Возвращает true, если строка
// была обновлена; false означает, что текущий статус не входит в from — два
// одновременных одинаковых перехода дают ровно один успех.
func (r *Repository) TransitionStatus(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(from)}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: TransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: TransitionStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: TransitionStatus - get rows affected: %v", ErrExecQuery, err)
	}

	return affected > 0, nil
}

// CancelWithNotes атомарно отменяет бронирование: тот же compare-and-set по
// статусу плюс запись метаданных отмены в notes и cancelled_at
func (r *Repository) CancelWithNotes(ctx context.Context, id int64, from []domain.BookingStatus, notes string, cancelledAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("notes", notes).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(from)}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CancelWithNotes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CancelWithNotes - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CancelWithNotes - get rows affected: %v", ErrExecQuery, err)
	}

	return affected > 0, nil
}

// BulkTransitionStatus переводит все бронирования из списка, находящиеся в
// допустимом исходном статусе, в целевой. Неподходящие строки пропускаются
// без ошибки; возвращается только количество обновленных.
func (r *Repository) BulkTransitionStatus(ctx context.Context, ids []int64, from []domain.BookingStatus, to domain.BookingStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"status": statusStrings(from)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: BulkTransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: BulkTransitionStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkTransitionStatus - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// Delete удаляет бронирование (физическое удаление, административный сценарий,
// в обход машины состояний)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в domain.Booking
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime
	var serviceIDs pq.Int64Array
	var serviceNames pq.StringArray

	err := row.Scan(
		&b.ID,
		&b.BookingCode,
		&b.ClientID,
		&b.MasterID,
		&b.SalonID,
		&b.AppointmentDate,
		&b.AppointmentTime,
		&serviceIDs,
		&serviceNames,
		&b.TotalPrice,
		&b.Status,
		&b.Notes,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan row: %v", ErrScanRow, err)
	}

	b.ServiceIDs = serviceIDs
	b.ServiceNames = serviceNames
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
