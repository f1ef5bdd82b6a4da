package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"carshare/infras/otel"
	"carshare/infras/postgres"
	"carshare/internal/domains/booking/model"
	carModel "carshare/internal/domains/car/model"
	"carshare/shared/constant"
	gDto "carshare/shared/dto"
	"carshare/shared/failure"
	"carshare/shared/logger"
	gRepo "carshare/shared/repository"
)

// bookingColumns is the insertable column set of the bookings table, used by
// the hand-written queries that run without the cars join.
const bookingColumns = `id, car_id, renter_id, start_date, end_date, daily_rate, total_days,
	subtotal, service_fee, total_amount, security_deposit, status, status_reason,
	payment_status, pickup_location, created_at, modified_at, created_by, modified_by`

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	CreateIfAvailable(ctx context.Context, booking model.Booking) ([]model.Booking, error)
	FindConflicts(ctx context.Context, carID string, start, end time.Time) ([]model.Booking, error)
	ApplyTransition(ctx context.Context, id string, mutate func(b *model.Booking) error) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateIfAvailable inserts the booking only when no blocking booking
// overlaps its date range. The car row is locked first so concurrent
// requests for the same car serialize; the calendar exclusion constraint
// backs this up at the schema level. A non-empty return with nil error means
// the insert was refused and lists the occupying bookings.
func (repo *repositoryImpl) CreateIfAvailable(ctx context.Context, booking model.Booking) (conflicts []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateIfAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Transact(ctx, func(tx *sqlx.Tx) error {
		if lockErr := repo.lockCar(ctx, tx, booking.CarID); lockErr != nil {
			return lockErr
		}

		found, findErr := repo.findConflictsTx(ctx, tx, booking.CarID, booking.StartDate, booking.EndDate)
		if findErr != nil {
			return findErr
		}

		if len(found) > 0 {
			conflicts = found

			return nil
		}

		return repo.InsertTx(ctx, tx, booking)
	})

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
			return nil, failure.Conflict("car is no longer available for the requested dates") //nolint:wrapcheck
		}

		return nil, err
	}

	return conflicts, nil
}

// FindConflicts lists the blocking bookings of a car that overlap
// [start, end), outside any transaction.
func (repo *repositoryImpl) FindConflicts(ctx context.Context, carID string, start, end time.Time) (res []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindConflicts")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, args, err := conflictQuery(carID, start, end)
	if err != nil {
		return nil, err
	}

	query = repo.db.Read.Rebind(query)

	err = repo.db.Read.SelectContext(ctx, &res, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find conflicting bookings: %w", err)
	}

	return res, nil
}

// ApplyTransition re-reads the booking under a row lock, applies mutate to
// it and persists the resulting status fields. Concurrent transitions on the
// same booking therefore observe each other's outcome.
func (repo *repositoryImpl) ApplyTransition(ctx context.Context, id string, mutate func(b *model.Booking) error) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ApplyTransition")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Transact(ctx, func(tx *sqlx.Tx) error {
		query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 FOR UPDATE", bookingColumns, model.TableName)

		getErr := tx.GetContext(ctx, &booking, query, id)
		if errors.Is(getErr, sql.ErrNoRows) {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}

		if getErr != nil {
			logger.ErrorWithStack(getErr)

			return fmt.Errorf("failed to get booking for update: %w", getErr)
		}

		if mutateErr := mutate(&booking); mutateErr != nil {
			return mutateErr
		}

		update := fmt.Sprintf(
			"UPDATE %s SET status = $1, status_reason = $2, modified_at = $3, modified_by = $4 WHERE id = $5",
			model.TableName,
		)

		_, execErr := tx.ExecContext(ctx, update, booking.Status, booking.StatusReason, booking.ModifiedAt, booking.ModifiedBy, id)
		if execErr != nil {
			logger.ErrorWithStack(execErr)

			return fmt.Errorf("failed to update booking status: %w", execErr)
		}

		return nil
	})

	return booking, err
}

func (repo *repositoryImpl) lockCar(ctx context.Context, tx *sqlx.Tx, carID string) error {
	var id string

	query := fmt.Sprintf("SELECT id FROM %s WHERE id = $1 FOR UPDATE", carModel.TableName)

	err := tx.GetContext(ctx, &id, query, carID)
	if errors.Is(err, sql.ErrNoRows) {
		return failure.NotFound("car not found") //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock car: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) findConflictsTx(ctx context.Context, tx *sqlx.Tx, carID string, start, end time.Time) ([]model.Booking, error) {
	query, args, err := conflictQuery(carID, start, end)
	if err != nil {
		return nil, err
	}

	query = tx.Rebind(query)

	var found []model.Booking

	err = tx.SelectContext(ctx, &found, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find conflicting bookings: %w", err)
	}

	return found, nil
}

// conflictQuery matches blocking bookings whose half-open [start_date,
// end_date) range intersects the candidate's. Touching ranges are not
// conflicts, so back-to-back bookings stay valid.
func conflictQuery(carID string, start, end time.Time) (string, []any, error) {
	statuses := make([]string, len(model.BlockingStatuses))
	for i, s := range model.BlockingStatuses {
		statuses[i] = s.String()
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE car_id = ? AND status IN (?) AND start_date < ? AND end_date > ? ORDER BY start_date",
		bookingColumns, model.TableName,
	)

	query, args, err := sqlx.In(query, carID, statuses, end, start)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build conflict query: %w", err)
	}

	return query, args, nil
}
