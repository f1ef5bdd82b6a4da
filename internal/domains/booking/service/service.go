package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"carshare/config"
	"carshare/infras/kafka"
	"carshare/infras/otel"
	"carshare/internal/domains/booking/model"
	"carshare/internal/domains/booking/model/dto"
	"carshare/internal/domains/booking/pricing"
	"carshare/internal/domains/booking/repository"
	carModel "carshare/internal/domains/car/model"
	carRepository "carshare/internal/domains/car/repository"
	"carshare/shared"
	"carshare/shared/cache"
	"carshare/shared/constant"
	gDto "carshare/shared/dto"
	"carshare/shared/failure"
	"carshare/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Transition(ctx context.Context, id string, req dto.TransitionRequest) (dto.BookingResponse, error)
	UpdatePaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentRequest) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo    repository.Booking
	carRepo carRepository.Car
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	kafka   kafka.Client
}

func New(
	repo repository.Booking,
	carRepo carRepository.Car,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Booking {
	return &serviceImpl{
		repo:    repo,
		carRepo: carRepo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		kafka:   kafkaClient,
	}
}

// Quote prices a booking window without reserving anything. The same window
// and car always produce the same figures while the car's rate is unchanged.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	car, err := s.bookableCar(ctx, req.CarID)
	if err != nil {
		return res, err
	}

	start, end, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	quote, err := pricing.Calculate(car.DailyRate, s.cfg.Booking.ServiceFeePercent, start, end)
	if err != nil {
		return res, err
	}

	res.FromQuote(req, car.DailyRate, quote)

	return res, nil
}

// Create reserves the car for the requested window. Pricing terms are
// snapshotted from the car before insert; the availability check and the
// insert run atomically in the store.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	renter, _ := ctx.Value(constant.ContextKeyUserID).(string)

	car, err := s.bookableCar(ctx, req.CarID)
	if err != nil {
		return res, err
	}

	if car.OwnerID == renter {
		return res, failure.BadRequestFromString("renters cannot book their own car") //nolint:wrapcheck
	}

	start, err := timezone.Parse(constant.DateOnlyFormat, req.StartDate)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	end, err := timezone.Parse(constant.DateOnlyFormat, req.EndDate)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if start.Before(timezone.Today()) {
		return res, failure.BadRequestFromString("pickup date cannot be in the past") //nolint:wrapcheck
	}

	quote, err := pricing.Calculate(car.DailyRate, s.cfg.Booking.ServiceFeePercent, start, end)
	if err != nil {
		return res, err
	}

	booking, err := req.ToModel(renter, car, quote)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	conflicts, err := s.repo.CreateIfAvailable(ctx, booking)
	if err != nil {
		log.Error().Err(err).Str("carID", req.CarID).Msg("failed to create booking")

		return res, err
	}

	if len(conflicts) > 0 {
		return res, failure.ConflictWithDetails( //nolint:wrapcheck
			"car is already booked for the requested dates",
			dto.ConflictDetailsFromModels(conflicts),
		)
	}

	booking.OwnerID = car.OwnerID
	res.FromModel(booking)

	s.publishEvent(ctx, EventBookingCreated, booking)
	s.invalidateListCaches(ctx)

	return res, nil
}

// Transition moves a booking through its lifecycle on behalf of the caller.
// The caller's role relative to the booking decides what is permitted; the
// status change itself is validated and applied under a row lock.
func (s *serviceImpl) Transition(ctx context.Context, id string, req dto.TransitionRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	to, err := model.ParseStatus(req.Status)
	if err != nil {
		return res, err
	}

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	actor, err := s.resolveActor(ctx, current)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = string(actor)
	}

	updated, err := s.repo.ApplyTransition(ctx, id, func(b *model.Booking) error {
		if transitionErr := b.Transition(to, actor, req.Reason, timezone.Today()); transitionErr != nil {
			return transitionErr
		}

		b.ModifiedAt = timezone.Now()
		b.ModifiedBy = user

		return nil
	})
	if err != nil {
		return res, err
	}

	updated.OwnerID = current.OwnerID
	res.FromModel(updated)

	s.publishEvent(ctx, EventBookingStatusChanged, updated)
	s.invalidateBookingCaches(ctx, id)

	return res, nil
}

// UpdatePaymentStatus records the payment collaborator's outcome. It is
// deliberately independent of the booking lifecycle: a failed charge does
// not cancel a booking here.
func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	status, err := model.ParsePaymentStatus(req.PaymentStatus)
	if err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldPaymentStatus: status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.RoleSystem,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	booking.PaymentStatus = status

	s.publishEvent(ctx, EventPaymentStatusChanged, booking)
	s.invalidateBookingCaches(ctx, id)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return s.authorizeView(ctx, res)
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return s.authorizeView(ctx, res)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// bookableCar loads a car that exists and is open for booking.
func (s *serviceImpl) bookableCar(ctx context.Context, carID string) (carModel.Car, error) {
	car, err := s.carRepo.Get(ctx, shared.FilterByID(carID, carModel.FieldID, carModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("carID", carID).Msg("failed to get car")

		return car, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty {
		return car, failure.NotFound("car not found") //nolint:wrapcheck
	}

	if !car.Active {
		return car, failure.Conflict("car is not open for booking") //nolint:wrapcheck
	}

	return car, nil
}

// resolveActor maps the caller onto a booking-relative role. Internal
// callers act as the system; platform admins act with host authority.
func (s *serviceImpl) resolveActor(ctx context.Context, booking model.Booking) (model.ActorRole, error) {
	if internal, _ := ctx.Value(constant.ContextKeyInternal).(bool); internal {
		return model.ActorSystem, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch {
	case user != constant.Empty && user == booking.RenterID:
		return model.ActorRenter, nil
	case user != constant.Empty && user == booking.OwnerID:
		return model.ActorHost, nil
	case role == constant.RoleAdmin:
		return model.ActorHost, nil
	default:
		return "", failure.Forbidden("you are not a party to this booking") //nolint:wrapcheck
	}
}

// authorizeView hides bookings from users who are not a party to them.
func (s *serviceImpl) authorizeView(ctx context.Context, res dto.BookingResponse) (dto.BookingResponse, error) {
	if internal, _ := ctx.Value(constant.ContextKeyInternal).(bool); internal {
		return res, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if user == res.RenterID || user == res.OwnerID || role == constant.RoleAdmin {
		return res, nil
	}

	return dto.BookingResponse{}, failure.NotFound("booking not found") //nolint:wrapcheck
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
