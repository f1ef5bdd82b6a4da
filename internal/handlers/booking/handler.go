package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"carshare/infras/otel"
	"carshare/internal/domains/booking/model"
	"carshare/internal/domains/booking/model/dto"
	"carshare/internal/domains/booking/service"
	carModel "carshare/internal/domains/car/model"
	"carshare/shared/constant"
	gDto "carshare/shared/dto"
	"carshare/shared/validator"
	"carshare/transport/http/response"
)

const (
	listTypeRenter = "renter"
	listTypeHost   = "host"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Post("/quote", handler.QuoteBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.TransitionBooking)
	})
}

// InternalRouter mounts the endpoints reserved for internal callers, guarded
// by the API key middleware.
func (handler *Handler) InternalRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Patch("/{id}", handler.TransitionBooking)
		routerGroup.Patch("/{id}/payment", handler.UpdatePaymentStatus)
	})
}

// QuoteBooking prices a booking window without reserving it.
// @Summary Quote a booking
// @Description Calculate the price breakdown for a car and date range without creating a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Price breakdown"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/quote [post]
// @Security BearerAuth
func (handler *Handler) QuoteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteBooking")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateBooking reserves a car for the requested dates.
// @Summary Create a new booking
// @Description Reserve a car for a date range. Fails with 409 and the occupied ranges when the car is not available.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists the caller's bookings.
// @Summary Get bookings
// @Description List bookings where the caller is the renter (type=renter, default) or the car owner (type=host).
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "renter or host"
// @Param car_id query string false "Filter by car ID"
// @Param status query string false "Filter by booking status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Listing as host means bookings of cars the caller owns; the owner
	// column comes from the cars join.
	if request.URL.Query().Get(constant.RequestParamType) == listTypeHost {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOwnerID,
			Operator: gDto.FilterOperatorEq,
			Value:    user,
			Table:    carModel.TableName,
		})
	} else {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRenterID,
			Operator: gDto.FilterOperatorEq,
			Value:    user,
			Table:    model.TableName,
		})
	}

	if carID := request.URL.Query().Get(model.FieldCarID); carID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCarID,
			Operator: gDto.FilterOperatorEq,
			Value:    carID,
			Table:    model.TableName,
		})
	}

	if status := request.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByID returns a single booking.
// @Summary Get a booking
// @Description Retrieve one booking by ID. Only the renter, the car owner, or an admin can see it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// TransitionBooking moves a booking to a new lifecycle status.
// @Summary Transition a booking
// @Description Apply a status change (confirm, cancel, activate, complete, dispute) as the renter, the host, or the system.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.TransitionRequest true "Transition Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) TransitionBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.TransitionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Transition(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to transition booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + id + " moved to " + res.Status)

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdatePaymentStatus records the payment outcome for a booking.
// @Summary Update payment status
// @Description Record the payment collaborator's outcome for a booking. Internal callers only.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdatePaymentRequest true "Payment Status Request"
// @Success 200 {object} response.Message "Payment status updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /internal/v1/bookings/{id}/payment [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdatePaymentStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdatePaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdatePaymentStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment status")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Payment status updated")
}
