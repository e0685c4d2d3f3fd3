package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/bar/model"
	"frontdesk/internal/domains/bar/model/dto"
	"frontdesk/internal/domains/bar/repository"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	drinkModel "frontdesk/internal/domains/drink/model"
	drinkRepo "frontdesk/internal/domains/drink/repository"
	"frontdesk/internal/domains/order"
	"frontdesk/internal/printer"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetOrder    = "bar:get"
	cacheGetAllOrder = "bar:gets"
	cacheCountOrder  = "bar:count"
)

type BarOrder interface {
	Create(ctx context.Context, req dto.CreateBarOrderRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBarOrdersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BarOrderResponse, error)
	AdvanceStatus(ctx context.Context, req dto.AdvanceStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.BarOrder
	bookingRepo bookingRepo.Booking
	drinkRepo   drinkRepo.Drink
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	printer     printer.Dispatcher
}

func New(repo repository.BarOrder, bookingRepo bookingRepo.Booking, drinkRepo drinkRepo.Drink, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, printer printer.Dispatcher) BarOrder {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		drinkRepo:   drinkRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		printer:     printer,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBarOrderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	drink, err := s.drinkRepo.Get(ctx, shared.FilterByID(req.DrinkID, drinkModel.FieldID, drinkModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get drink")

		return fmt.Errorf("failed to get drink: %w", err)
	}

	if drink.ID == constant.Empty {
		return failure.NotFound("drink not found") // nolint:wrapcheck
	}

	if !drink.Available {
		return failure.BadRequestFromString("drink is not available") // nolint:wrapcheck
	}

	guestName := req.GuestName
	roomNumber := constant.Empty
	billingType := order.BillingTypeSeparate

	var bookingID *string

	if order.GuestType(req.GuestType) == order.GuestTypeLodged {
		booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if booking.Status != bookingModel.StatusActive {
			return failure.BadRequestFromString("booking is not active") // nolint:wrapcheck
		}

		guestName = booking.GuestName
		roomNumber = booking.RoomNumber
		bookingID = &booking.ID

		if booking.PaymentStatus == bookingModel.PaymentStatusUnpaid {
			billingType = order.BillingTypeRoomBill
		}
	}

	barOrder := req.ToModel(staff, guestName, roomNumber, drink.Name, drink.Price, bookingID, billingType)

	if err = s.repo.Insert(ctx, barOrder); err != nil {
		log.Error().Err(err).Msg("failed to create bar order")

		return fmt.Errorf("failed to create bar order: %w", err)
	}

	ticket := printer.Ticket{
		OrderID:    barOrder.ID,
		GuestName:  barOrder.GuestName,
		RoomNumber: barOrder.RoomNumber,
		ItemName:   barOrder.DrinkName,
		Quantity:   barOrder.Quantity,
		UnitPrice:  barOrder.UnitPrice,
		CreatedAt:  timezone.Format(barOrder.CreatedAt, constant.DateFormat),
	}
	if err := s.printer.Dispatch(ctx, printer.StationBar, ticket); err != nil {
		log.Error().Err(err).Str("orderID", barOrder.ID).Msg("failed to dispatch bar ticket")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrder)
		shared.InvalidateCaches(c, s.cache, cacheCountOrder)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBarOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOrder, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bar orders")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bar orders")

		return res, fmt.Errorf("failed to count bar orders: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bar orders")

		return res, fmt.Errorf("failed to get bar orders: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bar orders to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountOrder, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bar order count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bar orders")

		return res, fmt.Errorf("failed to count bar orders: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bar order count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BarOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOrder, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bar order")

		return res, nil
	}

	barOrder, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bar order")

		return res, fmt.Errorf("failed to get bar order: %w", err)
	}

	if barOrder.ID == constant.Empty {
		return res, failure.NotFound("bar order not found") // nolint:wrapcheck
	}

	res.FromModel(barOrder)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bar order to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AdvanceStatus(ctx context.Context, req dto.AdvanceStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdvanceStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	barOrder, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bar order")

		return fmt.Errorf("failed to get bar order: %w", err)
	}

	if barOrder.ID == constant.Empty {
		return failure.NotFound("bar order not found") // nolint:wrapcheck
	}

	if err := order.BarFlow.Validate(barOrder.Status, order.Status(req.Status)); err != nil {
		return err // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: staff,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update bar order status")

		return fmt.Errorf("failed to update bar order status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOrder, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete bar order cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrder)
		shared.InvalidateCaches(c, s.cache, cacheCountOrder)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if bar order exists")

		return fmt.Errorf("failed to check if bar order exists: %w", err)
	}

	if !exist {
		return failure.NotFound("bar order not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete bar order")

		return fmt.Errorf("failed to delete bar order: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOrder, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete bar order from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrder)
		shared.InvalidateCaches(c, s.cache, cacheCountOrder)
	}()

	return nil
}
