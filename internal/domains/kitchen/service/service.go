package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/kitchen/model"
	"frontdesk/internal/domains/kitchen/model/dto"
	"frontdesk/internal/domains/kitchen/repository"
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
	cacheGetOrder    = "kitchen:get"
	cacheGetAllOrder = "kitchen:gets"
	cacheCountOrder  = "kitchen:count"
)

type KitchenOrder interface {
	Create(ctx context.Context, req dto.CreateKitchenOrderRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetKitchenOrdersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.KitchenOrderResponse, error)
	AdvanceStatus(ctx context.Context, req dto.AdvanceStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.KitchenOrder
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	printer     printer.Dispatcher
}

func New(repo repository.KitchenOrder, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, printer printer.Dispatcher) KitchenOrder {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		printer:     printer,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateKitchenOrderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

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

		// Orders for a lodged guest land on the room bill only while the
		// booking itself is still unpaid.
		if booking.PaymentStatus == bookingModel.PaymentStatusUnpaid {
			billingType = order.BillingTypeRoomBill
		}
	}

	kitchenOrder := req.ToModel(staff, guestName, roomNumber, bookingID, billingType)

	if err = s.repo.Insert(ctx, kitchenOrder); err != nil {
		log.Error().Err(err).Msg("failed to create kitchen order")

		return fmt.Errorf("failed to create kitchen order: %w", err)
	}

	// The order is stored either way; a dead printer queue is not a reason
	// to refuse the order.
	ticket := printer.Ticket{
		OrderID:    kitchenOrder.ID,
		GuestName:  kitchenOrder.GuestName,
		RoomNumber: kitchenOrder.RoomNumber,
		ItemName:   kitchenOrder.FoodName,
		Quantity:   kitchenOrder.Quantity,
		UnitPrice:  kitchenOrder.UnitPrice,
		CreatedAt:  timezone.Format(kitchenOrder.CreatedAt, constant.DateFormat),
	}
	if err := s.printer.Dispatch(ctx, printer.StationKitchen, ticket); err != nil {
		log.Error().Err(err).Str("orderID", kitchenOrder.ID).Msg("failed to dispatch kitchen ticket")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrder)
		shared.InvalidateCaches(c, s.cache, cacheCountOrder)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetKitchenOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOrder, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for kitchen orders")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count kitchen orders")

		return res, fmt.Errorf("failed to count kitchen orders: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kitchen orders")

		return res, fmt.Errorf("failed to get kitchen orders: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save kitchen orders to cache")
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
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for kitchen order count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count kitchen orders")

		return res, fmt.Errorf("failed to count kitchen orders: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save kitchen order count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.KitchenOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOrder, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for kitchen order")

		return res, nil
	}

	kitchenOrder, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get kitchen order")

		return res, fmt.Errorf("failed to get kitchen order: %w", err)
	}

	if kitchenOrder.ID == constant.Empty {
		return res, failure.NotFound("kitchen order not found") // nolint:wrapcheck
	}

	res.FromModel(kitchenOrder)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save kitchen order to cache")
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

	kitchenOrder, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kitchen order")

		return fmt.Errorf("failed to get kitchen order: %w", err)
	}

	if kitchenOrder.ID == constant.Empty {
		return failure.NotFound("kitchen order not found") // nolint:wrapcheck
	}

	if err := order.KitchenFlow.Validate(kitchenOrder.Status, order.Status(req.Status)); err != nil {
		return err // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: staff,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update kitchen order status")

		return fmt.Errorf("failed to update kitchen order status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOrder, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete kitchen order cache")
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
		log.Error().Err(err).Msg("failed to check if kitchen order exists")

		return fmt.Errorf("failed to check if kitchen order exists: %w", err)
	}

	if !exist {
		return failure.NotFound("kitchen order not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete kitchen order")

		return fmt.Errorf("failed to delete kitchen order: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOrder, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete kitchen order from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrder)
		shared.InvalidateCaches(c, s.cache, cacheCountOrder)
	}()

	return nil
}
