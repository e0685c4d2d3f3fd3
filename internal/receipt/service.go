package receipt

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	barModel "frontdesk/internal/domains/bar/model"
	barRepo "frontdesk/internal/domains/bar/repository"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	kitchenModel "frontdesk/internal/domains/kitchen/model"
	kitchenRepo "frontdesk/internal/domains/kitchen/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

// Service fetches a stored entity and renders its printable document.
type Service interface {
	BookingReceipt(ctx context.Context, id string, layout Layout) ([]byte, error)
	KitchenReceipt(ctx context.Context, id string, layout Layout) ([]byte, error)
	BarReceipt(ctx context.Context, id string, layout Layout) ([]byte, error)
}

type serviceImpl struct {
	renderer    Renderer
	bookingRepo bookingRepo.Booking
	kitchenRepo kitchenRepo.KitchenOrder
	barRepo     barRepo.BarOrder
	otel        otel.Otel
}

func NewService(renderer Renderer, bookingRepo bookingRepo.Booking, kitchenRepo kitchenRepo.KitchenOrder, barRepo barRepo.BarOrder, otel otel.Otel) Service {
	return &serviceImpl{
		renderer:    renderer,
		bookingRepo: bookingRepo,
		kitchenRepo: kitchenRepo,
		barRepo:     barRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) BookingReceipt(ctx context.Context, id string, layout Layout) (data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingReceipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking for receipt")

		return nil, failure.NotFound(bookingModel.EntityName) // nolint:wrapcheck
	}

	if booking.ID == constant.Empty {
		return nil, failure.NotFound(bookingModel.EntityName) // nolint:wrapcheck
	}

	data, err = s.renderer.Render(s.renderer.Booking(booking, layout))
	if err != nil {
		return nil, fmt.Errorf("failed to render booking receipt: %w", err)
	}

	return data, nil
}

func (s *serviceImpl) KitchenReceipt(ctx context.Context, id string, layout Layout) (data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".KitchenReceipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.kitchenRepo.Get(ctx, shared.FilterByID(id, kitchenModel.FieldID, kitchenModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get kitchen order for receipt")

		return nil, failure.NotFound(kitchenModel.EntityName) // nolint:wrapcheck
	}

	if order.ID == constant.Empty {
		return nil, failure.NotFound(kitchenModel.EntityName) // nolint:wrapcheck
	}

	data, err = s.renderer.Render(s.renderer.KitchenOrder(order, layout))
	if err != nil {
		return nil, fmt.Errorf("failed to render kitchen receipt: %w", err)
	}

	return data, nil
}

func (s *serviceImpl) BarReceipt(ctx context.Context, id string, layout Layout) (data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BarReceipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.barRepo.Get(ctx, shared.FilterByID(id, barModel.FieldID, barModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get bar order for receipt")

		return nil, failure.NotFound(barModel.EntityName) // nolint:wrapcheck
	}

	if order.ID == constant.Empty {
		return nil, failure.NotFound(barModel.EntityName) // nolint:wrapcheck
	}

	data, err = s.renderer.Render(s.renderer.BarOrder(order, layout))
	if err != nil {
		return nil, fmt.Errorf("failed to render bar receipt: %w", err)
	}

	return data, nil
}
