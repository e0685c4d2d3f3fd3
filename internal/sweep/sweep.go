// Package sweep completes overdue bookings in the background. Each pass
// closes every active booking whose checkout time has passed and frees the
// rooms they held.
package sweep

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"
)

type Runner interface {
	Start(ctx context.Context)
	RunOnce(ctx context.Context) (int, error)
}

type runnerImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Runner {
	return &runnerImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Start runs one pass immediately and then keeps sweeping on the configured
// interval until the context is cancelled. Pass failures are logged and the
// next tick tries again.
func (r *runnerImpl) Start(ctx context.Context) {
	if !r.cfg.Sweep.Enable {
		log.Info().Msg("booking sweep disabled")

		return
	}

	interval := time.Duration(r.cfg.Sweep.IntervalMinutes) * time.Minute

	log.Info().Dur("interval", interval).Msg("booking sweep started")

	if _, err := r.RunOnce(ctx); err != nil {
		log.Error().Err(err).Msg("booking sweep pass failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("booking sweep stopped")

			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				log.Error().Err(err).Msg("booking sweep pass failed")
			}
		}
	}
}

// RunOnce completes the expired bookings and returns how many were closed.
func (r *runnerImpl) RunOnce(ctx context.Context) (swept int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelSweepScopeName, constant.OtelSweepScopeName+".RunOnce")
	defer scope.End()
	defer scope.TraceIfError(err)

	expired, err := r.bookingRepo.CompleteExpired(ctx, timezone.Now())
	if err != nil {
		return 0, err // nolint:wrapcheck
	}

	if len(expired) == 0 {
		return 0, nil
	}

	roomIDs := make([]string, 0, len(expired))
	for _, booking := range expired {
		roomIDs = append(roomIDs, booking.RoomID)
	}

	available := map[string]any{
		roomModel.FieldStatus:    roomModel.StatusAvailable,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.ActorSystem,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    roomIDs,
				Table:    roomModel.TableName,
			},
		},
	}

	if err := r.roomRepo.Update(ctx, available, filter); err != nil {
		// The bookings are already completed; the rooms stay marked occupied
		// until the next pass or a manual edit.
		log.Error().Err(err).Int("rooms", len(roomIDs)).Msg("failed to release rooms after sweep")
	}

	// Completed bookings change the occupancy picture, so the cached
	// aggregates go with them.
	shared.InvalidateCaches(ctx, r.cache, constant.CacheOccupancyReport)

	log.Info().Int("bookings", len(expired)).Msg("completed expired bookings")

	return len(expired), nil
}
