package service

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/report/model/dto"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Report interface {
	Occupancy(ctx context.Context, req dto.OccupancyReportRequest) (dto.OccupancyReportResponse, error)
	ExportOccupancyCSV(ctx context.Context, req dto.OccupancyReportRequest) ([]byte, string, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Report {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func (s *serviceImpl) Occupancy(ctx context.Context, req dto.OccupancyReportRequest) (res dto.OccupancyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := parseRange(req)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(constant.CacheOccupancyReport, req.Start, req.End)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for occupancy report")

		return res, nil
	}

	res, err = s.build(ctx, start, end)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save occupancy report to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ExportOccupancyCSV(ctx context.Context, req dto.OccupancyReportRequest) (data []byte, archiveURL string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportOccupancyCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := parseRange(req)
	if err != nil {
		return nil, "", err
	}

	report, err := s.build(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	data, err = renderCSV(report.DailyOccupancy)
	if err != nil {
		log.Error().Err(err).Msg("failed to render occupancy csv")

		return nil, "", fmt.Errorf("failed to render occupancy csv: %w", err)
	}

	if s.cfg.External.S3.Enable {
		fileName := fmt.Sprintf("occupancy_%s_%s.csv", req.Start, req.End)

		url, err := s.s3.UploadBytes(ctx, s.cfg.External.S3.BucketName, s.cfg.External.S3.ReportDir, fileName, constant.ContentTypeCSV, data)
		if err != nil {
			// Retention is best effort, the caller still gets the export.
			log.Error().Err(err).Str("fileName", fileName).Msg("failed to archive occupancy csv")
		} else {
			archiveURL = url
		}
	}

	return data, archiveURL, nil
}

func (s *serviceImpl) build(ctx context.Context, start, end time.Time) (res dto.OccupancyReportResponse, err error) {
	// A booking overlaps the range when it starts before the range ends and
	// ends after the range starts.
	overlap := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    end.AddDate(0, 0, 1),
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldCheckOut,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    bookingModel.TableName,
			},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, overlap)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for report")

		return res, fmt.Errorf("failed to get bookings for report: %w", err)
	}

	totalRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms for report")

		return res, fmt.Errorf("failed to count rooms for report: %w", err)
	}

	return aggregate(bookings, totalRooms, start, end), nil
}

func parseRange(req dto.OccupancyReportRequest) (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateOnlyFormat, req.Start)
	if err != nil {
		return start, end, failure.BadRequestFromString("invalid start date") // nolint:wrapcheck
	}

	end, err = time.Parse(constant.DateOnlyFormat, req.End)
	if err != nil {
		return start, end, failure.BadRequestFromString("invalid end date") // nolint:wrapcheck
	}

	if end.Before(start) {
		return start, end, failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	return start, end, nil
}
