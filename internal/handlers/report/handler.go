package report

import (
	"fmt"
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Report, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Authenticate)
		routerGroup.Use(handler.auth.RequireRoles())

		routerGroup.Get("/occupancy", handler.GetOccupancyReport)
		routerGroup.Get("/occupancy/export", handler.ExportOccupancyReport)
	})
}

// GetOccupancyReport builds the occupancy report for a date range.
// @Summary Get the occupancy report
// @Description Build booking, revenue and daily occupancy statistics for the given date range. Managers only.
// @Tags Report
// @Accept json
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.OccupancyReportResponse] "Occupancy report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancyReport")
	defer scope.End()

	req := dto.OccupancyReportRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate report request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Occupancy(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build occupancy report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy report built successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ExportOccupancyReport exports the daily occupancy table as CSV.
// @Summary Export the occupancy report as CSV
// @Description Export the daily occupancy table for the given date range as a CSV download. Managers only.
// @Tags Report
// @Accept json
// @Produce text/csv
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy/export [get]
// @Security BearerAuth
func (handler *Handler) ExportOccupancyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportOccupancyReport")
	defer scope.End()

	req := dto.OccupancyReportRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate report request")

		response.WithError(w, err)

		return
	}

	data, archiveURL, err := handler.service.ExportOccupancyCSV(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export occupancy report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy report exported successfully")

	fileName := fmt.Sprintf("occupancy_%s_%s.csv", req.Start, req.End)

	if archiveURL != "" {
		w.Header().Set("X-Archive-Url", archiveURL)
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	w.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Msg("failed to write csv response")
	}
}
