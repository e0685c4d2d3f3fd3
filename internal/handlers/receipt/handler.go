package receipt

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/receipt"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service receipt.Service
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service receipt.Service, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/receipts", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Authenticate)

		routerGroup.Get("/bookings/{id}", handler.GetBookingReceipt)
		routerGroup.Get("/kitchen/{id}", handler.GetKitchenReceipt)
		routerGroup.Get("/bar/{id}", handler.GetBarReceipt)
	})
}

// layout reads the layout selector, defaulting to the full page.
func layout(r *http.Request) receipt.Layout {
	if r.URL.Query().Get("layout") == string(receipt.LayoutCompact) {
		return receipt.LayoutCompact
	}

	return receipt.LayoutFull
}

// GetBookingReceipt renders the printable receipt of a booking.
// @Summary Get a booking receipt
// @Description Render the printable receipt of a booking as HTML. Use layout=compact for the register tape format.
// @Tags Receipt
// @Produce html
// @Param id path string true "Booking ID"
// @Param layout query string false "Layout (full or compact)"
// @Success 200 {string} string "Receipt HTML"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/receipts/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingReceipt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	data, err := handler.service.BookingReceipt(ctx, id, layout(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render booking receipt")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking receipt rendered successfully")

	writeHTML(w, data)
}

// GetKitchenReceipt renders the printable receipt of a kitchen order.
// @Summary Get a kitchen order receipt
// @Description Render the printable receipt of a kitchen order as HTML. Use layout=compact for the register tape format.
// @Tags Receipt
// @Produce html
// @Param id path string true "Order ID"
// @Param layout query string false "Layout (full or compact)"
// @Success 200 {string} string "Receipt HTML"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/receipts/kitchen/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetKitchenReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetKitchenReceipt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	data, err := handler.service.KitchenReceipt(ctx, id, layout(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render kitchen receipt")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Kitchen receipt rendered successfully")

	writeHTML(w, data)
}

// GetBarReceipt renders the printable receipt of a bar order.
// @Summary Get a bar order receipt
// @Description Render the printable receipt of a bar order as HTML. Use layout=compact for the register tape format.
// @Tags Receipt
// @Produce html
// @Param id path string true "Order ID"
// @Param layout query string false "Layout (full or compact)"
// @Success 200 {string} string "Receipt HTML"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/receipts/bar/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBarReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBarReceipt")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	data, err := handler.service.BarReceipt(ctx, id, layout(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render bar receipt")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bar receipt rendered successfully")

	writeHTML(w, data)
}

func writeHTML(w http.ResponseWriter, data []byte) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Msg("failed to write receipt response")
	}
}
