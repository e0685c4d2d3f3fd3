package kitchen

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/kitchen/model"
	"frontdesk/internal/domains/kitchen/model/dto"
	"frontdesk/internal/domains/kitchen/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.KitchenOrder
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.KitchenOrder, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/kitchen/orders", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Authenticate)
		routerGroup.Use(handler.auth.RequireRoles(constant.RoleKitchen, constant.RoleReceptionist))

		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Get("/{id}", handler.GetOrderByID)
		routerGroup.Patch("/{id}/status", handler.AdvanceStatus)
		routerGroup.Delete("/{id}", handler.DeleteOrder)
	})
}

// CreateOrder places a kitchen order.
// @Summary Create a kitchen order
// @Description Place a kitchen order for a lodged or walk-in guest. Lodged orders on an unpaid booking land on the room bill.
// @Tags Kitchen
// @Accept json
// @Produce json
// @Param request body dto.CreateKitchenOrderRequest true "Create Kitchen Order Request"
// @Success 201 {object} response.Message "Order created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/kitchen/orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateKitchenOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create kitchen order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Kitchen order created successfully")

	response.WithMessage(w, http.StatusCreated, "Order created successfully")
}

// GetOrders retrieves all kitchen orders based on query parameters.
// @Summary Get all kitchen orders
// @Description Retrieve all kitchen orders with optional filtering and pagination.
// @Tags Kitchen
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param guest_type query string false "Filter by guest type"
// @Param billing_type query string false "Filter by billing type"
// @Success 200 {object} response.Data[dto.GetKitchenOrdersResponse] "List of kitchen orders"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/kitchen/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	for _, field := range []string{model.FieldStatus, model.FieldGuestType, model.FieldBillingType} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get kitchen orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Kitchen orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// GetOrderByID retrieves a kitchen order by its ID.
// @Summary Get a kitchen order by ID
// @Description Retrieve a kitchen order by its unique identifier.
// @Tags Kitchen
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[dto.KitchenOrderResponse] "Order details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/kitchen/orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	order, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get kitchen order by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Kitchen order retrieved successfully")

	response.WithJSON(w, http.StatusOK, order)
}

// AdvanceStatus moves a kitchen order one step along its lifecycle.
// @Summary Advance a kitchen order status
// @Description Advance the order to the requested status. Only the single next step of the kitchen flow is accepted.
// @Tags Kitchen
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.AdvanceStatusRequest true "Advance Status Request"
// @Success 200 {object} response.Message "Order status advanced successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/kitchen/orders/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdvanceStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AdvanceStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AdvanceStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance kitchen order status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Kitchen order status advanced successfully")

	response.WithMessage(w, http.StatusOK, "Order status advanced successfully")
}

// DeleteOrder deletes a kitchen order by its ID.
// @Summary Delete a kitchen order by ID
// @Description Delete a kitchen order using its unique identifier.
// @Tags Kitchen
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Message "Order deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/kitchen/orders/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOrder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete kitchen order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Kitchen order deleted successfully")

	response.WithMessage(w, http.StatusOK, "Order deleted successfully")
}
