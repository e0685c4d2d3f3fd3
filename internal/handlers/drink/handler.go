package drink

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/drink/model"
	"frontdesk/internal/domains/drink/model/dto"
	"frontdesk/internal/domains/drink/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Drink
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Drink, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/drinks", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Authenticate)
		routerGroup.Use(handler.auth.RequireRoles(constant.RoleBar))

		routerGroup.Post("/", handler.CreateDrink)
		routerGroup.Get("/", handler.GetDrinks)
		routerGroup.Get("/{id}", handler.GetDrinkByID)
		routerGroup.Patch("/{id}", handler.UpdateDrink)
		routerGroup.Delete("/{id}", handler.DeleteDrink)

		routerGroup.Route("/categories", func(categoryGroup chi.Router) {
			categoryGroup.Post("/", handler.CreateCategory)
			categoryGroup.Get("/", handler.GetCategories)
			categoryGroup.Delete("/{id}", handler.DeleteCategory)
		})
	})
}

// CreateDrink adds a drink to the bar menu.
// @Summary Create a new drink
// @Description Add a drink to the bar menu.
// @Tags Drink
// @Accept json
// @Produce json
// @Param request body dto.CreateDrinkRequest true "Create Drink Request"
// @Success 201 {object} response.Message "Drink created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drinks [post]
// @Security BearerAuth
func (handler *Handler) CreateDrink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDrink")
	defer scope.End()

	req := dto.CreateDrinkRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create drink")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Drink created successfully")

	response.WithMessage(w, http.StatusCreated, "Drink created successfully")
}

// GetDrinks retrieves all drinks based on query parameters.
// @Summary Get all drinks
// @Description Retrieve all drinks with optional filtering and pagination.
// @Tags Drink
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category_id query string false "Filter by category"
// @Param available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetDrinksResponse] "List of drinks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drinks [get]
// @Security BearerAuth
func (handler *Handler) GetDrinks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDrinks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if categoryID := r.URL.Query().Get(model.FieldCategoryID); categoryID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    categoryID,
			Table:    model.TableName,
		})
	}

	if available := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	drinks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get drinks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Drinks retrieved successfully")

	response.WithJSON(w, http.StatusOK, drinks)
}

// GetDrinkByID retrieves a drink by its ID.
// @Summary Get a drink by ID
// @Description Retrieve a drink by its unique identifier.
// @Tags Drink
// @Accept json
// @Produce json
// @Param id path string true "Drink ID"
// @Success 200 {object} response.Data[dto.DrinkResponse] "Drink details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drinks/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDrinkByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDrinkByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	drink, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get drink by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Drink retrieved successfully")

	response.WithJSON(w, http.StatusOK, drink)
}

// UpdateDrink updates an existing drink by its ID.
// @Summary Update a drink by ID
// @Description Update the details of an existing drink.
// @Tags Drink
// @Accept json
// @Produce json
// @Param id path string true "Drink ID"
// @Param request body dto.UpdateDrinkRequest true "Update Drink Request"
// @Success 200 {object} response.Message "Drink updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drinks/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDrink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDrink")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDrinkRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update drink")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Drink updated successfully")

	response.WithMessage(w, http.StatusOK, "Drink updated successfully")
}

// DeleteDrink deletes a drink by its ID.
// @Summary Delete a drink by ID
// @Description Delete a drink using its unique identifier.
// @Tags Drink
// @Accept json
// @Produce json
// @Param id path string true "Drink ID"
// @Success 200 {object} response.Message "Drink deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drinks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDrink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDrink")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete drink")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Drink deleted successfully")

	response.WithMessage(w, http.StatusOK, "Drink deleted successfully")
}

// CreateCategory adds a drink category.
// @Summary Create a drink category
// @Description Add a category to organize the bar menu.
// @Tags Drink
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} response.Message "Category created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drinks/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := dto.CreateCategoryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateCategory(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category created successfully")

	response.WithMessage(w, http.StatusCreated, "Category created successfully")
}

// GetCategories retrieves all drink categories.
// @Summary Get all drink categories
// @Description Retrieve all drink categories with optional pagination.
// @Tags Drink
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCategoriesResponse] "List of categories"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drinks/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	categories, err := handler.service.GetAllCategories(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Categories retrieved successfully")

	response.WithJSON(w, http.StatusOK, categories)
}

// DeleteCategory deletes a drink category by its ID.
// @Summary Delete a drink category by ID
// @Description Delete a drink category using its unique identifier.
// @Tags Drink
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Message "Category deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drinks/categories/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteCategory(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category deleted successfully")

	response.WithMessage(w, http.StatusOK, "Category deleted successfully")
}
