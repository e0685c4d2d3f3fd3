package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/drink/model"
	"frontdesk/internal/domains/drink/model/dto"
	"frontdesk/internal/domains/drink/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDrink    = "drink:get"
	cacheGetAllDrink = "drink:gets"
	cacheCountDrink  = "drink:count"

	cacheGetAllCategory = "drink_category:gets"
	cacheCountCategory  = "drink_category:count"
)

type Drink interface {
	Create(ctx context.Context, req dto.CreateDrinkRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDrinksResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DrinkResponse, error)
	Update(ctx context.Context, req dto.UpdateDrinkRequest, id string) error
	Delete(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) error
	GetAllCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCategoriesResponse, error)
	DeleteCategory(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Drink
	categoryRepo repository.Category
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Drink, categoryRepo repository.Category, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Drink {
	return &serviceImpl{
		repo:         repo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDrinkRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	exist, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, model.CategoryFieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check drink category")

		return fmt.Errorf("failed to check drink category: %w", err)
	}

	if !exist {
		return failure.NotFound("drink category not found") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(staff)); err != nil {
		log.Error().Err(err).Msg("failed to create drink")

		return fmt.Errorf("failed to create drink: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDrink)
		shared.InvalidateCaches(c, s.cache, cacheCountDrink)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDrinksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDrink, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for drinks")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count drinks")

		return res, fmt.Errorf("failed to count drinks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get drinks")

		return res, fmt.Errorf("failed to get drinks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save drinks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDrink, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for drink count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count drinks")

		return res, fmt.Errorf("failed to count drinks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save drink count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DrinkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDrink, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for drink")

		return res, nil
	}

	drink, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get drink")

		return res, fmt.Errorf("failed to get drink: %w", err)
	}

	if drink.ID == constant.Empty {
		return res, failure.NotFound("drink not found") // nolint:wrapcheck
	}

	res.FromModel(drink)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save drink to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDrinkRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check drink existence")

		return fmt.Errorf("failed to check drink existence: %w", err)
	}

	if !exist {
		return failure.NotFound("drink not found") // nolint:wrapcheck
	}

	if req.CategoryID != constant.Empty {
		exist, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, model.CategoryFieldID, model.CategoryTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check drink category")

			return fmt.Errorf("failed to check drink category: %w", err)
		}

		if !exist {
			return failure.NotFound("drink category not found") // nolint:wrapcheck
		}
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, staff), filter); err != nil {
		log.Error().Err(err).Msg("failed to update drink")

		return fmt.Errorf("failed to update drink: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDrink, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete drink cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDrink)
		shared.InvalidateCaches(c, s.cache, cacheCountDrink)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if drink exists")

		return fmt.Errorf("failed to check if drink exists: %w", err)
	}

	if !exist {
		return failure.NotFound("drink not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete drink")

		return fmt.Errorf("failed to delete drink: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDrink, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete drink from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDrink)
		shared.InvalidateCaches(c, s.cache, cacheCountDrink)
	}()

	return nil
}

func (s *serviceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err = s.categoryRepo.Insert(ctx, req.ToModel(staff)); err != nil {
		log.Error().Err(err).Msg("failed to create drink category")

		return fmt.Errorf("failed to create drink category: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCategory)
		shared.InvalidateCaches(c, s.cache, cacheCountCategory)
	}()

	return nil
}

func (s *serviceImpl) GetAllCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllCategories")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCategory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for drink categories")

		return res, nil
	}

	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count drink categories")

		return res, fmt.Errorf("failed to count drink categories: %w", err)
	}

	models, err := s.categoryRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get drink categories")

		return res, fmt.Errorf("failed to get drink categories: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save drink categories to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteCategory(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCategory")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.categoryRepo.Exist(ctx, shared.FilterByID(id, model.CategoryFieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if drink category exists")

		return fmt.Errorf("failed to check if drink category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("drink category not found") // nolint:wrapcheck
	}

	if err := s.categoryRepo.Delete(ctx, shared.FilterByID(id, model.CategoryFieldID, model.CategoryTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete drink category")

		return fmt.Errorf("failed to delete drink category: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCategory)
		shared.InvalidateCaches(c, s.cache, cacheCountCategory)
	}()

	return nil
}
