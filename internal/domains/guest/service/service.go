package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/Satyam7Parsad/hotel-management-system/infras/otel"
	"github.com/Satyam7Parsad/hotel-management-system/infras/postgres"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/guest/model"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/guest/model/dto"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/guest/repository"
	"github.com/Satyam7Parsad/hotel-management-system/shared/constant"
	gDto "github.com/Satyam7Parsad/hotel-management-system/shared/dto"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
	"github.com/Satyam7Parsad/hotel-management-system/shared/timezone"
	"github.com/Satyam7Parsad/hotel-management-system/shared/validator"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (int64, error)
	Get(ctx context.Context, id int64) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Guest, error)
	SearchByName(ctx context.Context, name string) ([]model.Guest, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Guest
	store postgres.Store
	otel  otel.Otel
}

func New(repo repository.Guest, store postgres.Store, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.Struct(req); err != nil {
		log.Error().Err(err).Msg("invalid guest request")

		return 0, err
	}

	err = s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		id, err = s.repo.Insert(ctx, tx, req.ToModel())
		if err != nil {
			return fmt.Errorf("failed to create guest: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return 0, err
	}

	log.Info().Int64("guestID", id).Msg("guest created")

	return id, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.Get(ctx, tx, gDto.FilterByID(id, model.FieldID, model.TableName))

		return err
	})
	if err != nil {
		if !failure.IsNotFound(err) {
			log.Error().Err(err).Int64("guestID", id).Msg("failed to get guest")
		}

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if params.SortBy == "" {
		params.SortBy = model.FieldLastName
	}

	params.Normalize()

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.GetAll(ctx, tx, params, gDto.FilterGroup{})

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return nil, fmt.Errorf("failed to get guests: %w", err)
	}

	return res, nil
}

// SearchByName matches the term case-insensitively against either name part.
func (s *serviceImpl) SearchByName(ctx context.Context, name string) (res []model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.SearchByName")
	defer scope.End()
	defer scope.TraceIfError(err)

	if name == "" {
		return nil, failure.Validation("search term cannot be empty")
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFirstName,
				Table:    model.TableName,
				Value:    name,
				Operator: gDto.FilterOperatorLike,
			},
			gDto.Filter{
				Field:    model.FieldLastName,
				Table:    model.TableName,
				Value:    name,
				Operator: gDto.FilterOperatorLike,
			},
		},
	}

	// Search returns every match; no page limit applies.
	params := gDto.QueryParams{SortBy: model.FieldLastName, SortDir: gDto.SortDirAsc}

	err = s.store.RunReadOnly(ctx, func(tx *sqlx.Tx) error {
		res, err = s.repo.GetAll(ctx, tx, params, filter)

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to search guests")

		return nil, fmt.Errorf("failed to search guests: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.Validation("update request cannot be empty")
	}

	if err = validator.Struct(req); err != nil {
		return err
	}

	fields := req.Fields()
	fields[constant.FieldUpdatedAt] = timezone.Now()

	filter := gDto.FilterByID(id, model.FieldID, model.TableName)

	err = s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.repo.Update(ctx, tx, fields, filter)
		if err != nil {
			return fmt.Errorf("failed to update guest: %w", err)
		}

		if affected == 0 {
			return failure.NotFound(model.EntityName)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("guestID", id).Msg("failed to update guest")

		return err
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.store.RunReadWrite(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.repo.Delete(ctx, tx, gDto.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to delete guest: %w", err)
		}

		if affected == 0 {
			return failure.NotFound(model.EntityName)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("guestID", id).Msg("failed to delete guest")

		return err
	}

	return nil
}
