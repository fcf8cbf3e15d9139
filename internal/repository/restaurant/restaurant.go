package restaurant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"walt/internal/entities"
	"walt/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, restaurantModify entities.RestaurantModify) (*entities.Restaurant, error) {
	restaurantModifyModel := FromDomainModify(&restaurantModify)
	query := `INSERT INTO restaurants (name, city_id, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, city_id, description`

	var restaurantModel RestaurantDB
	err := r.querier.QueryRow(
		ctx,
		query,
		restaurantModifyModel.Name,
		restaurantModifyModel.CityID,
		restaurantModifyModel.Description,
	).Scan(
		&restaurantModel.ID,
		&restaurantModel.Name,
		&restaurantModel.CityID,
		&restaurantModel.Description,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrCityNotFound
		}
		return nil, fmt.Errorf("unexpected restaurant repository create error: %w", err)
	}

	return ToDomain(&restaurantModel), nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Restaurant, error) {
	query := `SELECT id, name, city_id, description
		FROM restaurants
		WHERE name = $1`

	var restaurantModel RestaurantDB
	err := r.querier.QueryRow(ctx, query, name).
		Scan(
			&restaurantModel.ID,
			&restaurantModel.Name,
			&restaurantModel.CityID,
			&restaurantModel.Description,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("unexpected restaurant repository getbyname error: %w", err)
	}

	return ToDomain(&restaurantModel), nil
}
