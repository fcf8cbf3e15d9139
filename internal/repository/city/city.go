package city

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

func (r *Repository) Create(ctx context.Context, cityModify entities.CityModify) (*entities.City, error) {
	cityModifyModel := FromDomainModify(&cityModify)
	query := `INSERT INTO cities (name)
		VALUES ($1)
		RETURNING id, name`

	var cityModel CityDB
	err := r.querier.QueryRow(ctx, query, cityModifyModel.Name).
		Scan(&cityModel.ID, &cityModel.Name)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrConflict
		}
		return nil, fmt.Errorf("unexpected city repository create error: %w", err)
	}

	return ToDomain(&cityModel), nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.City, error) {
	query := `SELECT id, name
		FROM cities
		WHERE name = $1`

	var cityModel CityDB
	err := r.querier.QueryRow(ctx, query, name).Scan(&cityModel.ID, &cityModel.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCityNotFound
		}
		return nil, fmt.Errorf("unexpected city repository getbyname error: %w", err)
	}

	return ToDomain(&cityModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.City, error) {
	query := `SELECT id, name
		FROM cities
		WHERE id = $1`

	var cityModel CityDB
	err := r.querier.QueryRow(ctx, query, id).Scan(&cityModel.ID, &cityModel.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCityNotFound
		}
		return nil, fmt.Errorf("unexpected city repository getbyid error: %w", err)
	}

	return ToDomain(&cityModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.City, error) {
	query := `
	SELECT id, name
	FROM cities
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected city repository getall error: %w", err)
	}
	defer rows.Close()

	cityModels := make([]CityDB, 0, 8)
	for rows.Next() {
		var cityModel CityDB
		if err := rows.Scan(&cityModel.ID, &cityModel.Name); err != nil {
			return nil, fmt.Errorf("unexpected city repository getall error: %w", err)
		}
		cityModels = append(cityModels, cityModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected city repository getall error: %w", err)
	}

	return ToDomainList(cityModels), nil
}
