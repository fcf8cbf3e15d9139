package customer

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

func (r *Repository) Create(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	customerModifyModel := FromDomainModify(&customerModify)
	query := `INSERT INTO customers (name, city_id, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, city_id, description`

	var customerModel CustomerDB
	err := r.querier.QueryRow(
		ctx,
		query,
		customerModifyModel.Name,
		customerModifyModel.CityID,
		customerModifyModel.Description,
	).Scan(
		&customerModel.ID,
		&customerModel.Name,
		&customerModel.CityID,
		&customerModel.Description,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrCityNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Customer, error) {
	query := `SELECT id, name, city_id, description
		FROM customers
		WHERE name = $1`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, name).
		Scan(
			&customerModel.ID,
			&customerModel.Name,
			&customerModel.CityID,
			&customerModel.Description,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbyname error: %w", err)
	}

	return ToDomain(&customerModel), nil
}
