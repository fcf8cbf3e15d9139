package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"walt/internal/entities"
	"walt/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var driverColumns = []string{
	"id", "name", "city_id", "last_start_time_delivery", "total_distance", "created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModify)

	builder := qb.
		Insert("drivers").
		Columns("name", "city_id").
		Values(driverModifyModel.Name, driverModifyModel.CityID).
		Suffix("RETURNING id, name, city_id, last_start_time_delivery, total_distance, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	var driverModel DriverDB
	err = scanDriver(r.querier.QueryRow(ctx, query, args...), &driverModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrCityNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModify)

	builder := qb.
		Update("drivers")

	// опционные поля
	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.CityID != nil {
		builder = builder.Set("city_id", driverModifyModel.CityID)
	}
	if driverModifyModel.LastStartTimeDelivery != nil {
		builder = builder.Set("last_start_time_delivery", driverModifyModel.LastStartTimeDelivery)
	}
	if driverModifyModel.TotalDistance != nil {
		builder = builder.Set("total_distance", driverModifyModel.TotalDistance)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING id, name, city_id, last_start_time_delivery, total_distance, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverModel DriverDB
	err = scanDriver(r.querier.QueryRow(ctx, query, args...), &driverModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDriverNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrConflict
		}
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Driver, error) {
	query, args, err := qb.
		Select(driverColumns...).
		From("drivers").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getbyname error: %w", err)
	}

	var driverModel DriverDB
	err = scanDriver(r.querier.QueryRow(ctx, query, args...), &driverModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyname error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Driver, error) {
	builder := qb.
		Select(driverColumns...).
		From("drivers").
		OrderBy("id")

	return r.list(ctx, builder, "getall")
}

func (r *Repository) GetAllByCity(ctx context.Context, cityID int64) ([]entities.Driver, error) {
	builder := qb.
		Select(driverColumns...).
		From("drivers").
		Where(sq.Eq{"city_id": cityID}).
		OrderBy("id")

	return r.list(ctx, builder, "getallbycity")
}

// GetAllByCityForUpdate блокирует строки водителей города до конца текущей транзакции.
// Без транзакции в контексте блокировка снимается сразу после запроса.
func (r *Repository) GetAllByCityForUpdate(ctx context.Context, cityID int64) ([]entities.Driver, error) {
	builder := qb.
		Select(driverColumns...).
		From("drivers").
		Where(sq.Eq{"city_id": cityID}).
		OrderBy("id").
		Suffix("FOR UPDATE")

	return r.list(ctx, builder, "getallbycityforupdate")
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder, op string) ([]entities.Driver, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository %s error: %w", op, err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		if err := scanDriver(rows, &driverModel); err != nil {
			return nil, fmt.Errorf("unexpected driver repository %s error: %w", op, err)
		}
		driverModels = append(driverModels, driverModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository %s error: %w", op, err)
	}

	return ToDomainList(driverModels), nil
}

func scanDriver(row pgx.Row, driverModel *DriverDB) error {
	return row.Scan(
		&driverModel.ID,
		&driverModel.Name,
		&driverModel.CityID,
		&driverModel.LastStartTimeDelivery,
		&driverModel.TotalDistance,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
	)
}
