package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"carshare/infras/otel"
	"carshare/infras/postgres"
	"carshare/internal/domains/car/model"
	gDto "carshare/shared/dto"
	gRepo "carshare/shared/repository"
)

type Car interface {
	Insert(ctx context.Context, model model.Car) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Car, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, forUpdate bool) (model.Car, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Car, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Car]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Car {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Car](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
