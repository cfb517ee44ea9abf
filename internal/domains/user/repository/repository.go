package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/user/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

// User reads staff accounts. Accounts are provisioned directly in the database, so there is no write path.
type User interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
}

type repositoryImpl struct {
	users gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		users: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// FindByUsername returns the zero User when no account matches.
func (r *repositoryImpl) FindByUsername(ctx context.Context, username string) (model.User, error) {
	return r.users.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldUsername, Operator: gDto.FilterOperatorEq, Value: username, Table: model.TableName},
		},
	})
}
