package repository

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	ErrRequiredFilter = errors.New("refusing to run without a filter")
	errNoReturning    = errors.New("insert returned no row")
)

// Field tags read by the repository:
//
//	db:"col"        column name, required for the field to be mapped
//	insert:"-"      column filled by the database (serial keys, trigger-computed values)
//	table:"t"       column lives on a joined table
//	column:"c"      real column name when db holds an alias
const (
	tagDB     = "db"
	tagInsert = "insert"
	tagTable  = "table"
	tagColumn = "column"
)

// Joiner is implemented by read models that span several tables.
type Joiner interface {
	JoinClause() string
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) selectExpr() string {
	if c.alias != "" {
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	}

	return c.table + "." + c.name
}

// Repository maps T onto one table through its struct tags. Reads go to the replica, writes to the
// primary unless a transaction is passed in.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

func NewRepository[T any](entity, table, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := mapColumns(table, reflect.TypeOf(zero))

	repo := Repository[T]{
		db:            db,
		otel:          otl,
		table:         table,
		entity:        entity,
		primaryColumn: primaryColumn,
		columns:       columns,
		InsertColumns: insertColumns,
	}

	if joiner, ok := any(zero).(Joiner); ok {
		repo.join = joiner.JoinClause()
	}

	return repo
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

// fail records err on the span and wraps it with the entity and the action that failed.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s %s: %w", action, repo.entity, err)
}

func (repo *Repository[T]) insertQuery() string {
	params := make([]string, len(repo.InsertColumns))

	for idx, col := range repo.InsertColumns {
		params[idx] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(params, ", "), repo.primaryColumn)
}

func (repo *Repository[T]) insertReturning(ctx context.Context, exec sqlx.ExtContext, model T) (int64, error) {
	ctx, scope := repo.scope(ctx, "InsertReturning")
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := sqlx.NamedQueryContext(ctx, exec, query, model)
	if err != nil {
		return 0, repo.fail(scope, "insert", err)
	}
	defer rows.Close()

	if !rows.Next() {
		err = rows.Err()
		if err == nil {
			err = errNoReturning
		}

		return 0, repo.fail(scope, "insert", err)
	}

	var id int64
	if err = rows.Scan(&id); err != nil {
		return 0, repo.fail(scope, "scan id of", err)
	}

	return id, nil
}

// InsertReturning writes model on the primary and returns the generated key.
func (repo *Repository[T]) InsertReturning(ctx context.Context, model T) (int64, error) {
	return repo.insertReturning(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertReturningTx(ctx context.Context, tx *sqlx.Tx, model T) (int64, error) {
	return repo.insertReturning(ctx, tx, model)
}

func (repo *Repository[T]) selectQuery(where string, only []string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		exprs = append(exprs, col.selectExpr())
	}

	parts := []string{"SELECT", strings.Join(exprs, ", "), "FROM", repo.table}
	if repo.join != "" {
		parts = append(parts, repo.join)
	}

	if where != "" {
		parts = append(parts, "WHERE", where)
	}

	return strings.Join(parts, " ")
}

// Get returns the zero T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := filter.GetWhereClause()
	query := repo.selectQuery(where, columns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare get", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model, nil
	case err != nil:
		return model, repo.fail(scope, "get", err)
	}

	return model, nil
}

// GetAll returns every matching row ordered by the primary column. It backs detail views
// (the service lines of one booking), never unbounded listings.
func (repo *Repository[T]) GetAll(ctx context.Context, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where == "" {
		return nil, ErrRequiredFilter
	}

	query := fmt.Sprintf("%s ORDER BY %s.%s", repo.selectQuery(where, columns), repo.table, repo.primaryColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, repo.fail(scope, "prepare list", err)
	}
	defer stmt.Close()

	models := []T{}
	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return nil, repo.fail(scope, "list", err)
	}

	return models, nil
}

// Delete reports how many rows were removed.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where == "" {
		return 0, ErrRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, "delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, "count deleted", err)
	}

	return affected, nil
}

func (repo *Repository[T]) update(ctx context.Context, exec sqlx.ExtContext, set map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where == "" {
		return ErrRequiredFilter
	}

	assignments := make([]string, 0, len(set))
	for _, col := range slices.Sorted(maps.Keys(set)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, set)

	if _, err := sqlx.NamedExecContext(ctx, exec, query, args); err != nil {
		return repo.fail(scope, "update", err)
	}

	return nil
}

func (repo *Repository[T]) Update(ctx context.Context, set map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, set, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, tx *sqlx.Tx, set map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, tx, set, filter)
}

// mapColumns walks the struct tags of t, descending into embedded structs.
func mapColumns(table string, t reflect.Type) (columns []column, insertColumns []string) {
	for field := range fields(t) {
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := mapColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		name := field.Tag.Get(tagDB)
		if name == "" || name == "-" {
			continue
		}

		col := column{name: name, table: cmp.Or(field.Tag.Get(tagTable), table)}

		if source := field.Tag.Get(tagColumn); source != "" {
			col.name, col.alias = source, name
		}

		if col.table == table && field.Tag.Get(tagInsert) != "-" {
			insertColumns = append(insertColumns, name)
		}

		columns = append(columns, col)
	}

	return columns, insertColumns
}

func fields(t reflect.Type) func(yield func(reflect.StructField) bool) {
	return func(yield func(reflect.StructField) bool) {
		for idx := range t.NumField() {
			if !yield(t.Field(idx)) {
				return
			}
		}
	}
}
