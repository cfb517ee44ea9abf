package repository

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"
	"iter"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Procedure invokes stored procedures by name.
type Procedure struct {
	otel otel.Otel
}

func NewProcedure(otl otel.Otel) Procedure {
	return Procedure{otel: otl}
}

func placeholders(count int) string {
	marks := make([]string, count)

	for idx := range count {
		marks[idx] = fmt.Sprintf("$%d", idx+1)
	}

	return strings.Join(marks, ", ")
}

// CallTx issues CALL name(args...) on tx and drains whatever result set the procedure produces.
// Errors raised inside the procedure come back with their text intact.
func (p *Procedure) CallTx(ctx context.Context, tx sqlx.QueryerContext, name string, args ...any) (results []map[string]any, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.procedure.%s", constant.OtelRepositoryScopeName, name))
	defer scope.End()

	query := fmt.Sprintf("CALL %s(%s)", name, placeholders(len(args)))
	scope.SetAttribute(constant.OtelProcedureAttributeKey, name)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := tx.QueryxContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to call procedure (%s): %w", name, err)
	}
	defer rows.Close()

	results = []map[string]any{}

	for rows.Next() {
		row := map[string]any{}

		if err = rows.MapScan(row); err != nil {
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to read procedure result (%s): %w", name, err)
		}

		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to drain procedure result (%s): %w", name, err)
	}

	return results, nil
}

// SelectFunc returns a lazy sequence over SELECT * FROM name(args...). Every range re-runs the
// query; breaking out early closes the rows.
func SelectFunc[T any](ctx context.Context, otl otel.Otel, db sqlx.QueryerContext, name string, args ...any) iter.Seq2[T, error] {
	query := fmt.Sprintf("SELECT * FROM %s(%s)", name, placeholders(len(args)))

	return func(yield func(T, error) bool) {
		ctx, scope := otl.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.function.%s", constant.OtelRepositoryScopeName, name))
		defer scope.End()

		scope.SetAttribute(constant.OtelProcedureAttributeKey, name)
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)

		var zero T

		rows, err := db.QueryxContext(ctx, query, args...)
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			yield(zero, fmt.Errorf("failed to call function (%s): %w", name, err))

			return
		}
		defer rows.Close()

		for rows.Next() {
			var item T

			if err = rows.StructScan(&item); err != nil {
				scope.TraceError(err)

				yield(zero, fmt.Errorf("failed to scan function row (%s): %w", name, err))

				return
			}

			if !yield(item, nil) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			scope.TraceError(err)

			yield(zero, fmt.Errorf("failed to read function rows (%s): %w", name, err))
		}
	}
}
