package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// NullValue marks a SQL NULL column in QueryRows output. Callers treat it as absent.
const NullValue = "\x00"

var ErrNoRows = sql.ErrNoRows

// Gateway is the only path from the application to the relational store. Statements use
// named parameters (:name) bound from a map or a struct with db tags; user input never
// becomes part of the statement text.
type Gateway interface {
	// Execute runs a mutating statement and reports the affected row count.
	Execute(ctx context.Context, statement string, args any) (int64, error)
	// QueryCount runs a read statement and returns the number of result rows.
	QueryCount(ctx context.Context, statement string, args any) (int, error)
	// QueryRows materializes every result row as text columns in result order.
	QueryRows(ctx context.Context, statement string, args any) ([][]string, error)
	// NextSequenceValue allocates the next value of a database sequence.
	NextSequenceValue(ctx context.Context, name string) (int64, error)
	Get(ctx context.Context, dest any, statement string, args any) error
	Select(ctx context.Context, dest any, statement string, args any) error
	// WithTx runs fn inside one transaction, rolling back when fn returns an error.
	WithTx(ctx context.Context, fn func(tx Gateway) error) error
}

type gatewayImpl struct {
	db      *sqlx.DB
	ext     sqlx.ExtContext
	otel    otel.Otel
	timeout time.Duration
}

func NewGateway(conn *Connection, otl otel.Otel) Gateway {
	return &gatewayImpl{
		db:      conn.DB,
		ext:     conn.DB,
		otel:    otl,
		timeout: conn.StatementTimeout,
	}
}

func (g *gatewayImpl) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, g.timeout)
}

func (g *gatewayImpl) bind(statement string, args any) (string, []any, error) {
	if args == nil {
		return statement, nil, nil
	}

	query, params, err := g.ext.BindNamed(statement, args)
	if err != nil {
		return "", nil, fmt.Errorf("failed to bind statement parameters: %w", err)
	}

	return query, params, nil
}

func (g *gatewayImpl) Execute(ctx context.Context, statement string, args any) (affected int64, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".Execute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := g.bound(ctx)
	defer cancel()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	query, params, err := g.bind(statement, args)
	if err != nil {
		return 0, err
	}

	result, err := g.ext.ExecContext(ctx, query, params...)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to execute statement: %w", err)
	}

	affected, err = result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func (g *gatewayImpl) QueryCount(ctx context.Context, statement string, args any) (count int, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".QueryCount")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := g.bound(ctx)
	defer cancel()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	query, params, err := g.bind(statement, args)
	if err != nil {
		return 0, err
	}

	rows, err := g.ext.QueryContext(ctx, query, params...)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to run count query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		count++
	}

	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to iterate count query: %w", err)
	}

	return count, nil
}

func (g *gatewayImpl) QueryRows(ctx context.Context, statement string, args any) (result [][]string, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".QueryRows")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := g.bound(ctx)
	defer cancel()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	query, params, err := g.bind(statement, args)
	if err != nil {
		return nil, err
	}

	rows, err := g.ext.QueryContext(ctx, query, params...)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result = [][]string{}

	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))

		for idx := range values {
			dest[idx] = &values[idx]
		}

		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record := make([]string, len(columns))
		for idx, value := range values {
			record[idx] = renderValue(value)
		}

		result = append(result, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	scope.SetAttribute("rows", len(result))

	return result, nil
}

func (g *gatewayImpl) NextSequenceValue(ctx context.Context, name string) (value int64, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".NextSequenceValue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("sequence", name)

	err = g.Get(ctx, &value, "SELECT nextval(:sequence)", map[string]any{"sequence": name})
	if err != nil {
		return 0, fmt.Errorf("failed to allocate from sequence %s: %w", name, err)
	}

	return value, nil
}

func (g *gatewayImpl) Get(ctx context.Context, dest any, statement string, args any) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := g.bound(ctx)
	defer cancel()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	query, params, err := g.bind(statement, args)
	if err != nil {
		return err
	}

	if err = sqlx.GetContext(ctx, g.ext, dest, query, params...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoRows
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to get row: %w", err)
	}

	return nil
}

func (g *gatewayImpl) Select(ctx context.Context, dest any, statement string, args any) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".Select")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := g.bound(ctx)
	defer cancel()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	query, params, err := g.bind(statement, args)
	if err != nil {
		return err
	}

	if err = sqlx.SelectContext(ctx, g.ext, dest, query, params...); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to select rows: %w", err)
	}

	return nil
}

func (g *gatewayImpl) WithTx(ctx context.Context, fn func(tx Gateway) error) (err error) {
	if g.db == nil {
		// already inside a transaction
		return fn(g)
	}

	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".WithTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := g.bound(ctx)
	defer cancel()

	tx, err := g.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(&gatewayImpl{ext: tx, otel: g.otel, timeout: g.timeout}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err carries a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

func renderValue(value any) string {
	switch val := value.(type) {
	case nil:
		return NullValue
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(constant.DateFormat)
		}

		return val.Format(constant.TimestampFormat)
	default:
		return fmt.Sprintf("%v", val)
	}
}
