package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext returns the transaction started by the New Relic middleware
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return newrelic.FromContext(c.Request().Context())
}

// FromContext extracts the transaction from a usecase or repository context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartSegment creates a new segment for the given transaction
// Returns nil if transaction is not available
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// NoticeTransactionError reports an error to New Relic
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// TraceUseCase runs fn inside a segment named after the usecase
func TraceUseCase(ctx context.Context, useCaseName string, fn func(context.Context) error) error {
	segment := StartSegment(FromContext(ctx), useCaseName)
	if segment != nil {
		defer segment.End()
	}
	return fn(ctx)
}

// TraceUseCaseWithReturn is TraceUseCase for functions returning a value
func TraceUseCaseWithReturn[T any](ctx context.Context, useCaseName string, fn func(context.Context) (T, error)) (T, error) {
	segment := StartSegment(FromContext(ctx), useCaseName)
	if segment != nil {
		defer segment.End()
	}
	return fn(ctx)
}

// DatastoreSegment starts a Postgres datastore segment for a repository call.
// The caller must End the returned segment; it is nil outside a transaction.
func DatastoreSegment(ctx context.Context, collection, operation string) *newrelic.DatastoreSegment {
	txn := FromContext(ctx)
	if txn == nil {
		return nil
	}
	return &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastorePostgres,
		Collection: collection,
		Operation:  operation,
	}
}
