package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// InstrumentHTTPRequest wraps an outgoing request in an external segment
//
//	resp, err := InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
//	  return client.Do(req)
//	})
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, doFunc func() (*http.Response, error)) (*http.Response, error) {
	txn := FromContext(ctx)
	if txn == nil {
		return doFunc()
	}

	segment := newrelic.StartExternalSegment(txn, req)
	defer segment.End()

	resp, err := doFunc()
	if resp != nil {
		segment.Response = resp
	}
	return resp, err
}

// WithExternalSegment runs a non-HTTP external call (object storage, maps
// SDK) inside an external segment
func WithExternalSegment(ctx context.Context, library, operation, url string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := &newrelic.ExternalSegment{
		StartTime: txn.StartSegmentNow(),
		URL:       url,
		Procedure: operation,
		Library:   library,
	}
	defer segment.End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}
	return err
}
