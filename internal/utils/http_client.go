// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for baseURL whose requests time out after
// timeout and carry an X-Trace-ID header. The trace id is taken from the
// request context (see [WithTraceID]) or freshly generated.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) != "" {
			return nil
		}
		traceID, ok := GetTraceIDFromContext(r.Context())
		if !ok {
			traceID = ids.Generate()
		}
		r.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	return &HTTPClient{Client: client}
}
