// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-mypass/models"
	"github.com/go-resty/resty/v2"
)

// decodeEnvelope turns a response into an envelope. A body that decodes
// as an envelope is returned whatever the status; otherwise the status is
// mapped to a transport error.
func decodeEnvelope(resp *resty.Response) (models.Response, error) {
	var envelope models.Response
	body := resp.Body()
	if len(body) > 0 && json.Unmarshal(body, &envelope) == nil && isEnvelope(body) {
		return envelope, nil
	}

	return models.Response{}, mapHTTPError(resp)
}

// isEnvelope requires the "success" key, so arbitrary JSON such as an
// error object from a proxy is not mistaken for a rejection.
func isEnvelope(body []byte) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	_, ok := probe["success"]
	return ok
}

func mapHTTPError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrServiceUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrInternalServerError, body)
	default:
		return fmt.Errorf("%w: %w: http %d: %s", ErrTransport, ErrMalformedResponse, resp.StatusCode(), body)
	}
}
