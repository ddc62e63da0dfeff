// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassifyHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{status: http.StatusTooManyRequests, want: ErrorTypeRateLimit},
		{status: http.StatusForbidden, want: ErrorTypeQuotaExceeded},
		{status: http.StatusBadRequest, want: ErrorTypeInvalidRequest},
		{status: http.StatusServiceUnavailable, want: ErrorTypeUnavailable},
		{status: http.StatusBadGateway, want: ErrorTypeUnavailable},
		{status: http.StatusGatewayTimeout, want: ErrorTypeUnavailable},
		{status: http.StatusInternalServerError, want: ErrorTypeUnknown},
	}

	for _, tt := range tests {
		if got := classifyHTTPError(tt.status); got.Type != tt.want {
			t.Errorf("classifyHTTPError(%d).Type = %v, want %v", tt.status, got.Type, tt.want)
		}
	}
}

func TestServiceErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &ServiceError{Type: ErrorTypeUnknown, Message: "request failed", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ServiceError must unwrap to its cause")
	}

	if got := err.Error(); got != "request failed: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsRateLimitError(t *testing.T) {
	if !IsRateLimitError(&ServiceError{Type: ErrorTypeRateLimit}) {
		t.Error("typed rate-limit error not detected")
	}

	if !IsRateLimitError(fmt.Errorf("server said: too many requests")) {
		t.Error("textual rate-limit error not detected")
	}

	if IsRateLimitError(errors.New("nope")) {
		t.Error("unrelated error misclassified")
	}
}

func TestIsTimeoutError(t *testing.T) {
	if !IsTimeoutError(&ServiceError{Type: ErrorTypeTimeout}) {
		t.Error("typed timeout not detected")
	}

	if !IsTimeoutError(errors.New("context deadline exceeded")) {
		t.Error("textual timeout not detected")
	}
}
