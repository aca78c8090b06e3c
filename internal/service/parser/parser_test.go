// internal/service/parser/parser_test.go
package parser

import (
	"errors"
	"testing"
)

func TestFetchErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		err  FetchError
		want string
	}{
		{
			"json error field wins",
			FetchError{StatusCode: 503, Body: []byte(`{"error":"점검 중입니다","detail":"x"}`), Err: errors.New("status 503")},
			"점검 중입니다",
		},
		{
			"json message field as fallback",
			FetchError{StatusCode: 500, Body: []byte(`{"message":"internal"}`), Err: errors.New("status 500")},
			"internal",
		},
		{
			"plain body text",
			FetchError{StatusCode: 403, Body: []byte("Access denied"), Err: errors.New("status 403")},
			"Access denied",
		},
		{
			"status code when body is empty",
			FetchError{StatusCode: 404, Err: errors.New("status 404")},
			"HTTP 404",
		},
		{
			"underlying error when nothing else",
			FetchError{Err: errors.New("dial tcp: timeout")},
			"dial tcp: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	var ferr *FetchError
	wrapped := error(&FetchError{Err: inner})
	if !errors.As(wrapped, &ferr) {
		t.Fatal("errors.As failed to match *FetchError")
	}
	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is failed to reach the wrapped error")
	}
}
