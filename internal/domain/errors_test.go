package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchError_Error(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		err  *FetchError
		want string
	}{
		{
			name: "status",
			err:  NewStatusError(503, nil),
			want: "HTTP error! status: 503",
		},
		{
			name: "transport",
			err:  NewTransportError(cause),
			want: "Network error: dial tcp: connection refused",
		},
		{
			name: "transport without cause",
			err:  &FetchError{Kind: FetchErrorTransport},
			want: "Network error",
		},
		{
			name: "decode",
			err:  NewDecodeError(errors.New("unexpected EOF")),
			want: "Received an invalid response from the server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("fetching page 2: %w", NewTransportError(cause))

	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the wrapped cause")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatal("errors.As() did not find *FetchError")
	}
	if fe.Kind != FetchErrorTransport {
		t.Errorf("Kind = %v, want %v", fe.Kind, FetchErrorTransport)
	}
}

func TestAsFetchError(t *testing.T) {
	if AsFetchError(nil) != nil {
		t.Error("AsFetchError(nil) should be nil")
	}

	status := NewStatusError(404, nil)
	if got := AsFetchError(fmt.Errorf("wrapped: %w", status)); got != status {
		t.Errorf("AsFetchError() = %v, want the wrapped status error", got)
	}

	plain := AsFetchError(errors.New("socket closed"))
	if plain.Kind != FetchErrorTransport {
		t.Errorf("Kind = %v, want transport", plain.Kind)
	}
	if !strings.Contains(plain.Error(), "socket closed") {
		t.Errorf("Error() = %q, want it to mention the cause", plain.Error())
	}
}

func TestFetchErrorKind_String(t *testing.T) {
	tests := []struct {
		kind FetchErrorKind
		want string
	}{
		{FetchErrorTransport, "transport"},
		{FetchErrorStatus, "status"},
		{FetchErrorDecode, "decode"},
		{FetchErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}
