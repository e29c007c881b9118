package rpcerror

import (
	"errors"
	"fmt"
	"net"
	"testing"
)

func TestWrapClassifies(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Connection, cause)

	if !Is(err, Connection) {
		t.Fatalf("expected Connection kind, got %v", err)
	}
	if Is(err, Response) {
		t.Errorf("kind must not match Response")
	}
	if !errors.Is(err, cause) {
		t.Errorf("wrapped cause must survive errors.Is")
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(Serialization, nil); err != nil {
		t.Fatalf("wrapping nil must yield nil, got %v", err)
	}
}

func TestErrorMessageCarriesKindAndCause(t *testing.T) {
	err := Wrap(InvalidResponse, errors.New("no header/body separator in response"))

	want := "invalid response: no header/body separator in response"
	if err.Error() != want {
		t.Errorf("message mismatch: got %q, want %q", err.Error(), want)
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := Wrap(Response, &net.OpError{Op: "read", Err: errors.New("reset")})
	outer := fmt.Errorf("call failed: %w", inner)

	if !Is(outer, Response) {
		t.Fatalf("kind must be detectable through wrapping: %v", outer)
	}

	var opErr *net.OpError
	if !errors.As(outer, &opErr) {
		t.Errorf("underlying net error must stay reachable via errors.As")
	}
}

func TestKindStrings(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Connection, "connection error"},
		{Serialization, "serialization error"},
		{Response, "response error"},
		{InvalidResponse, "invalid response"},
	}
	for _, tc := range cases {
		if tc.kind.String() != tc.want {
			t.Errorf("Kind %d: got %q, want %q", tc.kind, tc.kind.String(), tc.want)
		}
	}
}
