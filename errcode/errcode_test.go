package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"config_error":     ConfigError,
		"io_error":         IOError,
		"unsupported_port": UnsupportedPort,
		"field_absent":     FieldAbsent,
		"invalid_field":    InvalidField,
		"no_charge_detect": NoChargeDetect,
		"unknown_phy":      UnknownPHY,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestWrapMatchesCode(t *testing.T) {
	cause := errors.New("bus stalled")
	err := Wrap(IOError, "read32", cause)
	if !errors.Is(err, IOError) {
		t.Fatalf("errors.Is(%v, IOError) = false", err)
	}
	if errors.Is(err, ConfigError) {
		t.Fatal("wrapped io error matched config_error")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause lost by Wrap")
	}
	if got := Of(err); got != IOError {
		t.Fatalf("Of = %q, want %q", got, IOError)
	}
	if got := err.Error(); got != "read32: io_error: bus stalled" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(IOError, "x", nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
	if Of(nil) != OK {
		t.Fatal("Of(nil) must be OK")
	}
	if Of(errors.New("plain")) != Error {
		t.Fatal("plain errors map to Error")
	}
	if Of(fmt.Errorf("phy x: %w", Wrap(ConfigError, "lookup", errors.New("no table")))) != ConfigError {
		t.Fatal("code lost behind fmt wrapping")
	}
	if Of(UnsupportedPort) != UnsupportedPort {
		t.Fatal("bare code not recognised")
	}
}
