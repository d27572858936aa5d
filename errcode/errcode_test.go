package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                OK,
		"invalid_params":    InvalidParams,
		"unknown_encoding":  UnknownEncoding,
		"invalid_field":     InvalidField,
		"no_task_to_repeat": NoTaskToRepeat,
		"handle_consumed":   HandleConsumed,
		"peripheral_taken":  PeripheralTaken,
		"error":             Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to ok")
	}
	if Of(InvalidParams) != InvalidParams {
		t.Fatal("bare code should map to itself")
	}
	if Of(&E{C: NoTaskToRepeat}) != NoTaskToRepeat {
		t.Fatal("wrapped code lost")
	}
	if Of(errors.New("x")) != Error {
		t.Fatal("foreign error should map to generic code")
	}
}

func TestEFormatAndIs(t *testing.T) {
	e := &E{C: UnknownEncoding, Op: "mmio.decode", Msg: "pattern 5"}
	if got := e.Error(); got != "mmio.decode: unknown_encoding: pattern 5" {
		t.Fatalf("unexpected message %q", got)
	}
	if !errors.Is(e, UnknownEncoding) {
		t.Fatal("errors.Is should match the bare code")
	}
	if errors.Is(e, InvalidField) {
		t.Fatal("errors.Is matched the wrong code")
	}
}

func TestFatalPanicsWithE(t *testing.T) {
	defer func() {
		if c := Recovered(recover()); c != HandleConsumed {
			t.Fatalf("expected handle_consumed, got %q", c)
		}
	}()
	Fatal(HandleConsumed, "pmc", "")
}
