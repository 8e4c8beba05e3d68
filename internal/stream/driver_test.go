package stream

import (
	"testing"

	"github.com/404wolf/mdvalidate/internal/validate"
)

func TestDriverAccumulatesCapturesAcrossChunks(t *testing.T) {
	d, err := New([]byte("# Hi `name:/[A-Z][a-z]+/`"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := d.Read([]byte("# Hi"), false); err != nil {
		t.Fatalf("Read (partial): %v", err)
	}
	if d.Done() {
		t.Fatal("driver reported done before eof")
	}

	res, err := d.Read([]byte(" Wolf"), true)
	if err != nil {
		t.Fatalf("Read (final): %v", err)
	}
	if !d.Done() {
		t.Fatal("expected driver to be done after eof=true")
	}
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if got := d.Captures()["name"]; got != "Wolf" {
		t.Errorf("captures[name] = %v, want %q", got, "Wolf")
	}
}

func TestDriverDedupsRepeatedErrors(t *testing.T) {
	d, err := New([]byte("# Hi `name:/[A-Z][a-z]+/`"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first, err := d.Read([]byte("# Hi wolf"), false)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(first.Errors) == 0 {
		t.Fatal("expected a matcher mismatch on first read")
	}

	second, err := d.Read([]byte(""), true)
	if err != nil {
		t.Fatalf("Read (eof): %v", err)
	}
	if len(second.Errors) != 0 {
		t.Errorf("expected the repeated mismatch to be deduped, got %v", second.Errors)
	}
	if len(d.Errors()) != 1 {
		t.Errorf("driver should retain exactly one distinct error, got %d", len(d.Errors()))
	}
}

func TestDriverFastFailStopsAfterFirstTrigger(t *testing.T) {
	d, err := New([]byte("# Hi `name:/[A-Z][a-z]+/`"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d.SetFastFail(true)

	res, err := d.Read([]byte("# Hi wolf"), true)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(res.Errors))
	}
	if !d.Done() {
		t.Fatal("expected driver to be done after a fast-fail trigger")
	}

	if _, err := d.Read([]byte("more"), false); err == nil {
		t.Fatal("expected an error reading after a fast-fail trigger")
	}
}

func TestDriverReportsInvalidUTF8(t *testing.T) {
	d, err := New([]byte("# Hi"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := d.Read([]byte{0xff, 0xfe}, true)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Kind != validate.KindInvalidUTF8 {
		t.Fatalf("expected a single InvalidUTF8 error, got %v", res.Errors)
	}
	if !d.Done() {
		t.Fatal("expected driver to be done after an invalid-UTF8 read")
	}
}

func TestDriverRejectsReadAfterEOF(t *testing.T) {
	d, err := New([]byte("---"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Read([]byte("---"), true); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if _, err := d.Read([]byte("more"), false); err == nil {
		t.Fatal("expected an error reading after eof=true")
	}
}
