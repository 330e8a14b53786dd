package errs

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestWrapNil(t *testing.T) {
	if err := Wrap("op", nil); err != nil {
		t.Errorf("Wrap(nil) = %v", err)
	}
}

func TestWrapNoRowsBecomesNotFound(t *testing.T) {
	err := Wrap("get patient", pgx.ErrNoRows)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if !strings.Contains(err.Error(), "get patient") {
		t.Errorf("error lost operation context: %q", err.Error())
	}
}

func TestWrapClassifiesConstraintViolations(t *testing.T) {
	cases := []struct {
		code string
		want PersistenceKind
	}{
		{"23505", KindDuplicateKey},
		{"23503", KindForeignKey},
		{"22007", KindBadFormat},
		{"22P02", KindBadFormat},
		{"57014", KindUnknown},
	}
	for _, tc := range cases {
		err := Wrap("insert", &pgconn.PgError{Code: tc.code})
		var pe *PersistenceError
		if !errors.As(err, &pe) {
			t.Fatalf("code %s: expected PersistenceError, got %v", tc.code, err)
		}
		if pe.Kind != tc.want {
			t.Errorf("code %s: kind = %d, want %d", tc.code, pe.Kind, tc.want)
		}
	}
}

func TestMissingFieldsMessage(t *testing.T) {
	err := MissingFields("sex", "contact_email")
	if !IsValidation(err) {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "sex") || !strings.Contains(msg, "contact_email") {
		t.Errorf("message does not list fields: %q", msg)
	}
}

func TestHTTPMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{MissingFields("dose"), http.StatusBadRequest},
		{Invalid("bad date"), http.StatusBadRequest},
		{Wrap("get", pgx.ErrNoRows), http.StatusNotFound},
		{ErrConnectionFailed, http.StatusServiceUnavailable},
		{Wrap("insert", &pgconn.PgError{Code: "23505"}), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTP(tc.err).Code; got != tc.want {
			t.Errorf("HTTP(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestValidationMessageNotLeakedForStorageErrors(t *testing.T) {
	raw := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"patient_email_key\""}
	he := HTTP(Wrap("insert", raw))
	if msg, ok := he.Message.(string); ok && strings.Contains(msg, "patient_email_key") {
		t.Errorf("storage detail leaked to client: %q", msg)
	}
}
