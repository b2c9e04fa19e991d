package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "action-plan-assistant/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "conflict"))

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected an HTTPError")
	}
	if he.StatusCode != http.StatusConflict || he.Error() != "conflict" {
		t.Errorf("got %+v", he)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error must not convert")
	}
}
