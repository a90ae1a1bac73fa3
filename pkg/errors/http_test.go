package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAsHTTPError(t *testing.T) {
	t.Run("Wrapped", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", NewHTTPError(http.StatusBadGateway, "generation failed"))
		httpErr, ok := AsHTTPError(err)
		if !ok {
			t.Fatal("expected HTTPError in chain")
		}
		if httpErr.Code != http.StatusBadGateway || httpErr.Error() != "generation failed" {
			t.Errorf("unexpected error: %+v", httpErr)
		}
	})

	t.Run("Plain", func(t *testing.T) {
		if _, ok := AsHTTPError(fmt.Errorf("boom")); ok {
			t.Error("expected no HTTPError")
		}
	})
}
