package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"malformed input", ErrMalformedInput},
		{"extraction", ErrExtraction},
		{"json decode", ErrJSONDecode},
		{"spreadsheet auth", ErrSpreadsheetAuth},
		{"spreadsheet write", ErrSpreadsheetWrite},
		{"invalid credentials", ErrInvalidCredentials},
		{"no session", ErrNoSession},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
			wrapped := fmt.Errorf("context: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match sentinel: %v", wrapped)
			}
		})
	}
}
