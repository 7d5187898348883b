package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(fmt.Errorf("boom")); got != "Error: boom" {
		t.Errorf("Format() = %q, want %q", got, "Error: boom")
	}
	wrapped := fmt.Errorf("load failed: %w", fmt.Errorf("boom"))
	if got := Format(wrapped); got != "Error: load failed: boom" {
		t.Errorf("Format() = %q, want %q", got, "Error: load failed: boom")
	}
}
