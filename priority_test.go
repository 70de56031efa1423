package nbexport

import (
	"encoding/json"
	"testing"
)

func bundleOf(mimes ...string) MIMEBundle {
	b := make(MIMEBundle, len(mimes))
	for _, m := range mimes {
		b[m] = json.RawMessage(`""`)
	}
	return b
}

func TestSelectDisplayData(t *testing.T) {
	tests := []struct {
		name     string
		bundle   MIMEBundle
		priority []string
		expected string
	}{
		{
			name:     "html wins over plain text",
			bundle:   bundleOf("text/plain", "text/html"),
			expected: "text/html",
		},
		{
			name:     "png wins over jpeg",
			bundle:   bundleOf("image/jpeg", "image/png"),
			expected: "image/png",
		},
		{
			name:     "plain text is the last resort",
			bundle:   bundleOf("text/plain"),
			expected: "text/plain",
		},
		{
			name:     "no known representation",
			bundle:   bundleOf("application/x-custom"),
			expected: "",
		},
		{
			name:     "empty bundle",
			bundle:   MIMEBundle{},
			expected: "",
		},
		{
			name:     "custom priority reorders",
			bundle:   bundleOf("text/html", "image/png"),
			priority: []string{"image/png", "text/html"},
			expected: "image/png",
		},
		{
			name:     "empty priority falls back to default order",
			bundle:   bundleOf("text/latex", "image/svg+xml"),
			priority: []string{},
			expected: "text/latex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectDisplayData(tt.bundle, tt.priority)
			if got != tt.expected {
				t.Errorf("SelectDisplayData() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDefaultDisplayPriorityOrder(t *testing.T) {
	// The first and last entries anchor the documented preference order.
	if DefaultDisplayPriority[0] != "text/html" {
		t.Errorf("highest priority = %q, want text/html", DefaultDisplayPriority[0])
	}
	if last := DefaultDisplayPriority[len(DefaultDisplayPriority)-1]; last != "text/plain" {
		t.Errorf("lowest priority = %q, want text/plain", last)
	}
}
