package fetch

import (
	"io"
	"strings"
	"testing"
)

func TestLimitedReadCloser(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		limit       int64
		expectError bool
	}{
		{"under limit", "abc", 5, false},
		{"exactly at limit", "hello", 5, false},
		{"one byte over", "hello!", 5, true},
		{"empty", "", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &limitedReadCloser{
				ReadCloser: io.NopCloser(strings.NewReader(tt.content)),
				N:          tt.limit,
				source:     "-",
			}

			data, err := io.ReadAll(r)
			if tt.expectError {
				if err == nil || !strings.Contains(err.Error(), "exceeds size limit") {
					t.Errorf("ReadAll(%q) with limit %d error = %v, want size limit error", tt.content, tt.limit, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadAll(%q) with limit %d error = %v", tt.content, tt.limit, err)
			}
			if string(data) != tt.content {
				t.Errorf("ReadAll() = %q, want %q", data, tt.content)
			}
		})
	}
}
