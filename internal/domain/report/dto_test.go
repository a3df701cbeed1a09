package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRange(t *testing.T) {
	tests := []struct {
		name      string
		req       ExportRangeRequest
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{
			name:      "explicit range",
			req:       ExportRangeRequest{Start: "2024-03-01", End: "2024-03-05"},
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-05",
		},
		{
			name:      "single date shorthand",
			req:       ExportRangeRequest{Date: "2024-03-05"},
			wantStart: "2024-03-05",
			wantEnd:   "2024-03-05",
		},
		{
			name:      "start alone defaults end",
			req:       ExportRangeRequest{Start: "2024-03-05"},
			wantStart: "2024-03-05",
			wantEnd:   "2024-03-05",
		},
		{
			name:      "end alone defaults start",
			req:       ExportRangeRequest{End: "2024-03-05"},
			wantStart: "2024-03-05",
			wantEnd:   "2024-03-05",
		},
		{
			name:      "range takes precedence over date",
			req:       ExportRangeRequest{Date: "2024-01-01", Start: "2024-03-01", End: "2024-03-05"},
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-05",
		},
		{
			name:    "empty request",
			req:     ExportRangeRequest{},
			wantErr: true,
		},
		{
			name:    "inverted range",
			req:     ExportRangeRequest{Start: "2024-03-05", End: "2024-03-01"},
			wantErr: true,
		},
		{
			name:    "malformed date",
			req:     ExportRangeRequest{Date: "03/05/2024"},
			wantErr: true,
		},
		{
			name:    "impossible calendar day",
			req:     ExportRangeRequest{Date: "2024-02-31"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := tt.req.Resolve()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
