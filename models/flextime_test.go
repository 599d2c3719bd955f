package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTimeAcceptedRepresentations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: `"2024-06-01T10:30:00Z"`,
			want:  time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			input: `"2024-06-01T12:30:00+02:00"`,
			want:  time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "no zone",
			input: `"2024-06-01T10:30:00"`,
			want:  time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "space separated",
			input: `"2024-06-01 10:30:00"`,
			want:  time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "bare date",
			input: `"2024-06-01"`,
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "epoch milliseconds",
			input: `1717237800000`,
			want:  time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ft FlexTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ft))
			assert.True(t, tt.want.Equal(ft.Time), "got %s want %s", ft.Time, tt.want)
		})
	}
}

func TestFlexTimeRejectsGarbage(t *testing.T) {
	for _, input := range []string{`"not a date"`, `"2024-13-45"`, `true`} {
		var ft FlexTime
		assert.Error(t, json.Unmarshal([]byte(input), &ft), "input %s", input)
	}
}

func TestFlexTimeMarshalsRFC3339(t *testing.T) {
	ft := FlexTime{Time: time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)}
	out, err := json.Marshal(ft)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01T10:30:00Z"`, string(out))
}
