package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", in: `"5m"`, want: 5 * time.Minute},
		{name: "seconds string", in: `"90s"`, want: 90 * time.Second},
		{name: "integer nanoseconds", in: `3000000000`, want: 3 * time.Second},
		{name: "invalid string", in: `"soon"`, wantErr: true},
		{name: "invalid type", in: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration{Duration: 5 * time.Minute}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"5m0s"`, string(data))
}
