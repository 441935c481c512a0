package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "accounts.padre", "-x", "other"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "accounts.padre"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-d", "accounts.padre"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "order preserved when both forms present",
			args:         []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "-y=2"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "allowed flag without value",
			args:         []string{"-c", "-x"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"padre", "-c", "conf.json", "-d", "accounts.padre"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"padre", "-config=alt.json"}
	assert.Equal(t, "alt.json", JsonConfigFlags())

	os.Args = []string{"padre", "-d", "accounts.padre"}
	assert.Equal(t, "", JsonConfigFlags())
}
