package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("example.com\n"), "Domain", &out)
	require.NoError(t, err)
	assert.Equal(t, "example.com", got)
	assert.Contains(t, out.String(), "Domain")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Domain", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Domain", &out)
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer
	got, err := GetInt(rdr("21\n"), "Length", &out)
	require.NoError(t, err)
	assert.Equal(t, 21, got)

	_, err = GetInt(rdr("eight\n"), "Length", &out)
	assert.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("hunter2"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), pw)
	assert.Contains(t, out.String(), "master passphrase")
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	_, err := GetPassword(&out)
	assert.Error(t, err)
}
