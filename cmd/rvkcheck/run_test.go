package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlagergren/rvk"
	"github.com/ericlagergren/rvk/internal/kat"
)

func discardLogger() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return logrus.NewEntry(log)
}

func TestRunAllChecks(t *testing.T) {
	var buf bytes.Buffer
	err := run(config{noColor: true}, &buf, discardLogger())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "backend: "+rvk.Selected.String())
	for _, c := range kat.Checks() {
		assert.Contains(t, out, "PASS "+c.Name)
	}
	assert.NotContains(t, out, "FAIL")
}

func TestRunSelectedChecks(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		wantErr bool
		want    []string
	}{
		{
			name:  "single",
			names: []string{"sm3-abc"},
			want:  []string{"PASS sm3-abc"},
		},
		{
			name:  "several",
			names: []string{"aes128-encrypt-rv64", "sm4-decrypt"},
			want:  []string{"PASS aes128-encrypt-rv64", "PASS sm4-decrypt"},
		},
		{
			name:    "unknown",
			names:   []string{"md5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(config{names: tt.names, noColor: true}, &buf, discardLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
			assert.Equal(t, len(tt.want), strings.Count(buf.String(), "PASS"))
		})
	}
}

func TestRunChecksFailure(t *testing.T) {
	bad := kat.Check{
		Name:   "always-fails",
		Source: "test",
		Run:    func() error { return kat.ErrMismatch },
	}
	var buf bytes.Buffer
	err := runChecks(&buf, discardLogger(), []kat.Check{bad})
	assert.True(t, errors.Is(err, ErrChecksFailed))
	assert.Contains(t, buf.String(), "FAIL always-fails")
}

func TestListInsns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listInsns(&buf, 64))
	out := buf.String()
	assert.Contains(t, out, "aes64es")
	assert.Contains(t, out, "0x32b50533")
	assert.Contains(t, out, "0x0ab51533")
	assert.NotContains(t, out, "aes32esi")

	buf.Reset()
	require.NoError(t, listInsns(&buf, 32))
	out = buf.String()
	assert.Contains(t, out, "aes32esi")
	assert.Contains(t, out, "0x69855513")
	assert.NotContains(t, out, "aes64es")

	assert.Error(t, listInsns(&buf, 128))
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, newLogger("debug").Logger.GetLevel())
	assert.Equal(t, logrus.InfoLevel, newLogger("bogus").Logger.GetLevel())
}
