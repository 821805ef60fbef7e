package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCast(t *testing.T) {
	out, _, err := run(t, "cast", "10s", "42m", "1h", "10d", "-5s", "3600", "90")
	require.NoError(t, err)
	assert.Equal(t,
		"10s\t10\t10s\n"+
			"42m\t2520\t42m\n"+
			"1h\t3600\t1h\n"+
			"10d\t864000\t10d\n"+
			"-5s\t-5\t-5s\n"+
			"3600\t3600\t1h\n"+
			"90\t90\t90s\n",
		out)

	_, _, err = run(t, "cast", "1x")
	assert.Error(t, err)

	_, _, err = run(t, "cast")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		out, _, err := run(t, "check", "testdata/valid.yaml")
		require.NoError(t, err)
		assert.Equal(t, "testdata/valid.yaml: OK\n", out)
	})

	t.Run("invalid document", func(t *testing.T) {
		out, _, err := run(t, "check", "testdata/valid.yaml", "testdata/invalid.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 documents failed")
		assert.Contains(t, out, "testdata/valid.yaml: OK\n")
		assert.Contains(t, out, "testdata/invalid.yaml:\n")
		assert.Contains(t, out, "  dags.etl.args.end_date: date must not be before 2018-01-01\n")
		assert.Contains(t, out, `  dags.etl.flow.extract: unknown task "publish"`)
	})

	t.Run("missing file", func(t *testing.T) {
		out, _, err := run(t, "check", "testdata/missing.yaml")
		require.Error(t, err)
		assert.Contains(t, out, "testdata/missing.yaml: failed to open document")
	})

	t.Run("strict flag", func(t *testing.T) {
		_, _, err := run(t, "check", "testdata/unknown_key.yaml")
		require.NoError(t, err)

		out, _, err := run(t, "check", "--strict", "testdata/unknown_key.yaml")
		require.Error(t, err)
		assert.Contains(t, out, "owner_name")
	})

	t.Run("strict from environment", func(t *testing.T) {
		t.Setenv("DECLARATIVE_STRICT", "true")
		_, _, err := run(t, "check", "testdata/unknown_key.yaml")
		require.Error(t, err)

		_, _, err = run(t, "check", "--strict=false", "testdata/unknown_key.yaml")
		require.NoError(t, err)
	})
}

func TestSettings(t *testing.T) {
	t.Run("debug logs go to stderr", func(t *testing.T) {
		t.Setenv("DECLARATIVE_LOG_LEVEL", "debug")
		t.Setenv("DECLARATIVE_LOG_FORMAT", "json")

		out, errOut, err := run(t, "check", "testdata/valid.yaml")
		require.NoError(t, err)
		assert.Equal(t, "testdata/valid.yaml: OK\n", out)
		assert.Contains(t, errOut, `"msg":"check finished"`)
		assert.Contains(t, errOut, `"cmd":"check"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("DECLARATIVE_LOG_LEVEL", "loud")
		_, _, err := run(t, "schema")
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Setenv("DECLARATIVE_LOG_FORMAT", "xml")
		_, _, err := run(t, "schema")
		assert.Error(t, err)
	})
}

func TestSchema(t *testing.T) {
	out, _, err := run(t, "schema")
	require.NoError(t, err)

	var s map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Contains(t, s, "properties")
}
