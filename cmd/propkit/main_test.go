package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/propkit/inrange"
	"github.com/vitalvas/propkit/quick"
)

func run(t *testing.T, args ...string) ([]string, error) {
	t.Helper()
	t.Setenv("PROPKIT_LOG_TYPE", "discard")

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&out)

	err := cmd.ExecuteContext(context.Background())
	text := strings.TrimSpace(out.String())
	if text == "" {
		return nil, err
	}
	return strings.Split(text, "\n"), err
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDomains(t *testing.T) {
	lines, err := run(t, "domains")
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "localdate "))
	assert.True(t, strings.HasPrefix(lines[1], "localdatetime "))
	assert.True(t, strings.HasPrefix(lines[2], "offsetdatetime "))
	assert.Contains(t, lines[0], "+999999999-12-31")
}

func TestSample(t *testing.T) {
	args := []string{"sample", "--domain", "localdate", "--format", "yyyy-MM-dd",
		"--min", "2012-01-01", "--max", "2012-01-31", "--count", "20", "--seed", "7"}

	t.Run("within range", func(t *testing.T) {
		lines, err := run(t, args...)
		require.NoError(t, err)
		require.Len(t, lines, 20)
		for _, line := range lines {
			assert.True(t, strings.HasPrefix(line, "2012-01-"), line)
		}
	})

	t.Run("seed repeats", func(t *testing.T) {
		first, err := run(t, args...)
		require.NoError(t, err)
		second, err := run(t, args...)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("degenerate", func(t *testing.T) {
		lines, err := run(t, "sample", "--domain", "offsetdatetime", "--format", "MM/dd/yyyy'T'HH:mm:ss.nxxx",
			"--min", "12/31/2012T23:59:59.999999999+01:00", "--max", "12/31/2012T23:59:59.999999999+01:00", "-n", "3")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"12/31/2012T23:59:59.999999999+01:00",
			"12/31/2012T23:59:59.999999999+01:00",
			"12/31/2012T23:59:59.999999999+01:00",
		}, lines)
	})

	t.Run("stats", func(t *testing.T) {
		lines, err := run(t, append(args, "--stats")...)
		require.NoError(t, err)
		require.Len(t, lines, 21)
		assert.True(t, strings.HasPrefix(lines[20], "position min="), lines[20])
	})

	t.Run("without format", func(t *testing.T) {
		lines, err := run(t, "sample", "--domain", "localdate", "-n", "2", "--seed", "1")
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("bound without format", func(t *testing.T) {
		_, err := run(t, "sample", "--min", "2012-01-01")
		require.ErrorIs(t, err, inrange.ErrFormatRequired)
		assert.True(t, strings.HasPrefix(describe(err), "malformed-format: "))
	})

	t.Run("inverted", func(t *testing.T) {
		_, err := run(t, "sample", "--domain", "localdate", "--format", "yyyy-MM-dd",
			"--min", "2012-02-01", "--max", "2012-01-01")
		require.ErrorIs(t, err, inrange.ErrInvertedRange)
		assert.True(t, strings.HasPrefix(describe(err), "inverted-range: "))
	})

	t.Run("unknown domain", func(t *testing.T) {
		_, err := run(t, "sample", "--domain", "duration")
		assert.Error(t, err)
	})

	t.Run("count", func(t *testing.T) {
		_, err := run(t, "sample", "--count", "0")
		assert.Error(t, err)
	})
}

func TestShrink(t *testing.T) {
	t.Run("candidates", func(t *testing.T) {
		lines, err := run(t, "shrink", "--domain", "localdate", "--format", "yyyy-MM-dd", "--value", "1970-01-11")
		require.NoError(t, err)
		assert.Equal(t, []string{"1970-01-01", "1970-01-06", "1970-01-09", "1970-01-10"}, lines)
	})

	t.Run("at target", func(t *testing.T) {
		lines, err := run(t, "shrink", "--domain", "localdate", "--format", "yyyy-MM-dd",
			"--min", "2000-01-01", "--value", "2000-01-01")
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("outside", func(t *testing.T) {
		_, err := run(t, "shrink", "--domain", "localdate", "--format", "yyyy-MM-dd",
			"--min", "2000-01-01", "--value", "1999-12-31")
		assert.Error(t, err)
	})

	t.Run("needs format", func(t *testing.T) {
		_, err := run(t, "shrink", "--domain", "localdate", "--value", "1999-12-31")
		assert.ErrorIs(t, err, inrange.ErrFormatRequired)
	})

	t.Run("needs value", func(t *testing.T) {
		_, err := run(t, "shrink", "--domain", "localdate")
		assert.Error(t, err)
	})
}

func TestCheck(t *testing.T) {
	cfg := writeConfig(t, "propkit.yaml", `
domain: localdate
constraint:
  min: "1990-01-01"
  max: "2030-12-31"
  format: yyyy-MM-dd
check:
  max_shrinks: 10000
  max_shrink_depth: 1000
`)

	t.Run("falsified", func(t *testing.T) {
		lines, err := run(t, "check", "--config", cfg, "--before", "2000-01-01", "--seed", "3")

		var falsified *quick.FalsifiedError
		require.ErrorAs(t, err, &falsified)
		require.NotEmpty(t, lines)
		assert.Equal(t, "counterexample: 2000-01-01", lines[len(lines)-1])
		assert.True(t, strings.HasPrefix(describe(err), "falsified: "))
	})

	t.Run("passes", func(t *testing.T) {
		lines, err := run(t, "check", "--config", cfg, "--before", "2031-01-01", "--trials", "50")
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "passed 50 trials")
	})

	t.Run("flag overrides file", func(t *testing.T) {
		lines, err := run(t, "check", "--config", cfg, "--max", "1999-12-31", "--before", "2000-01-01")
		require.NoError(t, err)
		assert.Contains(t, lines[0], "passed")
	})
}

func TestConfigFile(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		cfg := writeConfig(t, "propkit.toml", `
domain = "localdate"

[constraint]
min = "2012-01-01"
max = "2012-01-01"
format = "yyyy-MM-dd"
`)
		lines, err := run(t, "sample", "--config", cfg, "-n", "2")
		require.NoError(t, err)
		assert.Equal(t, []string{"2012-01-01", "2012-01-01"}, lines)
	})

	t.Run("unknown key", func(t *testing.T) {
		cfg := writeConfig(t, "propkit.yaml", "domian: localdate\n")
		_, err := run(t, "domains", "--config", cfg)
		assert.Error(t, err)
	})

	t.Run("invalid check", func(t *testing.T) {
		cfg := writeConfig(t, "propkit.yaml", "check:\n  trials: -1\n")
		_, err := run(t, "domains", "--config", cfg)
		assert.ErrorIs(t, err, quick.ErrInvalidConfig)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("PROPKIT_DOMAIN", "localdate")
		t.Setenv("PROPKIT_CONSTRAINT_FORMAT", "yyyy-MM-dd")
		t.Setenv("PROPKIT_CONSTRAINT_MIN", "2020-02-29")
		t.Setenv("PROPKIT_CONSTRAINT_MAX", "2020-02-29")

		lines, err := run(t, "sample", "-n", "1")
		require.NoError(t, err)
		assert.Equal(t, []string{"2020-02-29"}, lines)
	})
}
