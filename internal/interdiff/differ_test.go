package interdiff_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/merge_request_service/internal/interdiff"
)

func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "interdiff")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestDiffers_TrivialInputs(t *testing.T) {
	differs := map[string]interdiff.Differ{
		"exec": interdiff.NewExecDiffer("/nonexistent/interdiff", 1, zerolog.Nop()),
		"line": interdiff.NewLineDiffer(),
	}

	for name, d := range differs {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, pair := range [][2]string{{"", "a\n"}, {"a\n", ""}, {"", ""}, {"same\n", "same\n"}} {
				out, err := d.Interdiff(ctx, pair[0], pair[1])
				require.NoError(t, err)
				assert.Empty(t, out)
			}
		})
	}
}

func TestLineDiffer(t *testing.T) {
	out, err := interdiff.NewLineDiffer().Interdiff(context.Background(), "-a\n+b\n", "-a\n+c\n")
	require.NoError(t, err)

	assert.Contains(t, out, "--- old")
	assert.Contains(t, out, "+++ new")
	assert.Contains(t, out, "-+b")
	assert.Contains(t, out, "++c")
}

func TestExecDiffer_PassesBothFiles(t *testing.T) {
	bin := fakeBinary(t, `cat "$1"; echo ===; cat "$2"`)
	d := interdiff.NewExecDiffer(bin, 2, zerolog.Nop())

	out, err := d.Interdiff(context.Background(), "old", "new\n")
	require.NoError(t, err)
	assert.Equal(t, "old\n===\nnew\n", out)
}

func TestExecDiffer_ExitOneIsOutput(t *testing.T) {
	bin := fakeBinary(t, "echo changed; exit 1")
	d := interdiff.NewExecDiffer(bin, 1, zerolog.Nop())

	out, err := d.Interdiff(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "changed\n", out)
}

func TestExecDiffer_Failure(t *testing.T) {
	bin := fakeBinary(t, "echo broken >&2; exit 2")
	d := interdiff.NewExecDiffer(bin, 1, zerolog.Nop())

	_, err := d.Interdiff(context.Background(), "a", "b")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "broken"))
}

func TestExecDiffer_StdinClosed(t *testing.T) {
	bin := fakeBinary(t, `cat; echo done`)
	d := interdiff.NewExecDiffer(bin, 1, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := d.Interdiff(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "done\n", out)
}

func TestExecDiffer_CanceledWhileWaitingForSlot(t *testing.T) {
	bin := fakeBinary(t, `sleep 2`)
	d := interdiff.NewExecDiffer(bin, 1, zerolog.Nop())

	started := make(chan struct{})
	go func() {
		close(started)
		_, _ = d.Interdiff(context.Background(), "a", "b")
	}()
	<-started
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := d.Interdiff(ctx, "c", "d")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNew(t *testing.T) {
	d, err := interdiff.New(interdiff.BackendLine, "", 1, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &interdiff.LineDiffer{}, d)

	d, err = interdiff.New("", "", 1, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &interdiff.ExecDiffer{}, d)

	_, err = interdiff.New("magic", "", 1, zerolog.Nop())
	assert.Error(t, err)
}
