package interdiff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// DefaultBinary is the patchutils executable used when none is configured.
const DefaultBinary = "interdiff"

// ExecDiffer runs the patchutils interdiff binary on two temporary files.
type ExecDiffer struct {
	binary string
	sem    *semaphore.Weighted
	logger zerolog.Logger
}

// NewExecDiffer returns a differ that runs at most maxConcurrent processes at once.
func NewExecDiffer(binary string, maxConcurrent int64, logger zerolog.Logger) *ExecDiffer {
	if binary == "" {
		binary = DefaultBinary
	}
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &ExecDiffer{
		binary: binary,
		sem:    semaphore.NewWeighted(maxConcurrent),
		logger: logger.With().Str("component", "interdiff").Logger(),
	}
}

func (d *ExecDiffer) Interdiff(ctx context.Context, oldDiff, newDiff string) (string, error) {
	if trivial(oldDiff, newDiff) {
		return "", nil
	}

	if err := d.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("failed to acquire interdiff slot: %w", err)
	}
	defer d.sem.Release(1)

	oldPath, err := writeTemp("diff1", oldDiff)
	if err != nil {
		return "", err
	}
	defer os.Remove(oldPath)

	newPath, err := writeTemp("diff2", newDiff)
	if err != nil {
		return "", err
	}
	defer os.Remove(newPath)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.binary, oldPath, newPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	d.logger.Debug().
		Dur("elapsed", time.Since(start)).
		Int("output_bytes", stdout.Len()).
		Msg("interdiff finished")

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return stdout.String(), nil
		}
		return "", fmt.Errorf("failed to run %s: %w: %s", d.binary, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

func writeTemp(prefix, content string) (string, error) {
	f, err := os.CreateTemp("", prefix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return f.Name(), nil
}
