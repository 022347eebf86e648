package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrCannotUpdate   = errors.New("merge request cannot be updated")
	ErrStaleObject    = errors.New("merge request was modified concurrently")
	ErrNoCurrentPatch = errors.New("merge request has no patch")
)

var (
	ErrMergeRequestNotFound = fmt.Errorf("merge request %w", ErrNotFound)
	ErrPatchNotFound        = fmt.Errorf("patch %w", ErrNotFound)
	ErrDiffRangeNotFound    = fmt.Errorf("patch diff %w", ErrNotFound)
)
