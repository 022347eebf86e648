package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CIStatus is the CI state recorded for a patch.
type CIStatus string

// CI status constants.
const (
	CIPending  CIStatus = "pending"
	CIPass     CIStatus = "pass"
	CIFail     CIStatus = "fail"
	CICanceled CIStatus = "canceled"
)

// IsValid checks if the CI status is valid.
func (s CIStatus) IsValid() bool {
	switch s {
	case CIPending, CIPass, CIFail, CICanceled:
		return true
	}
	return false
}

// Scan implements sql.Scanner.
func (s *CIStatus) Scan(value any) error {
	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into CIStatus", value)
	}

	status := CIStatus(str)
	if !status.IsValid() {
		return fmt.Errorf("invalid CI status: %s", str)
	}
	*s = status
	return nil
}

// Value implements driver.Valuer.
func (s CIStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid CIStatus value: %s", s)
	}
	return string(s), nil
}

// Patch is one immutable revision of a merge request.
type Patch struct {
	MergeRequestID int64     `json:"merge_request_id" db:"merge_request_id"`
	Version        int       `json:"version" db:"version"`
	Subject        string    `json:"subject" db:"subject"`
	CommitMessage  string    `json:"commit_message" db:"commit_message"`
	Description    string    `json:"description" db:"description"`
	Diff           string    `json:"diff" db:"diff"`
	LinterOK       bool      `json:"linter_ok" db:"linter_ok"`
	CIStatus       CIStatus  `json:"ci_status" db:"ci_status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Label is the display name of the patch: its description, or its ordinal.
func (p Patch) Label() string {
	if strings.TrimSpace(p.Description) != "" {
		return p.Description
	}
	return Ordinal(p.Version) + " version"
}

// CIBranch names the branch CI builds this patch on.
func (p Patch) CIBranch() string {
	return fmt.Sprintf("mr-%d-v%d", p.MergeRequestID, p.Version)
}

// Ordinal renders n as an English ordinal ("1st", "12th", "23rd").
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// PatchStore is the ordered, append-only sequence of patches of one request.
// Versions are 1-based positions; the zero value is an empty store.
type PatchStore struct {
	patches []Patch
	saved   int
}

// Len returns the number of patches.
func (s *PatchStore) Len() int {
	return len(s.patches)
}

// At returns the patch at the 1-based version.
func (s *PatchStore) At(version int) (Patch, bool) {
	if version < 1 || version > len(s.patches) {
		return Patch{}, false
	}
	return s.patches[version-1], true
}

// Current returns the latest patch.
func (s *PatchStore) Current() (Patch, bool) {
	return s.At(len(s.patches))
}

// Deprecated returns every patch except the current one.
func (s *PatchStore) Deprecated() []Patch {
	if len(s.patches) < 2 {
		return nil
	}
	out := make([]Patch, len(s.patches)-1)
	copy(out, s.patches[:len(s.patches)-1])
	return out
}

// All returns a copy of the sequence.
func (s *PatchStore) All() []Patch {
	out := make([]Patch, len(s.patches))
	copy(out, s.patches)
	return out
}

// Pending returns patches appended since the last persist.
func (s *PatchStore) Pending() []Patch {
	out := make([]Patch, len(s.patches)-s.saved)
	copy(out, s.patches[s.saved:])
	return out
}

func (s *PatchStore) append(p Patch) Patch {
	p.Version = len(s.patches) + 1
	s.patches = append(s.patches, p)
	return p
}

func (s *PatchStore) markSaved(mergeRequestID int64) {
	for i := range s.patches {
		s.patches[i].MergeRequestID = mergeRequestID
	}
	s.saved = len(s.patches)
}
