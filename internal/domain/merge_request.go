// Package domain holds the merge request aggregate and its lifecycle rules.
package domain

import (
	"fmt"
	"time"
)

// UserID references a user account managed outside this service.
type UserID string

// History descriptions written by lifecycle operations.
const (
	EventUpdated           = "updated the merge request"
	EventAbandoned         = "abandoned the merge request"
	EventAccepted          = "accepted the merge request"
	EventIntegrationFailed = "failed to integrate merge request"
)

// MergeRequest is a reviewable change together with its patches and audit trail.
type MergeRequest struct {
	ID           int64     `json:"id" db:"id"`
	AuthorID     UserID    `json:"author_id" db:"author_id" validate:"required"`
	ReviewerID   *UserID   `json:"reviewer_id,omitempty" db:"reviewer_id"`
	TargetBranch string    `json:"target_branch" db:"target_branch" validate:"required,branchname"`
	Subject      string    `json:"subject" db:"subject" validate:"required"`
	Status       Status    `json:"status" db:"status"`
	LockVersion  int       `json:"lock_version" db:"lock_version"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	patches     PatchStore
	history     HistoryLog
	persisted   bool
	savedBranch *string
}

// MergeRequestSummary is the list view of a merge request.
type MergeRequestSummary struct {
	ID           int64     `json:"id" db:"id"`
	AuthorID     UserID    `json:"author_id" db:"author_id"`
	ReviewerID   *UserID   `json:"reviewer_id,omitempty" db:"reviewer_id"`
	TargetBranch string    `json:"target_branch" db:"target_branch"`
	Subject      string    `json:"subject" db:"subject"`
	Status       Status    `json:"status" db:"status"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ListState selects merge requests by closedness.
type ListState string

// ListState values.
const (
	ListAll     ListState = "all"
	ListPending ListState = "pending"
	ListClosed  ListState = "closed"
)

// Matches reports whether a status belongs to the state selection.
func (s ListState) Matches(status Status) bool {
	switch s {
	case ListPending:
		return status.IsPending()
	case ListClosed:
		return status.IsClosed()
	}
	return true
}

// NewMergeRequest creates an open, not yet persisted merge request.
func NewMergeRequest(author UserID, targetBranch, subject string, now time.Time) *MergeRequest {
	return &MergeRequest{
		AuthorID:     author,
		TargetBranch: targetBranch,
		Subject:      subject,
		Status:       StatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Restore attaches stored patches and history to a request loaded from storage
// and marks it persisted.
func (mr *MergeRequest) Restore(patches []Patch, events []HistoryEvent) {
	mr.patches = PatchStore{patches: append([]Patch(nil), patches...), saved: len(patches)}
	mr.history = HistoryLog{events: append([]HistoryEvent(nil), events...), saved: len(events)}
	mr.persisted = true
	branch := mr.TargetBranch
	mr.savedBranch = &branch
}

// Clone returns a deep copy.
func (mr *MergeRequest) Clone() *MergeRequest {
	c := *mr
	if mr.ReviewerID != nil {
		reviewer := *mr.ReviewerID
		c.ReviewerID = &reviewer
	}
	if mr.savedBranch != nil {
		branch := *mr.savedBranch
		c.savedBranch = &branch
	}
	c.patches = PatchStore{patches: mr.patches.All(), saved: mr.patches.saved}
	c.history = HistoryLog{events: mr.history.Events(), saved: mr.history.saved}
	return &c
}

// Persisted reports whether the request exists in storage.
func (mr *MergeRequest) Persisted() bool {
	return mr.persisted
}

// Patches returns the patch sequence.
func (mr *MergeRequest) Patches() *PatchStore {
	return &mr.patches
}

// History returns the audit trail.
func (mr *MergeRequest) History() *HistoryLog {
	return &mr.history
}

// CurrentPatch returns the latest patch.
func (mr *MergeRequest) CurrentPatch() (Patch, bool) {
	return mr.patches.Current()
}

// CanUpdate gates new patch submissions.
func (mr *MergeRequest) CanUpdate() bool {
	return mr.Status.AllowsUpdate()
}

// IsClosed reports whether the request is accepted or abandoned.
func (mr *MergeRequest) IsClosed() bool {
	return mr.Status.IsClosed()
}

// AddPatch appends a new revision built from src. CI is marked canceled up front
// when it will never run.
func (mr *MergeRequest) AddPatch(src DiffSource, linterOK, ciEnabled bool, description string, now time.Time) Patch {
	ci := CIPending
	if !ciEnabled {
		ci = CICanceled
	}
	p := mr.patches.append(Patch{
		MergeRequestID: mr.ID,
		Subject:        src.Subject,
		CommitMessage:  src.CommitMessage,
		Description:    description,
		Diff:           src.Raw,
		LinterOK:       linterOK,
		CIStatus:       ci,
		CreatedAt:      now,
	})
	if mr.persisted {
		mr.history.append(mr.AuthorID, EventUpdated, now)
	}
	return p
}

// Update edits the subject and target branch. Empty arguments keep the current value.
func (mr *MergeRequest) Update(subject, targetBranch string) {
	if subject != "" {
		mr.Subject = subject
	}
	if targetBranch != "" {
		mr.TargetBranch = targetBranch
	}
}

// Abandon moves the request to abandoned from any status.
func (mr *MergeRequest) Abandon(actor UserID, now time.Time) {
	mr.history.append(actor, EventAbandoned, now)
	mr.Status = StatusAbandoned
}

// BeginIntegration marks the request as integrating on behalf of reviewer.
// It returns false, changing nothing, when the request is accepted, abandoned
// or already integrating.
func (mr *MergeRequest) BeginIntegration(reviewer UserID, now time.Time) bool {
	switch mr.Status {
	case StatusAccepted, StatusIntegrating, StatusAbandoned:
		return false
	}
	mr.history.append(reviewer, EventAccepted, now)
	mr.ReviewerID = &reviewer
	mr.Status = StatusIntegrating
	return true
}

// CompleteIntegration applies a push outcome. It returns false, changing nothing,
// when the request is no longer integrating.
func (mr *MergeRequest) CompleteIntegration(success bool, now time.Time) bool {
	if mr.Status != StatusIntegrating {
		return false
	}
	if success {
		mr.Status = StatusAccepted
		return true
	}
	var reviewer UserID
	if mr.ReviewerID != nil {
		reviewer = *mr.ReviewerID
	}
	mr.history.append(reviewer, EventIntegrationFailed, now)
	mr.Status = StatusNeedsRebase
	return true
}

// RecordComments appends the summary event of a comment batch.
func (mr *MergeRequest) RecordComments(actor UserID, count int, now time.Time) {
	switch {
	case count <= 0:
		return
	case count == 1:
		mr.history.append(actor, "added a comment.", now)
	default:
		mr.history.append(actor, fmt.Sprintf("added %d comments.", count), now)
	}
}

// BeforeSave runs immediately before every persist. It records a target branch
// rename against the last persisted value.
func (mr *MergeRequest) BeforeSave(now time.Time) {
	mr.UpdatedAt = now
	if mr.savedBranch == nil || *mr.savedBranch == mr.TargetBranch {
		return
	}
	mr.history.append(mr.AuthorID,
		fmt.Sprintf("changed the target branch from %s to %s", *mr.savedBranch, mr.TargetBranch), now)
}

// MarkPersisted is called by stores after a successful save. eventIDs are the ids
// assigned to the pending history events, in order.
func (mr *MergeRequest) MarkPersisted(id int64, eventIDs []int64) {
	if mr.persisted {
		mr.LockVersion++
	}
	mr.ID = id
	mr.persisted = true
	branch := mr.TargetBranch
	mr.savedBranch = &branch
	mr.patches.markSaved(id)
	mr.history.markSaved(id, eventIDs)
}

// Summary returns the list view of the request.
func (mr *MergeRequest) Summary() MergeRequestSummary {
	return MergeRequestSummary{
		ID:           mr.ID,
		AuthorID:     mr.AuthorID,
		ReviewerID:   mr.ReviewerID,
		TargetBranch: mr.TargetBranch,
		Subject:      mr.Subject,
		Status:       mr.Status,
		UpdatedAt:    mr.UpdatedAt,
	}
}

// PeopleInvolved returns comment authors, the reviewer and the author, without
// duplicates.
func (mr *MergeRequest) PeopleInvolved(commentAuthors []UserID) []UserID {
	seen := make(map[UserID]struct{}, len(commentAuthors)+2)
	people := make([]UserID, 0, len(commentAuthors)+2)
	add := func(id UserID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		people = append(people, id)
	}
	for _, id := range commentAuthors {
		add(id)
	}
	if mr.ReviewerID != nil {
		add(*mr.ReviewerID)
	}
	add(mr.AuthorID)
	return people
}
