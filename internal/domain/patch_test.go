package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/merge_request_service/internal/domain"
)

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 101: "101st", 111: "111th", 112: "112th",
	}
	for n, want := range tests {
		assert.Equal(t, want, domain.Ordinal(n), "Ordinal(%d)", n)
	}
}

func TestPatch_Label(t *testing.T) {
	assert.Equal(t, "2nd version", domain.Patch{Version: 2}.Label())
	assert.Equal(t, "2nd version", domain.Patch{Version: 2, Description: "   "}.Label())
	assert.Equal(t, "rebased on main", domain.Patch{Version: 2, Description: "rebased on main"}.Label())
}

func TestPatch_CIBranch(t *testing.T) {
	assert.Equal(t, "mr-12-v3", domain.Patch{MergeRequestID: 12, Version: 3}.CIBranch())
}

func TestCIStatus_ScanValue(t *testing.T) {
	var s domain.CIStatus
	require.NoError(t, s.Scan([]byte("canceled")))
	assert.Equal(t, domain.CICanceled, s)
	assert.Error(t, s.Scan("running"))
	assert.Error(t, s.Scan(nil))

	v, err := domain.CIPass.Value()
	require.NoError(t, err)
	assert.Equal(t, "pass", v)

	_, err = domain.CIStatus("bogus").Value()
	assert.Error(t, err)
}

func TestPatchStore_Addressing(t *testing.T) {
	mr := domain.NewMergeRequest("alice", "main", "s", t0)
	var store *domain.PatchStore = mr.Patches()

	_, ok := store.Current()
	assert.False(t, ok)
	assert.Nil(t, store.Deprecated())

	for _, raw := range []string{"a", "b", "c"} {
		mr.AddPatch(domain.DiffSource{Raw: raw}, true, true, "", t0)
	}

	assert.Equal(t, 3, store.Len())
	p, ok := store.At(2)
	require.True(t, ok)
	assert.Equal(t, "b", p.Diff)

	_, ok = store.At(0)
	assert.False(t, ok)
	_, ok = store.At(4)
	assert.False(t, ok)

	current, _ := store.Current()
	assert.Equal(t, 3, current.Version)

	deprecated := store.Deprecated()
	require.Len(t, deprecated, 2)
	assert.Equal(t, "a", deprecated[0].Diff)
	assert.Equal(t, "b", deprecated[1].Diff)

	all := store.All()
	all[0].Diff = "mutated"
	first, _ := store.At(1)
	assert.Equal(t, "a", first.Diff)
}
