package journal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := open(t)

	require.NoError(t, j.Record("/data", "a_old", "a new"))
	require.NoError(t, j.Record("/data", "b_old", "b new"))
	require.NoError(t, j.Record("/other", "c_old", "c new"))

	entries, err := j.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	want := []Entry{
		{Dir: "/other", OldName: "c_old", NewName: "c new"},
		{Dir: "/data", OldName: "b_old", NewName: "b new"},
	}
	ignore := cmpopts.IgnoreFields(Entry{}, "ID", "AppliedAt")
	if diff := cmp.Diff(want, entries, ignore); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	require.False(t, entries[0].AppliedAt.IsZero())
}

func TestRecent_Empty(t *testing.T) {
	j := open(t)
	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestUndo(t *testing.T) {
	j := open(t)
	require.NoError(t, j.Record("/d", "one_old", "one"))
	require.NoError(t, j.Record("/d", "two_old", "two"))

	var reversed [][3]string
	undone, err := j.Undo(5, func(dir, from, to string) error {
		reversed = append(reversed, [3]string{dir, from, to})
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, undone)
	require.Equal(t, [][3]string{
		{"/d", "two", "two_old"},
		{"/d", "one", "one_old"},
	}, reversed)

	// Undone entries are pruned.
	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestUndo_StopsOnFailure(t *testing.T) {
	j := open(t)
	require.NoError(t, j.Record("/d", "one_old", "one"))
	require.NoError(t, j.Record("/d", "two_old", "two"))

	boom := errors.New("disk says no")
	undone, err := j.Undo(5, func(dir, from, to string) error {
		if from == "one" {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, undone)

	// The failed entry is still on record.
	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "one", entries[0].NewName)
}
