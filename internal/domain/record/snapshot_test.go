//go:build unit

package record_test

import (
	"testing"
	"time"

	"circulog/internal/domain/record"
	"circulog/internal/pkg/errs"
	"circulog/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(record.Record{}),
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("round trip preserves every field", func(t *testing.T) {
		due := baseTime.AddDate(0, 0, 7)
		rec, err := builder.NewRecordBuilder().
			WithDueDate(due).
			WithSeed("shelf", "A-12").
			BuildDomain()
		require.NoError(t, err)
		require.NoError(t, rec.Complete(baseTime.Add(time.Hour)))
		require.NoError(t, rec.Renew(due.AddDate(0, 0, 7), baseTime.AddDate(0, 0, 2)))
		rec.AddNote("renewed at the desk", baseTime.AddDate(0, 0, 2))

		restored := record.Reconstruct(rec.Snapshot())

		if diff := cmp.Diff(rec, restored, cmpOpts...); diff != "" {
			t.Errorf("Record mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("restore is permissive", func(t *testing.T) {
		// A stored record must restore even when its field values would fail
		// a fresh construction check.
		snap := record.Snapshot{
			ID:         "rec-legacy",
			Kind:       record.KindBorrow,
			SubjectID:  "",
			ItemID:     "",
			Status:     record.StatusFailed,
			FineAmount: 2.5,
			CreatedAt:  baseTime,
		}

		rec := record.Reconstruct(snap)

		assert.Equal(t, "rec-legacy", rec.ID())
		assert.Equal(t, record.StatusFailed, rec.Status())
		assert.Equal(t, 2.5, rec.FineAmount())
		assert.Empty(t, rec.SubjectID())
	})

	t.Run("restored record keeps its lifecycle rules", func(t *testing.T) {
		rec, err := builder.NewRecordBuilder().BuildDomain()
		require.NoError(t, err)

		restored := record.Reconstruct(rec.Snapshot())

		require.NoError(t, restored.Complete(baseTime.Add(time.Hour)))
		require.True(t, errs.Is(restored.Complete(baseTime.Add(2*time.Hour)), errs.ErrInvalidState))
	})

	t.Run("snapshot detail is detached from the record", func(t *testing.T) {
		rec, err := builder.NewRecordBuilder().WithSeed("shelf", "A-12").BuildDomain()
		require.NoError(t, err)

		snap := rec.Snapshot()
		snap.Detail["shelf"] = "B-3"

		shelf, _ := rec.DetailValue("shelf")
		assert.Equal(t, "A-12", shelf)
	})
}
