package query

import (
	"testing"

	apierrors "github.com/equinor/workload-analyzer/api/errors"
	"github.com/equinor/workload-analyzer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Normalize_Status(t *testing.T) {
	t.Run("accepts every recognized status", func(t *testing.T) {
		for _, status := range models.JobStatusValues() {
			normalized, err := Normalize(Filters{Status: status})
			require.NoError(t, err, status)
			assert.Equal(t, models.JobStatus(status), normalized.Status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := Normalize(Filters{Status: "running"})
		require.Error(t, err)
		assert.Equal(t, apierrors.StatusReasonInvalidFilter, apierrors.ReasonForError(err))
		assert.Contains(t, err.Error(), `invalid status "running"`)
		assert.Contains(t, err.Error(), "inprogress")
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := Normalize(Filters{Status: "Queued"})
		assert.Equal(t, apierrors.StatusReasonInvalidFilter, apierrors.ReasonForError(err))
	})
}

func Test_Normalize_JobTypes(t *testing.T) {
	t.Run("dedupes preserving first-seen order", func(t *testing.T) {
		normalized, err := Normalize(Filters{JobType: "IWPS,ISIM,IWPS"})
		require.NoError(t, err)
		assert.Equal(t, []models.JobType{"IWPS", "ISIM"}, normalized.JobTypes)
		assert.Equal(t, "IWPS,ISIM", normalized.JobTypeParam())
	})

	t.Run("trims whitespace around tokens", func(t *testing.T) {
		normalized, err := Normalize(Filters{JobType: " Coho , NovaCoho "})
		require.NoError(t, err)
		assert.Equal(t, []models.JobType{"Coho", "NovaCoho"}, normalized.JobTypes)
	})

	t.Run("rejects any unknown token", func(t *testing.T) {
		_, err := Normalize(Filters{JobType: "IWPS,Bogus"})
		require.Error(t, err)
		assert.Equal(t, apierrors.StatusReasonInvalidFilter, apierrors.ReasonForError(err))
		assert.Contains(t, err.Error(), `invalid job_type "Bogus"`)
		assert.Contains(t, err.Error(), "WorkloadJobROI")
	})

	t.Run("ignores empty tokens", func(t *testing.T) {
		normalized, err := Normalize(Filters{JobType: "ISIM,,"})
		require.NoError(t, err)
		assert.Equal(t, []models.JobType{"ISIM"}, normalized.JobTypes)
	})
}

func Test_Normalize_Limit(t *testing.T) {
	t.Run("defaults to 100 when absent", func(t *testing.T) {
		normalized, err := Normalize(Filters{})
		require.NoError(t, err)
		assert.Equal(t, 100, normalized.Limit)
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		for rawLimit, expected := range map[string]int{"1": 1, "100": 100} {
			normalized, err := Normalize(Filters{Limit: rawLimit})
			require.NoError(t, err, rawLimit)
			assert.Equal(t, expected, normalized.Limit)
		}
	})

	t.Run("rejects out-of-range and non-integer values", func(t *testing.T) {
		for _, limit := range []string{"0", "101", "-1", "ten"} {
			_, err := Normalize(Filters{Limit: limit})
			require.Error(t, err, limit)
			assert.Equal(t, apierrors.StatusReasonInvalidFilter, apierrors.ReasonForError(err), limit)
		}
	})
}

func Test_Normalize_ContinuationTokenIsOpaque(t *testing.T) {
	// Tokens look like timestamps but must not be validated locally; an
	// expired token surfaces as an upstream error, not InvalidFilter.
	for _, token := range []string{"2024-05-01T10:00:00Z", "not-a-timestamp", "=== definitely opaque ==="} {
		normalized, err := Normalize(Filters{ContinuationToken: token})
		require.NoError(t, err, token)
		assert.Equal(t, token, normalized.ContinuationToken)
	}
}

func Test_Normalize_PassthroughFilters(t *testing.T) {
	normalized, err := Normalize(Filters{
		Owner:            " someuser ",
		Queue:            "fastlane",
		JobRequestID:     "a2290337-a3d4-40db-904d-79222997688f",
		ParentInstanceID: "inst-1",
		WorkloadJobROIID: "roi-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "someuser", normalized.Owner)
	assert.Equal(t, "fastlane", normalized.Queue)
	assert.Equal(t, "a2290337-a3d4-40db-904d-79222997688f", normalized.JobRequestID)
	assert.Equal(t, "inst-1", normalized.ParentInstanceID)
	assert.Equal(t, "roi-9", normalized.WorkloadJobROIID)
}
