package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quotientpow/internal/store"
)

func TestHistory_LookupByDisplayedID(t *testing.T) {
	st, err := store.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	repo := st.EventRepo()
	ctx := context.Background()

	id := uuid.NewString()
	for _, status := range []string{"incorrect", "correct"} {
		require.NoError(t, repo.AppendStepAttempt(ctx, store.StepAttemptData{
			ExerciseID: id, Step: "distribute-exponent", Status: status, Answer: "2, 2", Expected: "2, 2",
		}))
	}
	require.NoError(t, repo.AppendStepAttempt(ctx, store.StepAttemptData{
		ExerciseID: uuid.NewString(), Step: "distribute-exponent", Status: "skipped",
	}))

	recent, err := loadAttempts(ctx, repo, 0, "")
	require.NoError(t, err)
	require.Len(t, recent, 3)

	var buf bytes.Buffer
	printAttempts(&buf, recent)
	shown := shortID(id)
	require.Contains(t, buf.String(), shown)
	assert.NotContains(t, buf.String(), id, "full IDs are shortened")

	attempts, err := loadAttempts(ctx, repo, 0, shown)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	for _, a := range attempts {
		assert.Equal(t, id, a.ExerciseID)
	}
	assert.Equal(t, "incorrect", attempts[0].Status)

	full, err := loadAttempts(ctx, repo, 0, id)
	require.NoError(t, err)
	assert.Len(t, full, 2)
}

func TestPrintAttempts_Empty(t *testing.T) {
	var buf bytes.Buffer
	printAttempts(&buf, nil)
	assert.True(t, strings.HasPrefix(buf.String(), "No attempts"))
}
