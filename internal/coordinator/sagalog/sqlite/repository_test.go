package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jcmexdev/ecommerce-checkout/internal/coordinator/sagalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "checkout.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveAndGetLatest(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []*sagalog.SagaLog{
		{SagaID: "cart-1", Status: sagalog.StatusStarted, Payload: `{"cart_id":"cart-1"}`, ErrorMessages: "[]", UpdatedAt: base},
		{SagaID: "cart-1", Status: sagalog.StatusStepDone, CurrentStep: "Authorize_Payment_Step", ErrorMessages: "[]", UpdatedAt: base.Add(time.Second)},
		{SagaID: "cart-1", Status: sagalog.StatusCompleted, ErrorMessages: "[]", UpdatedAt: base.Add(2 * time.Second)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Save(ctx, e))
	}

	latest, err := repo.GetLatest(ctx, "cart-1")

	require.NoError(t, err)
	assert.Equal(t, sagalog.StatusCompleted, latest.Status)
	assert.True(t, latest.UpdatedAt.Equal(base.Add(2*time.Second)),
		"expected %s, got %s", base.Add(2*time.Second), latest.UpdatedAt)
}

func TestGetLatest_UnknownSaga(t *testing.T) {
	repo := openTestRepo(t)

	latest, err := repo.GetLatest(context.Background(), "cart-unknown")

	assert.Error(t, err)
	assert.Nil(t, latest)
}

func TestSave_KeepsEveryTransition(t *testing.T) {
	// Same timestamp on both rows: the surrogate id breaks the tie and the
	// later insert wins.
	repo := openTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &sagalog.SagaLog{
		SagaID: "cart-2", Status: sagalog.StatusCompensating,
		CurrentStep: "Commit_Stock_Step", ErrorMessages: `["error committing stock"]`, UpdatedAt: at,
	}))
	require.NoError(t, repo.Save(ctx, &sagalog.SagaLog{
		SagaID: "cart-2", Status: sagalog.StatusFailed,
		CurrentStep: "Commit_Stock_Step", ErrorMessages: `["error committing stock"]`, UpdatedAt: at,
	}))

	latest, err := repo.GetLatest(ctx, "cart-2")

	require.NoError(t, err)
	assert.Equal(t, sagalog.StatusFailed, latest.Status)
	assert.Equal(t, `["error committing stock"]`, latest.ErrorMessages)
}
