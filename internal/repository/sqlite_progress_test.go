package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/alexanderramin/ecoquest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestProgressRepo_EmptyStoreLoadsDefaults(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{}, stats)

	history, err := repo.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	session, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultChallengeType, session.ActiveType)
	assert.Nil(t, session.CurrentChallenge)
}

func TestProgressRepo_SaveAndLoadProgress(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	history := []domain.HistoryEntry{
		testutil.NewTestEntry(testNow.Add(-time.Hour)),
		testutil.NewTestEntry(testNow, testutil.Failed(), testutil.WithType(domain.ChallengeFuel)),
	}
	require.NoError(t, repo.SaveProgress(ctx, domain.StatsFromHistory(history), history))

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Completed: 1, Failed: 1}, stats)

	loaded, err := repo.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, history, loaded)
}

func TestProgressRepo_WireFormat(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(database)
	kv := NewSQLiteKVRepo(database)
	ctx := context.Background()

	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	history := []domain.HistoryEntry{
		domain.NewHistoryEntry("Take public transport today", domain.ChallengeFuel, domain.OutcomeCompleted, at),
	}
	require.NoError(t, repo.SaveProgress(ctx, domain.Stats{Completed: 1}, history))

	completed, err := kv.Get(ctx, KeyCompleted)
	require.NoError(t, err)
	assert.Equal(t, "1", completed)

	failed, err := kv.Get(ctx, KeyFailed)
	require.NoError(t, err)
	assert.Equal(t, "0", failed)

	raw, err := kv.Get(ctx, KeyHistory)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"challenge":"Take public transport today","challengeType":"fuel","status":"completed","date":"2025-06-15T10:00:00.000Z"}]`,
		raw)
}

func TestProgressRepo_LoadsDatesWithoutMilliseconds(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(database)

	testutil.SetRawKey(t, database, KeyHistory,
		`[{"challenge":"x","challengeType":"waste","status":"failed","date":"2025-06-15T12:00:00+02:00"}]`)

	history, err := repo.LoadHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), history[0].Date)
	assert.Equal(t, domain.OutcomeFailed, history[0].Outcome)
}

func TestProgressRepo_MalformedValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		load  func(r *KVProgressRepo) error
	}{
		{"completed not a number", KeyCompleted, "NaN", func(r *KVProgressRepo) error {
			_, err := r.LoadStats(context.Background())
			return err
		}},
		{"failed negative", KeyFailed, "-3", func(r *KVProgressRepo) error {
			_, err := r.LoadStats(context.Background())
			return err
		}},
		{"history not json", KeyHistory, "{oops", func(r *KVProgressRepo) error {
			_, err := r.LoadHistory(context.Background())
			return err
		}},
		{"history unknown type", KeyHistory, `[{"challenge":"x","challengeType":"water","status":"completed","date":"2025-06-15T10:00:00.000Z"}]`, func(r *KVProgressRepo) error {
			_, err := r.LoadHistory(context.Background())
			return err
		}},
		{"history unknown status", KeyHistory, `[{"challenge":"x","challengeType":"fuel","status":"cumplido","date":"2025-06-15T10:00:00.000Z"}]`, func(r *KVProgressRepo) error {
			_, err := r.LoadHistory(context.Background())
			return err
		}},
		{"history bad date", KeyHistory, `[{"challenge":"x","challengeType":"fuel","status":"completed","date":"yesterday"}]`, func(r *KVProgressRepo) error {
			_, err := r.LoadHistory(context.Background())
			return err
		}},
		{"session unknown type", KeyChallengeType, "water", func(r *KVProgressRepo) error {
			_, err := r.LoadSession(context.Background())
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			database := testutil.NewTestDB(t)
			testutil.SetRawKey(t, database, tc.key, tc.value)

			err := tc.load(NewSQLiteProgressRepo(database))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestProgressRepo_NullHistoryIsEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	testutil.SetRawKey(t, database, KeyHistory, "null")

	history, err := NewSQLiteProgressRepo(database).LoadHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestProgressRepo_SessionRoundTrip(t *testing.T) {
	repo := NewSQLiteProgressRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	text := "Unplug devices you are not using"
	require.NoError(t, repo.SaveSession(ctx, domain.Session{
		ActiveType:       domain.ChallengeElectricity,
		CurrentChallenge: &text,
	}))

	session, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ChallengeElectricity, session.ActiveType)
	require.NotNil(t, session.CurrentChallenge)
	assert.Equal(t, text, *session.CurrentChallenge)

	require.NoError(t, repo.SaveSession(ctx, domain.Session{ActiveType: domain.ChallengeElectricity}))
	session, err = repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session.CurrentChallenge)
}

func TestProgressRepo_ClearErasesAllKeys(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(database)
	ctx := context.Background()

	text := "x"
	history := []domain.HistoryEntry{testutil.NewTestEntry(testNow)}
	require.NoError(t, repo.SaveProgress(ctx, domain.StatsFromHistory(history), history))
	require.NoError(t, repo.SaveSession(ctx, domain.Session{ActiveType: domain.ChallengeWaste, CurrentChallenge: &text}))
	assert.Equal(t, 5, testutil.CountKeys(t, database))

	require.NoError(t, repo.Clear(ctx))
	assert.Equal(t, 0, testutil.CountKeys(t, database))
}
