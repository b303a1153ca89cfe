package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/services"
	testdb "github.com/conclave-dev/conclave/test/database"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty string", "", 0},
		{"whitespace only", "  \t\n  ", 0},
		{"single word", "postgres", 1},
		{"multiple words", "use postgres with pgvector", 4},
		{"collapsed whitespace", "a   b\t\tc\nd", 4},
		{"leading and trailing space", "  hello world  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.input))
		})
	}
}

func TestWordCountBoundaries(t *testing.T) {
	tenWords := strings.Repeat("word ", 10)
	assert.Equal(t, 10, WordCount(tenWords))

	elevenWords := strings.Repeat("word ", 11)
	assert.Equal(t, 11, WordCount(elevenWords))

	twoThousand := strings.Repeat("w ", 2000)
	assert.Equal(t, 2000, WordCount(twoThousand))
}

func TestNewStoreDefaultsCap(t *testing.T) {
	s := NewStore(nil, 0)
	assert.Equal(t, DefaultCap, s.cap)

	s = NewStore(nil, -3)
	assert.Equal(t, DefaultCap, s.cap)

	s = NewStore(nil, 25)
	assert.Equal(t, 25, s.cap)
}

// newStoreFixture provisions a Store with the given cap against a real
// database, plus a session row for the memories to hang off.
func newStoreFixture(t *testing.T, cap int) (*Store, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	sess, err := services.NewSessionService(client.Client).CreateSession(context.Background(), models.CreateSessionRequest{
		ProblemStatement: "Design a migration plan for the billing database.",
	})
	require.NoError(t, err)

	return NewStore(client.Client, cap), sess.ID
}

func TestStore_EvictsOldestAtCap(t *testing.T) {
	store, sessionID := newStoreFixture(t, 2)
	ctx := context.Background()
	persona := models.PersonaSeniorDeveloper

	for _, id := range []string{"first-fact", "second-fact", "third-fact"} {
		_, err := store.Store(ctx, sessionID, persona, id, "content for "+id)
		require.NoError(t, err)
	}

	// The oldest row made room for the third.
	_, err := store.ByIdentifier(ctx, sessionID, persona, "first-fact")
	assert.ErrorIs(t, err, services.ErrNotFound)

	rows, err := store.Recent(ctx, sessionID, persona, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "third-fact", rows[0].Identifier)
	assert.Equal(t, "second-fact", rows[1].Identifier)
}

func TestStore_OverwriteNeverDuplicates(t *testing.T) {
	store, sessionID := newStoreFixture(t, 2)
	ctx := context.Background()
	persona := models.PersonaCoordinator

	_, err := store.Store(ctx, sessionID, persona, "db-choice", "sqlite")
	require.NoError(t, err)
	_, err = store.Store(ctx, sessionID, persona, "team-size", "four engineers")
	require.NoError(t, err)

	// The slot is full; overwriting an existing identifier must update
	// in place rather than evict.
	row, err := store.Store(ctx, sessionID, persona, "db-choice", "postgres")
	require.NoError(t, err)
	assert.Equal(t, "postgres", row.Content)
	assert.Equal(t, 1, row.AccessCount)

	rows, err := store.Recent(ctx, sessionID, persona, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	kept, err := store.ByIdentifier(ctx, sessionID, persona, "team-size")
	require.NoError(t, err)
	assert.Equal(t, "four engineers", kept.Content)
}

func TestStore_ValidatesIdentifierAndContent(t *testing.T) {
	store, sessionID := newStoreFixture(t, 5)
	ctx := context.Background()
	persona := models.PersonaBusinessAnalyst

	_, err := store.Store(ctx, sessionID, persona, "", "something")
	assert.True(t, services.IsValidationError(err))

	elevenWords := strings.TrimSpace(strings.Repeat("word ", 11))
	_, err = store.Store(ctx, sessionID, persona, elevenWords, "something")
	assert.True(t, services.IsValidationError(err))

	longContent := strings.TrimSpace(strings.Repeat("w ", 2001))
	_, err = store.Store(ctx, sessionID, persona, "long-note", longContent)
	assert.True(t, services.IsValidationError(err))

	// At the limits both fields are accepted.
	tenWords := strings.TrimSpace(strings.Repeat("word ", 10))
	capContent := strings.TrimSpace(strings.Repeat("w ", 2000))
	_, err = store.Store(ctx, sessionID, persona, tenWords, capContent)
	require.NoError(t, err)
}

func TestStore_ReadsBumpAccessCounters(t *testing.T) {
	store, sessionID := newStoreFixture(t, 5)
	ctx := context.Background()
	persona := models.PersonaTechnicalArchitect

	created, err := store.Store(ctx, sessionID, persona, "api-style", "REST with cursor pagination")
	require.NoError(t, err)
	assert.Equal(t, 0, created.AccessCount)
	assert.Nil(t, created.LastAccessedAt)

	first, err := store.ByIdentifier(ctx, sessionID, persona, "api-style")
	require.NoError(t, err)
	assert.Equal(t, 1, first.AccessCount)
	assert.NotNil(t, first.LastAccessedAt)

	recent, err := store.Recent(ctx, sessionID, persona, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, 2, recent[0].AccessCount)
}

func TestStore_SearchMatchesIdentifierAndContent(t *testing.T) {
	store, sessionID := newStoreFixture(t, 5)
	ctx := context.Background()
	persona := models.PersonaSeniorQA

	_, err := store.Store(ctx, sessionID, persona, "db-choice", "use Postgres with pgvector")
	require.NoError(t, err)
	_, err = store.Store(ctx, sessionID, persona, "cache-choice", "use Redis for sessions")
	require.NoError(t, err)

	hits, err := store.Search(ctx, sessionID, persona, "POSTGRES")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "db-choice", hits[0].Identifier)
	assert.Equal(t, 1, hits[0].AccessCount)

	hits, err = store.Search(ctx, sessionID, persona, "choice")
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = store.Search(ctx, sessionID, persona, "kafka")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStore_SlotsAreScopedPerPersona(t *testing.T) {
	store, sessionID := newStoreFixture(t, 2)
	ctx := context.Background()

	for _, persona := range []models.Persona{models.PersonaCoordinator, models.PersonaUXEngineer} {
		_, err := store.Store(ctx, sessionID, persona, "note-a", "from "+persona.String())
		require.NoError(t, err)
		_, err = store.Store(ctx, sessionID, persona, "note-b", "from "+persona.String())
		require.NoError(t, err)
	}

	// Each persona holds a full slot; neither evicted the other's rows.
	rows, err := store.Recent(ctx, sessionID, models.PersonaCoordinator, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "from Coordinator", rows[0].Content)
}

func TestStore_Delete(t *testing.T) {
	store, sessionID := newStoreFixture(t, 5)
	ctx := context.Background()
	persona := models.PersonaCoordinator

	row, err := store.Store(ctx, sessionID, persona, "obsolete", "no longer true")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, row.ID))

	_, err = store.ByIdentifier(ctx, sessionID, persona, "obsolete")
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, row.ID), services.ErrNotFound)
}
