package stagestore

import (
	testdb "ats-backend/lib/utils/test-db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStageNames(t *testing.T) {
	t.Run(`default names`, func(t *testing.T) {
		require.Equal(t, []string{"Round 1", "Round 2", "Round 3"}, StageNames(3, nil))
	})
	t.Run(`custom names with blanks`, func(t *testing.T) {
		names := StageNames(3, []string{" HR screen ", "  ", "Final"})
		require.Equal(t, []string{"HR screen", "Round 2", "Final"}, names)
	})
	t.Run(`fewer names than rounds`, func(t *testing.T) {
		require.Equal(t, []string{"Tech", "Round 2"}, StageNames(2, []string{"Tech"}))
	})
	t.Run(`invalid round count falls back to one`, func(t *testing.T) {
		require.Equal(t, []string{"Round 1"}, StageNames(0, nil))
		require.Equal(t, []string{"Round 1"}, StageNames(-4, nil))
	})
}

func TestStore(t *testing.T) {
	conn := testdb.New(t)
	store := NewInstance(conn)

	t.Run(`create and list ordered`, func(t *testing.T) {
		created, err := store.CreateRounds("req-1", 3, []string{"", "Tech"})
		require.Nil(t, err)
		require.Len(t, created, 3)

		list, err := store.List("req-1")
		require.Nil(t, err)
		require.Len(t, list, 3)
		for k, stage := range list {
			require.Equal(t, k+1, stage.StageOrder)
			require.True(t, stage.IsMandatory)
		}
		require.Equal(t, "Round 1", list[0].StageName)
		require.Equal(t, "Tech", list[1].StageName)
		require.Equal(t, "Round 3", list[2].StageName)
	})
	t.Run(`find by name ignores case`, func(t *testing.T) {
		rec, err := store.FindByName("req-1", "round 3")
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Equal(t, 3, rec.StageOrder)

		rec, err = store.FindByName("req-1", "Offer")
		require.Nil(t, err)
		require.Nil(t, rec)
	})
	t.Run(`stage belongs to requirement`, func(t *testing.T) {
		list, err := store.List("req-1")
		require.Nil(t, err)
		rec, err := store.GetByID("req-2", list[0].ID)
		require.Nil(t, err)
		require.Nil(t, rec)
		rec, err = store.GetByID("req-1", list[0].ID)
		require.Nil(t, err)
		require.NotNil(t, rec)
	})
	t.Run(`stage order is unique per requirement`, func(t *testing.T) {
		_, err := store.CreateRounds("req-1", 1, nil)
		require.NotNil(t, err)
		count, err := store.Count("req-1")
		require.Nil(t, err)
		require.EqualValues(t, 3, count)
	})
}
