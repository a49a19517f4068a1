package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func indexDoc(name string) bson.D {
	return bson.D{{Key: "v", Value: 2}, {Key: "key", Value: bson.D{{Key: "_id", Value: 1}}}, {Key: "name", Value: name}}
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates both indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		names, err := EnsureIndexes(context.Background(), mt.Coll)
		require.NoError(mt, err)
		assert.Equal(mt, []string{IndexURLUnique, IndexDateSavedDesc}, names)

		cmd := mt.GetStartedEvent().Command
		indexes, err := cmd.LookupErr("indexes")
		require.NoError(mt, err)
		values, err := indexes.Array().Values()
		require.NoError(mt, err)
		require.Len(mt, values, 2)
		assert.True(mt, values[0].Document().Lookup("unique").Boolean())
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 85, Message: "index options conflict"}))

		_, err := EnsureIndexes(context.Background(), mt.Coll)
		require.Error(mt, err)
	})
}

func TestListIndexNames(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lists names", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			indexDoc("_id_"), indexDoc(IndexURLUnique)))

		names, err := ListIndexNames(context.Background(), mt.Coll)
		require.NoError(mt, err)
		assert.Equal(mt, []string{"_id_", IndexURLUnique}, names)
	})
}

func TestDropIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("drops only present managed indexes", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, indexDoc("_id_"), indexDoc(IndexURLUnique)),
			mtest.CreateSuccessResponse(),
		)

		require.NoError(mt, DropIndexes(context.Background(), mt.Coll))

		var dropped []string
		for {
			evt := mt.GetStartedEvent()
			if evt == nil {
				break
			}
			if evt.CommandName == "dropIndexes" {
				dropped = append(dropped, evt.Command.Lookup("index").StringValue())
			}
		}
		assert.Equal(mt, []string{IndexURLUnique}, dropped)
	})
}

func TestManagedIndexes(t *testing.T) {
	got := ManagedIndexes()
	assert.Equal(t, []string{IndexURLUnique, IndexDateSavedDesc}, got)

	got[0] = "mutated"
	assert.Equal(t, IndexURLUnique, ManagedIndexes()[0])
}
