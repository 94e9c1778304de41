package worldstate

import (
	"context"
	"errors"
	"fmt"

	"bill_ledger/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const DefaultStateCollection = "world_state"

type stateDocument struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// MongoWorldState stores one document per key, keyed by _id. Range scans sort
// on _id, which MongoDB compares bytewise for strings.
//
// Writes are staged and flushed as one ordered bulk write. Writes to keys the
// invocation read first are filtered on the observed value, and a filter that
// no longer matches is reported as ErrStateConflict.
type MongoWorldState struct {
	coll *mongo.Collection
}

var _ interfaces.IWorldStateProvider = (*MongoWorldState)(nil)

func NewMongoWorldState(coll *mongo.Collection) *MongoWorldState {
	return &MongoWorldState{coll: coll}
}

func (m *MongoWorldState) Execute(ctx context.Context, fn func(stub interfaces.IWorldState) error) error {
	stub := newStagedState(mongoReader{m})
	if err := fn(stub); err != nil {
		return err
	}

	writes := stub.writeSet()
	if len(writes) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(writes))
	guarded, blind := 0, 0
	for _, w := range writes {
		filter, insertOnly, isGuarded := mongoWriteFilter(w.key, stub)
		switch {
		case isGuarded:
			guarded++
		case !insertOnly:
			blind++
		}
		switch {
		case w.deleted():
			models = append(models, mongo.NewDeleteOneModel().SetFilter(filter))
		case insertOnly:
			models = append(models, mongo.NewInsertOneModel().SetDocument(stateDocument{Key: w.key, Value: w.value}))
		default:
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(filter).
				SetReplacement(stateDocument{Key: w.key, Value: w.value}).
				SetUpsert(!isGuarded))
		}
	}

	res, err := m.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", ErrStateConflict, err)
		}
		return fmt.Errorf("world state: mongo commit: %w", err)
	}
	// Blind writes share the matched and deleted counters, so the check only
	// holds when every write was guarded.
	if res != nil && blind == 0 && int(res.MatchedCount+res.DeletedCount) < guarded {
		return ErrStateConflict
	}
	return nil
}

func (m *MongoWorldState) Close() error {
	return m.coll.Database().Client().Disconnect(context.Background())
}

// mongoWriteFilter returns the filter for a write to key, whether the write
// must be a plain insert (key observed absent) and whether it is guarded by
// an observed value.
func mongoWriteFilter(key string, stub *stagedState) (filter bson.M, insertOnly bool, guarded bool) {
	filter = bson.M{"_id": key}
	seen, ok := stub.observed(key)
	if !ok {
		return filter, false, false
	}
	if !seen.exists {
		return filter, true, false
	}
	filter["value"] = seen.value
	return filter, false, true
}

type mongoReader struct {
	m *MongoWorldState
}

func (r mongoReader) get(ctx context.Context, key string) ([]byte, error) {
	var doc stateDocument
	err := r.m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("world state: mongo get %s: %w", key, err)
	}
	if doc.Value == nil {
		doc.Value = []byte{}
	}
	return doc.Value, nil
}

func (r mongoReader) scan(ctx context.Context, startKey, endKey string) ([]interfaces.StateKV, error) {
	cur, err := r.m.coll.Find(ctx, mongoRangeFilter(startKey, endKey),
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("world state: mongo range: %w", err)
	}

	var docs []stateDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("world state: mongo range decode: %w", err)
	}

	out := make([]interfaces.StateKV, 0, len(docs))
	for _, d := range docs {
		out = append(out, interfaces.StateKV{Key: d.Key, Value: d.Value})
	}
	return out, nil
}

func mongoRangeFilter(startKey, endKey string) bson.M {
	bounds := bson.M{}
	if startKey != "" {
		bounds["$gte"] = startKey
	}
	if endKey != "" {
		bounds["$lt"] = endKey
	}
	if len(bounds) == 0 {
		return bson.M{}
	}
	return bson.M{"_id": bounds}
}
