package worldstate

import (
	"context"
	"errors"
	"fmt"
	"log"

	"bill_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultStateTableName = "world_state"

	dynamoKeyAttr   = "state_key"
	dynamoValueAttr = "state_value"

	// DynamoDB caps a single TransactWriteItems call at 100 actions.
	maxTransactItems = 100
)

// DynamoAPI is the slice of the DynamoDB client the world state uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type stateItem struct {
	Key   string `dynamodbav:"state_key"`
	Value []byte `dynamodbav:"state_value"`
}

// DynamoWorldState persists the world state in a DynamoDB table.
//
// Table requirements:
//   - PK: state_key (string)
//
// Writes are staged during the invocation and flushed with TransactWriteItems.
// Every write to a key the invocation read first is conditioned on that key
// still holding the value it saw, so a concurrent writer turns the commit into
// ErrStateConflict instead of a lost update.
type DynamoWorldState struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorldStateProvider = (*DynamoWorldState)(nil)

func NewDynamoWorldState(ddb DynamoAPI, tableName string) *DynamoWorldState {
	if tableName == "" {
		tableName = DefaultStateTableName
	}
	return &DynamoWorldState{ddb: ddb, tableName: tableName}
}

func (d *DynamoWorldState) Execute(ctx context.Context, fn func(stub interfaces.IWorldState) error) error {
	stub := newStagedState(dynamoReader{d})
	if err := fn(stub); err != nil {
		return err
	}
	return d.commit(ctx, stub)
}

func (d *DynamoWorldState) Close() error { return nil }

func (d *DynamoWorldState) commit(ctx context.Context, stub *stagedState) error {
	writes := stub.writeSet()
	if len(writes) == 0 {
		return nil
	}

	items := make([]types.TransactWriteItem, 0, len(writes))
	for _, w := range writes {
		item, err := d.transactItem(w, stub)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	if len(items) > maxTransactItems {
		log.Printf("[worldstate][dynamodb] write set of %d items split into chunks of %d", len(items), maxTransactItems)
	}
	for start := 0; start < len(items); start += maxTransactItems {
		end := start + maxTransactItems
		if end > len(items) {
			end = len(items)
		}
		_, err := d.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items[start:end],
		})
		if err != nil {
			var tce *types.TransactionCanceledException
			if errors.As(err, &tce) {
				return fmt.Errorf("%w: %v", ErrStateConflict, err)
			}
			return fmt.Errorf("world state: dynamodb commit: %w", err)
		}
	}
	return nil
}

func (d *DynamoWorldState) transactItem(w stagedWrite, stub *stagedState) (types.TransactWriteItem, error) {
	cond, names, values := writeCondition(w.key, stub)

	if w.deleted() {
		return types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:                 aws.String(d.tableName),
				Key:                       keyAttr(w.key),
				ConditionExpression:       cond,
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: values,
			},
		}, nil
	}

	av, err := attributevalue.MarshalMap(stateItem{Key: w.key, Value: w.value})
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("world state: marshal %s: %w", w.key, err)
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                 aws.String(d.tableName),
			Item:                      av,
			ConditionExpression:       cond,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		},
	}, nil
}

// writeCondition guards a write with what the invocation observed for key.
// Blind writes carry no condition.
func writeCondition(key string, stub *stagedState) (*string, map[string]string, map[string]types.AttributeValue) {
	seen, ok := stub.observed(key)
	if !ok {
		return nil, nil, nil
	}
	if !seen.exists {
		return aws.String("attribute_not_exists(#k)"), map[string]string{"#k": dynamoKeyAttr}, nil
	}
	return aws.String("#v = :prev"),
		map[string]string{"#v": dynamoValueAttr},
		map[string]types.AttributeValue{":prev": &types.AttributeValueMemberB{Value: seen.value}}
}

func keyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		dynamoKeyAttr: &types.AttributeValueMemberS{Value: key},
	}
}

type dynamoReader struct {
	d *DynamoWorldState
}

func (r dynamoReader) get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.d.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.d.tableName),
		Key:            keyAttr(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("world state: dynamodb get %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it stateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("world state: unmarshal %s: %w", key, err)
	}
	if it.Value == nil {
		it.Value = []byte{}
	}
	return it.Value, nil
}

// scan reads the whole table and orders it by key. DynamoDB scans come back
// in hash order, so the range is materialized before it is returned.
func (r dynamoReader) scan(ctx context.Context, startKey, endKey string) ([]interfaces.StateKV, error) {
	p := dynamodb.NewScanPaginator(r.d.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.d.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var out []interfaces.StateKV
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("world state: dynamodb scan: %w", err)
		}
		for _, raw := range page.Items {
			var it stateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, fmt.Errorf("world state: unmarshal scan item: %w", err)
			}
			if !inRange(it.Key, startKey, endKey) {
				continue
			}
			out = append(out, interfaces.StateKV{Key: it.Key, Value: it.Value})
		}
	}
	sortKVs(out)
	return out, nil
}
