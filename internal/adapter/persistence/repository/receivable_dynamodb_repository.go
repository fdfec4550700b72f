package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReceivablesTableName = "receivables"
	receivablesOrderIDIndex     = "order_id-index"
)

type receivableItem struct {
	ID           string                 `dynamodbav:"id"`
	OrderID      int64                  `dynamodbav:"order_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// ReceivableDynamoRepository persists Receivable entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id, number)

type ReceivableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceivableRepository = (*ReceivableDynamoRepository)(nil)

func NewReceivableDynamoRepository(ddb *dynamodb.Client) *ReceivableDynamoRepository {
	return &ReceivableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIVABLES_TABLE", defaultReceivablesTableName),
	}
}

func (r *ReceivableDynamoRepository) Create(ctx context.Context, rec entities.Receivable) (entities.Receivable, error) {
	it := toReceivableItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Receivable{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Receivable{}, err
	}
	return rec, nil
}

func (r *ReceivableDynamoRepository) GetByID(ctx context.Context, id string) (entities.Receivable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Receivable{}, err
	}
	if len(out.Item) == 0 {
		return entities.Receivable{}, nil
	}

	var it receivableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Receivable{}, err
	}
	return fromReceivableItem(it), nil
}

func (r *ReceivableDynamoRepository) ListByOrderID(ctx context.Context, orderID int64) ([]entities.Receivable, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(receivablesOrderIDIndex),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(orderID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	var its []receivableItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &its); err != nil {
		return nil, err
	}

	receivables := make([]entities.Receivable, 0, len(its))
	for _, it := range its {
		receivables = append(receivables, fromReceivableItem(it))
	}
	return receivables, nil
}

func toReceivableItem(rec entities.Receivable) receivableItem {
	return receivableItem{
		ID:           rec.ID,
		OrderID:      rec.OrderID,
		Amount:       floatToString(rec.Amount),
		Date:         formatTime(rec.Date),
		Status:       string(rec.Status),
		MPPayload:    rec.MPPayload,
		MPPayloadRaw: string(rec.MPPayloadRaw),
	}
}

func fromReceivableItem(it receivableItem) entities.Receivable {
	rec := entities.Receivable{
		ID:        it.ID,
		OrderID:   it.OrderID,
		Amount:    stringToFloat(it.Amount),
		Date:      parseTime(it.Date),
		Status:    entities.ReceivableStatus(it.Status),
		MPPayload: it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		rec.MPPayloadRaw = json.RawMessage(it.MPPayloadRaw)
	}
	return rec
}
