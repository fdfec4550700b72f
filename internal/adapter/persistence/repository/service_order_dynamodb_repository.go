package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "service_orders"
	ordersSequenceName     = "service_orders"
)

type orderLineItem struct {
	CatalogItemID *int64 `dynamodbav:"catalog_item_id,omitempty"`
	Description   string `dynamodbav:"description,omitempty"`
	Quantity      string `dynamodbav:"quantity"`
	UnitPrice     string `dynamodbav:"unit_price"`
}

type serviceOrderItem struct {
	ID             int64           `dynamodbav:"id"`
	Type           string          `dynamodbav:"type"`
	ClientID       int64           `dynamodbav:"client_id"`
	VehicleID      int64           `dynamodbav:"vehicle_id"`
	Description    string          `dynamodbav:"description,omitempty"`
	Items          []orderLineItem `dynamodbav:"items"`
	DiscountAmount string          `dynamodbav:"discount_amount"`
	Status         string          `dynamodbav:"status"`
	OpenedAt       string          `dynamodbav:"opened_at"`
	UpdatedAt      string          `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number), assigned from the counters table
//
// Line items live inside the order item as a list attribute; totals are
// never stored, they are recomputed from items+discount on read.

type ServiceOrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("SERVICE_ORDERS_TABLE", defaultOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	id, err := nextSequence(ctx, r.ddb, r.countersTable, ordersSequenceName)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	now := time.Now().UTC()
	o.ID = id
	o.OpenedAt = now
	o.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var its []serviceOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			orders = append(orders, fromServiceOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	lineItems, err := attributevalue.Marshal(toOrderLineItems(o.Items))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	return r.update(ctx, o.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #description = :description, #items = :items, #discount_amount = :discount_amount, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":description":     &types.AttributeValueMemberS{Value: o.Description},
			":items":           lineItems,
			":discount_amount": &types.AttributeValueMemberS{Value: floatToString(o.DiscountAmount)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#description":     "description",
			"#items":           "items",
			"#discount_amount": "discount_amount",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceOrderDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.ServiceOrder, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
	})
	return err
}

func (r *ServiceOrderDynamoRepository) update(
	ctx context.Context,
	id int64,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ServiceOrder, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}
	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func toOrderLineItems(items []entities.OrderItem) []orderLineItem {
	out := make([]orderLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, orderLineItem{
			CatalogItemID: it.CatalogItemID,
			Description:   it.Description,
			Quantity:      floatToString(it.Quantity),
			UnitPrice:     floatToString(it.UnitPrice),
		})
	}
	return out
}

func fromOrderLineItems(items []orderLineItem) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.OrderItem{
			CatalogItemID: it.CatalogItemID,
			Description:   it.Description,
			Quantity:      stringToFloat(it.Quantity),
			UnitPrice:     stringToFloat(it.UnitPrice),
		})
	}
	return out
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:             o.ID,
		Type:           string(o.Type),
		ClientID:       o.ClientID,
		VehicleID:      o.VehicleID,
		Description:    o.Description,
		Items:          toOrderLineItems(o.Items),
		DiscountAmount: floatToString(o.DiscountAmount),
		Status:         string(o.Status),
		OpenedAt:       formatTime(o.OpenedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:             it.ID,
		Type:           entities.OrderType(it.Type),
		ClientID:       it.ClientID,
		VehicleID:      it.VehicleID,
		Description:    it.Description,
		Items:          fromOrderLineItems(it.Items),
		DiscountAmount: stringToFloat(it.DiscountAmount),
		Status:         entities.OrderStatus(it.Status),
		OpenedAt:       parseTime(it.OpenedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
