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
	defaultTasksTableName = "tasks"
	tasksSequenceName     = "tasks"
)

type taskItem struct {
	ID              int64  `dynamodbav:"id"`
	Title           string `dynamodbav:"title"`
	Description     string `dynamodbav:"description,omitempty"`
	Priority        string `dynamodbav:"priority"`
	Status          string `dynamodbav:"status"`
	DueAt           string `dynamodbav:"due_at,omitempty"`
	RelatedOrderID  *int64 `dynamodbav:"related_order_id,omitempty"`
	RelatedClientID *int64 `dynamodbav:"related_client_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// TaskDynamoRepository persists Task entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number), assigned from the counters table
//
// An absent due_at attribute means "no deadline"; the empty string never
// round-trips into a zero time.

type TaskDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb *dynamodb.Client) *TaskDynamoRepository {
	return &TaskDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("TASKS_TABLE", defaultTasksTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *TaskDynamoRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	id, err := nextSequence(ctx, r.ddb, r.countersTable, tasksSequenceName)
	if err != nil {
		return entities.Task{}, err
	}

	now := time.Now().UTC()
	t.ID = id
	t.CreatedAt = now
	t.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
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
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) List(ctx context.Context) ([]entities.Task, error) {
	var tasks []entities.Task
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var its []taskItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			tasks = append(tasks, fromTaskItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return tasks, nil
}

func (r *TaskDynamoRepository) Update(ctx context.Context, t entities.Task) (entities.Task, error) {
	return r.update(ctx, t.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #title = :title, #description = :description, #priority = :priority, #status = :status, #due_at = :due_at, #related_order_id = :related_order_id, #related_client_id = :related_client_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":title":             &types.AttributeValueMemberS{Value: t.Title},
			":description":       &types.AttributeValueMemberS{Value: t.Description},
			":priority":          &types.AttributeValueMemberS{Value: string(t.Priority)},
			":status":            &types.AttributeValueMemberS{Value: string(t.Status)},
			":due_at":            dueAtAttr(t.DueAt),
			":related_order_id":  optionalNumberAttr(t.RelatedOrderID),
			":related_client_id": optionalNumberAttr(t.RelatedClientID),
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#title":             "title",
			"#description":       "description",
			"#priority":          "priority",
			"#status":            "status",
			"#due_at":            "due_at",
			"#related_order_id":  "related_order_id",
			"#related_client_id": "related_client_id",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TaskDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.TaskStatus) (entities.Task, error) {
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

func (r *TaskDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
	})
	return err
}

func (r *TaskDynamoRepository) update(
	ctx context.Context,
	id int64,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Task, error) {
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
			return entities.Task{}, nil
		}
		return entities.Task{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Task{}, nil
	}
	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func dueAtAttr(dueAt *time.Time) types.AttributeValue {
	if dueAt == nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return &types.AttributeValueMemberS{Value: formatTime(*dueAt)}
}

func optionalNumberAttr(v *int64) types.AttributeValue {
	if v == nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(*v, 10)}
}

func toTaskItem(t entities.Task) taskItem {
	it := taskItem{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        string(t.Priority),
		Status:          string(t.Status),
		RelatedOrderID:  t.RelatedOrderID,
		RelatedClientID: t.RelatedClientID,
		CreatedAt:       formatTime(t.CreatedAt),
		UpdatedAt:       formatTime(t.UpdatedAt),
	}
	if t.DueAt != nil {
		it.DueAt = formatTime(*t.DueAt)
	}
	return it
}

func fromTaskItem(it taskItem) entities.Task {
	t := entities.Task{
		ID:              it.ID,
		Title:           it.Title,
		Description:     it.Description,
		Priority:        entities.TaskPriority(it.Priority),
		Status:          entities.TaskStatus(it.Status),
		RelatedOrderID:  it.RelatedOrderID,
		RelatedClientID: it.RelatedClientID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
	if it.DueAt != "" {
		due := parseTime(it.DueAt)
		t.DueAt = &due
	}
	return t
}
