package repository

import (
	"context"

	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsEstimateIDIndex = "estimate_id-index"

type depositPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	EstimateID   string                 `dynamodbav:"estimate_id"`
	Amount       float64                `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// DepositPaymentDynamoRepository persists DepositPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)

type DepositPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositPaymentRepository = (*DepositPaymentDynamoRepository)(nil)

func NewDepositPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *DepositPaymentDynamoRepository {
	return &DepositPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DepositPaymentDynamoRepository) Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	av, err := attributevalue.MarshalMap(toDepositPaymentItem(p))
	if err != nil {
		return entities.DepositPayment{}, err
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
		return entities.DepositPayment{}, err
	}
	return p, nil
}

func (r *DepositPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.DepositPayment{}, nil
	}

	var it depositPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DepositPayment{}, err
	}
	return fromDepositPaymentItem(it), nil
}

func (r *DepositPaymentDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DepositPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositPaymentItem(it))
	}
	return items, nil
}

func toDepositPaymentItem(p entities.DepositPayment) depositPaymentItem {
	return depositPaymentItem{
		ID:           p.ID,
		EstimateID:   p.EstimateID,
		Amount:       p.Amount,
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromDepositPaymentItem(it depositPaymentItem) entities.DepositPayment {
	return entities.DepositPayment{
		ID:           it.ID,
		EstimateID:   it.EstimateID,
		Amount:       it.Amount,
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
