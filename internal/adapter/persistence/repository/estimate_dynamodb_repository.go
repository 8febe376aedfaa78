package repository

import (
	"context"
	"errors"
	"time"

	"granite_estimator/internal/domain/entities"
	"granite_estimator/internal/domain/estimator"
	"granite_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type projectRequestItem struct {
	TotalAreaSqFt         float64 `dynamodbav:"total_area_sq_ft"`
	MaterialKey           string  `dynamodbav:"material_key"`
	DemoRequired          bool    `dynamodbav:"demo_required"`
	SinkCount             float64 `dynamodbav:"sink_count"`
	SinkTier              string  `dynamodbav:"sink_tier"`
	CooktopCount          float64 `dynamodbav:"cooktop_count"`
	CooktopTier           string  `dynamodbav:"cooktop_tier"`
	BacksplashRequired    bool    `dynamodbav:"backsplash_required"`
	BacksplashCostPerSqFt float64 `dynamodbav:"backsplash_cost_per_sq_ft"`
	EdgeDetail            string  `dynamodbav:"edge_detail"`
	JobType               string  `dynamodbav:"job_type"`
	CustomerName          string  `dynamodbav:"customer_name,omitempty"`
	JobName               string  `dynamodbav:"job_name,omitempty"`
	Vendor                string  `dynamodbav:"vendor,omitempty"`
	Color                 string  `dynamodbav:"color,omitempty"`
}

type breakdownItem struct {
	MaterialCost     float64 `dynamodbav:"material_cost"`
	SinkCost         float64 `dynamodbav:"sink_cost"`
	CooktopCost      float64 `dynamodbav:"cooktop_cost"`
	BacksplashCost   float64 `dynamodbav:"backsplash_cost"`
	LaborCost        float64 `dynamodbav:"labor_cost"`
	PreliminaryTotal float64 `dynamodbav:"preliminary_total"`
	TotalProjectCost float64 `dynamodbav:"total_project_cost"`
	SlabCount        int     `dynamodbav:"slab_count"`
	FinalCostPerSqFt float64 `dynamodbav:"final_cost_per_sq_ft"`
}

type estimateItem struct {
	ID                string             `dynamodbav:"id"`
	Status            string             `dynamodbav:"status"`
	Request           projectRequestItem `dynamodbav:"request"`
	Breakdown         breakdownItem      `dynamodbav:"breakdown"`
	UnitCostPerSqFt   float64            `dynamodbav:"unit_cost_per_sq_ft"`
	SlabCoverageSqFt  float64            `dynamodbav:"slab_coverage_sq_ft"`
	MaterialKey       string             `dynamodbav:"material_key"`
	MaterialDefaulted bool               `dynamodbav:"material_defaulted"`
	EffectiveAreaSqFt float64            `dynamodbav:"effective_area_sq_ft"`
	CalculationMode   string             `dynamodbav:"calculation_mode"`
	Narrative         string             `dynamodbav:"narrative,omitempty"`
	NarrativeStatus   string             `dynamodbav:"narrative_status"`
	CreatedAt         string             `dynamodbav:"created_at"`
	UpdatedAt         string             `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		cond := "#status = :from"
		expr := "SET #status = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return cond, expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateNarrative(ctx context.Context, id string, narrative string, status entities.NarrativeStatus) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #narrative = :narrative, #narrative_status = :narrative_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":narrative":        &types.AttributeValueMemberS{Value: narrative},
			":narrative_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#narrative":        "narrative",
			"#narrative_status": "narrative_status",
			"#updated_at":       "updated_at",
		}
		return "", expr, vals, names
	})
}

// update applies an UpdateItem to an existing row. build may return an extra
// condition that is ANDed with the existence check. A failed condition yields
// a zero Estimate and no error.
func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (condition, updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := formatTime(time.Now())
	cond, updateExpr, values, names := build(now)

	condition := "attribute_exists(#id)"
	if cond != "" {
		condition += " AND " + cond
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	req := e.Request
	b := e.Breakdown
	return estimateItem{
		ID:     e.ID,
		Status: string(e.Status),
		Request: projectRequestItem{
			TotalAreaSqFt:         req.TotalAreaSqFt,
			MaterialKey:           req.MaterialKey,
			DemoRequired:          req.DemoRequired,
			SinkCount:             req.SinkCount,
			SinkTier:              string(req.SinkTier),
			CooktopCount:          req.CooktopCount,
			CooktopTier:           string(req.CooktopTier),
			BacksplashRequired:    req.BacksplashRequired,
			BacksplashCostPerSqFt: req.BacksplashCostPerSqFt,
			EdgeDetail:            string(req.EdgeDetail),
			JobType:               string(req.JobType),
			CustomerName:          req.CustomerName,
			JobName:               req.JobName,
			Vendor:                req.Vendor,
			Color:                 req.Color,
		},
		Breakdown: breakdownItem{
			MaterialCost:     b.MaterialCost,
			SinkCost:         b.SinkCost,
			CooktopCost:      b.CooktopCost,
			BacksplashCost:   b.BacksplashCost,
			LaborCost:        b.LaborCost,
			PreliminaryTotal: b.PreliminaryTotal,
			TotalProjectCost: b.TotalProjectCost,
			SlabCount:        b.SlabCount,
			FinalCostPerSqFt: b.FinalCostPerSqFt,
		},
		UnitCostPerSqFt:   e.PriceEntry.UnitCostPerSqFt,
		SlabCoverageSqFt:  e.PriceEntry.SlabCoverageSqFt,
		MaterialKey:       e.MaterialKey,
		MaterialDefaulted: e.MaterialDefaulted,
		EffectiveAreaSqFt: e.EffectiveAreaSqFt,
		CalculationMode:   string(e.CalculationMode),
		Narrative:         e.Narrative,
		NarrativeStatus:   string(e.NarrativeStatus),
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	req := it.Request
	b := it.Breakdown
	return entities.Estimate{
		ID: it.ID,
		Request: estimator.ProjectRequest{
			TotalAreaSqFt:         req.TotalAreaSqFt,
			MaterialKey:           req.MaterialKey,
			DemoRequired:          req.DemoRequired,
			SinkCount:             req.SinkCount,
			SinkTier:              estimator.Tier(req.SinkTier),
			CooktopCount:          req.CooktopCount,
			CooktopTier:           estimator.Tier(req.CooktopTier),
			BacksplashRequired:    req.BacksplashRequired,
			BacksplashCostPerSqFt: req.BacksplashCostPerSqFt,
			EdgeDetail:            estimator.EdgeDetail(req.EdgeDetail),
			JobType:               estimator.JobType(req.JobType),
			CustomerName:          req.CustomerName,
			JobName:               req.JobName,
			Vendor:                req.Vendor,
			Color:                 req.Color,
		},
		Breakdown: estimator.Breakdown{
			MaterialCost:     b.MaterialCost,
			SinkCost:         b.SinkCost,
			CooktopCost:      b.CooktopCost,
			BacksplashCost:   b.BacksplashCost,
			LaborCost:        b.LaborCost,
			PreliminaryTotal: b.PreliminaryTotal,
			TotalProjectCost: b.TotalProjectCost,
			SlabCount:        b.SlabCount,
			FinalCostPerSqFt: b.FinalCostPerSqFt,
		},
		PriceEntry: estimator.PriceEntry{
			UnitCostPerSqFt:  it.UnitCostPerSqFt,
			SlabCoverageSqFt: it.SlabCoverageSqFt,
		},
		MaterialKey:       it.MaterialKey,
		MaterialDefaulted: it.MaterialDefaulted,
		EffectiveAreaSqFt: it.EffectiveAreaSqFt,
		CalculationMode:   estimator.Mode(it.CalculationMode),
		Narrative:         it.Narrative,
		NarrativeStatus:   entities.NarrativeStatus(it.NarrativeStatus),
		Status:            entities.EstimateStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
