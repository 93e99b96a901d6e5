package repository

import (
	"context"
	"errors"
	"time"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID               string `dynamodbav:"id"`
	CompanyID        string `dynamodbav:"company_id"`
	CustomerID       string `dynamodbav:"customer_id"`
	Title            string `dynamodbav:"title,omitempty"`
	Status           string `dynamodbav:"status"`
	Version          int64  `dynamodbav:"version"`
	ParentEstimateID string `dynamodbav:"parent_estimate_id,omitempty"`

	CostProfileVersion int64                     `dynamodbav:"cost_profile_version"`
	WorkItems          []entities.WorkItem       `dynamodbav:"work_items"`
	Pricing            entities.PricingBreakdown `dynamodbav:"pricing"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Tenant scoping is enforced on every read and conditional write: an estimate
// belonging to another company behaves exactly like one that does not exist.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
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

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Estimate, error) {
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
	if it.CompanyID != companyID {
		// Wrong tenant reads as absent.
		return entities.Estimate{}, nil
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #company_id = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#company_id": "company_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: e.CompanyID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

// UpdateStatus writes the new status only if the row still holds the status
// the caller validated against. A lost race surfaces as ErrStaleStatus, never
// as a silent overwrite.
func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, companyID, id string, from, to entities.EstimateStatus) (entities.Estimate, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #company_id = :cid AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#company_id": "company_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":        &types.AttributeValueMemberS{Value: companyID},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: fmtTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, interfaces.ErrStaleStatus
		}
		return entities.Estimate{}, err
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:                 e.ID,
		CompanyID:          e.CompanyID,
		CustomerID:         e.CustomerID,
		Title:              e.Title,
		Status:             string(e.Status),
		Version:            e.Version,
		ParentEstimateID:   e.ParentEstimateID,
		CostProfileVersion: e.CostProfileVersion,
		WorkItems:          e.WorkItems,
		Pricing:            e.Pricing,
		CreatedAt:          fmtTime(e.CreatedAt),
		UpdatedAt:          fmtTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:                 it.ID,
		CompanyID:          it.CompanyID,
		CustomerID:         it.CustomerID,
		Title:              it.Title,
		Status:             entities.EstimateStatus(it.Status),
		Version:            it.Version,
		ParentEstimateID:   it.ParentEstimateID,
		CostProfileVersion: it.CostProfileVersion,
		WorkItems:          it.WorkItems,
		Pricing:            it.Pricing,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
