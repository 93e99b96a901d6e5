package repository

import (
	"context"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimateSnapshotsTableName = "estimate_snapshots"

type estimateSnapshotItem struct {
	EstimateID      string `dynamodbav:"estimate_id"`
	SnapshotVersion int64  `dynamodbav:"snapshot_version"`
	CompanyID       string `dynamodbav:"company_id"`
	TriggerAction   string `dynamodbav:"trigger_action"`

	WorkItems      []entities.WorkItem       `dynamodbav:"work_items"`
	Pricing        entities.PricingBreakdown `dynamodbav:"pricing"`
	PreviousStatus string                    `dynamodbav:"previous_status"`
	NewStatus      string                    `dynamodbav:"new_status"`

	Actor     entities.Actor `dynamodbav:"actor"`
	CreatedAt string         `dynamodbav:"created_at"`
}

// EstimateSnapshotDynamoRepository persists EstimateSnapshot rows in DynamoDB.
//
// Table requirements:
//   - PK: estimate_id (string)
//   - SK: snapshot_version (number)
//
// The table is append-only. Append conditions on the (estimate_id,
// snapshot_version) pair not existing, so a version number can never be
// reused even under concurrent writers.

type EstimateSnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateSnapshotRepository = (*EstimateSnapshotDynamoRepository)(nil)

func NewEstimateSnapshotDynamoRepository(ddb *dynamodb.Client) *EstimateSnapshotDynamoRepository {
	return &EstimateSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATE_SNAPSHOTS_TABLE", defaultEstimateSnapshotsTableName),
	}
}

func (r *EstimateSnapshotDynamoRepository) Append(ctx context.Context, s entities.EstimateSnapshot) error {
	av, err := attributevalue.MarshalMap(toEstimateSnapshotItem(s))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#estimate_id)"),
		ExpressionAttributeNames: map[string]string{
			"#estimate_id": "estimate_id",
		},
	})
	return err
}

func (r *EstimateSnapshotDynamoRepository) LatestVersion(ctx context.Context, estimateID string) (int64, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Items) == 0 {
		return 0, nil
	}

	var it estimateSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return 0, err
	}
	return it.SnapshotVersion, nil
}

func (r *EstimateSnapshotDynamoRepository) ListByEstimateID(ctx context.Context, companyID, estimateID string) ([]entities.EstimateSnapshot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EstimateSnapshot, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateSnapshotItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if it.CompanyID != companyID {
			continue
		}
		items = append(items, fromEstimateSnapshotItem(it))
	}
	return items, nil
}

func toEstimateSnapshotItem(s entities.EstimateSnapshot) estimateSnapshotItem {
	return estimateSnapshotItem{
		EstimateID:      s.EstimateID,
		SnapshotVersion: s.SnapshotVersion,
		CompanyID:       s.CompanyID,
		TriggerAction:   string(s.TriggerAction),
		WorkItems:       s.WorkItems,
		Pricing:         s.Pricing,
		PreviousStatus:  string(s.PreviousStatus),
		NewStatus:       string(s.NewStatus),
		Actor:           s.Actor,
		CreatedAt:       fmtTime(s.CreatedAt),
	}
}

func fromEstimateSnapshotItem(it estimateSnapshotItem) entities.EstimateSnapshot {
	return entities.EstimateSnapshot{
		EstimateID:      it.EstimateID,
		SnapshotVersion: it.SnapshotVersion,
		CompanyID:       it.CompanyID,
		TriggerAction:   entities.TriggerAction(it.TriggerAction),
		WorkItems:       it.WorkItems,
		Pricing:         it.Pricing,
		PreviousStatus:  entities.EstimateStatus(it.PreviousStatus),
		NewStatus:       entities.EstimateStatus(it.NewStatus),
		Actor:           it.Actor,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
