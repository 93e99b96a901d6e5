package repository

import (
	"context"
	"strconv"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCostProfilesTableName = "cost_profiles"

type costProfileItem struct {
	CompanyID string `dynamodbav:"company_id"`
	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	CreatedBy string `dynamodbav:"created_by"`

	LaborRoles      []entities.LaborRole      `dynamodbav:"labor_roles"`
	Equipment       []entities.EquipmentCost  `dynamodbav:"equipment,omitempty"`
	OverheadBuckets []entities.OverheadBucket `dynamodbav:"overhead_buckets,omitempty"`
	Margins         entities.MarginTargets    `dynamodbav:"margins"`
	Utilization     float64                   `dynamodbav:"utilization"`
	BillableDays    float64                   `dynamodbav:"billable_days"`

	Outputs entities.CalculatedOutputs `dynamodbav:"calculated_outputs"`
}

// CostProfileDynamoRepository persists CostProfileSnapshot rows in DynamoDB.
//
// Table requirements:
//   - PK: company_id (string)
//   - SK: version (number)
//
// Rows are append-only: Create refuses to overwrite an existing
// (company_id, version) pair, so a snapshot can never be mutated after the
// fact.

type CostProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostProfileRepository = (*CostProfileDynamoRepository)(nil)

func NewCostProfileDynamoRepository(ddb *dynamodb.Client) *CostProfileDynamoRepository {
	return &CostProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COST_PROFILES_TABLE", defaultCostProfilesTableName),
	}
}

func (r *CostProfileDynamoRepository) Create(ctx context.Context, s entities.CostProfileSnapshot) error {
	av, err := attributevalue.MarshalMap(toCostProfileItem(s))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#company_id)"),
		ExpressionAttributeNames: map[string]string{
			"#company_id": "company_id",
		},
	})
	return err
}

func (r *CostProfileDynamoRepository) GetLatest(ctx context.Context, companyID string) (entities.CostProfileSnapshot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return entities.CostProfileSnapshot{}, err
	}
	if len(out.Items) == 0 {
		return entities.CostProfileSnapshot{}, nil
	}

	var it costProfileItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CostProfileSnapshot{}, err
	}
	return fromCostProfileItem(it), nil
}

func (r *CostProfileDynamoRepository) GetVersion(ctx context.Context, companyID string, version int64) (entities.CostProfileSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"company_id": &types.AttributeValueMemberS{Value: companyID},
			"version":    &types.AttributeValueMemberN{Value: strconv.FormatInt(version, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostProfileSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostProfileSnapshot{}, nil
	}

	var it costProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostProfileSnapshot{}, err
	}
	return fromCostProfileItem(it), nil
}

func toCostProfileItem(s entities.CostProfileSnapshot) costProfileItem {
	return costProfileItem{
		CompanyID:       s.CompanyID,
		Version:         s.Version,
		CreatedAt:       fmtTime(s.CreatedAt),
		CreatedBy:       s.CreatedBy,
		LaborRoles:      s.LaborRoles,
		Equipment:       s.Equipment,
		OverheadBuckets: s.OverheadBuckets,
		Margins:         s.Margins,
		Utilization:     s.Utilization,
		BillableDays:    s.BillableDays,
		Outputs:         s.Outputs,
	}
}

func fromCostProfileItem(it costProfileItem) entities.CostProfileSnapshot {
	return entities.CostProfileSnapshot{
		CompanyID:       it.CompanyID,
		Version:         it.Version,
		CreatedAt:       parseTime(it.CreatedAt),
		CreatedBy:       it.CreatedBy,
		LaborRoles:      it.LaborRoles,
		Equipment:       it.Equipment,
		OverheadBuckets: it.OverheadBuckets,
		Margins:         it.Margins,
		Utilization:     it.Utilization,
		BillableDays:    it.BillableDays,
		Outputs:         it.Outputs,
	}
}
