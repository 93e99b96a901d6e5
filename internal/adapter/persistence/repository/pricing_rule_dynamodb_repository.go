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

const (
	defaultPricingRulesTableName    = "pricing_rules"
	defaultPricingProfilesTableName = "pricing_profiles"
)

type pricingRuleItem struct {
	CompanyID  string                  `dynamodbav:"company_id"`
	SortOrder  int64                   `dynamodbav:"sort_order"`
	ID         string                  `dynamodbav:"id"`
	Name       string                  `dynamodbav:"name"`
	BoundField string                  `dynamodbav:"bound_field,omitempty"`
	Condition  *entities.RuleCondition `dynamodbav:"condition,omitempty"`
	Effect     string                  `dynamodbav:"effect"`
	Amount     string                  `dynamodbav:"amount"`
	CreatedAt  string                  `dynamodbav:"created_at"`
}

type pricingProfileItem struct {
	CompanyID          string `dynamodbav:"company_id"`
	TaxPercent         string `dynamodbav:"tax_percent"`
	DepositPercent     string `dynamodbav:"deposit_percent"`
	CommissionPercent  string `dynamodbav:"commission_percent"`
	EstimatedCostRatio string `dynamodbav:"estimated_cost_ratio"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// PricingRuleDynamoRepository persists the tenant rule set and pricing
// profile in DynamoDB.
//
// Table requirements:
//   - pricing_rules: PK company_id (string), SK sort_order (number)
//   - pricing_profiles: PK company_id (string)
//
// Rules are keyed by creation order, so a plain ascending Query returns them
// already in evaluation order.

type PricingRuleDynamoRepository struct {
	ddb           *dynamodb.Client
	rulesTable    string
	profilesTable string
}

var _ interfaces.IPricingRuleRepository = (*PricingRuleDynamoRepository)(nil)

func NewPricingRuleDynamoRepository(ddb *dynamodb.Client) *PricingRuleDynamoRepository {
	return &PricingRuleDynamoRepository{
		ddb:           ddb,
		rulesTable:    getenvDefault("PRICING_RULES_TABLE", defaultPricingRulesTableName),
		profilesTable: getenvDefault("PRICING_PROFILES_TABLE", defaultPricingProfilesTableName),
	}
}

func (r *PricingRuleDynamoRepository) CreateRule(ctx context.Context, rule entities.PricingRule) (entities.PricingRule, error) {
	av, err := attributevalue.MarshalMap(pricingRuleItem{
		CompanyID:  rule.CompanyID,
		SortOrder:  rule.SortOrder,
		ID:         rule.ID,
		Name:       rule.Name,
		BoundField: rule.BoundField,
		Condition:  rule.Condition,
		Effect:     string(rule.Effect),
		Amount:     floatToString(rule.Amount),
		CreatedAt:  fmtTime(rule.CreatedAt),
	})
	if err != nil {
		return entities.PricingRule{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.rulesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#company_id)"),
		ExpressionAttributeNames: map[string]string{
			"#company_id": "company_id",
		},
	})
	if err != nil {
		return entities.PricingRule{}, err
	}
	return rule, nil
}

func (r *PricingRuleDynamoRepository) ListRules(ctx context.Context, companyID string) ([]entities.PricingRule, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.rulesTable),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	rules := make([]entities.PricingRule, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pricingRuleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rules = append(rules, entities.PricingRule{
			CompanyID:  it.CompanyID,
			SortOrder:  it.SortOrder,
			ID:         it.ID,
			Name:       it.Name,
			BoundField: it.BoundField,
			Condition:  it.Condition,
			Effect:     entities.EffectKind(it.Effect),
			Amount:     stringToFloat(it.Amount),
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}
	return rules, nil
}

func (r *PricingRuleDynamoRepository) GetProfile(ctx context.Context, companyID string) (entities.PricingProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.profilesTable),
		Key: map[string]types.AttributeValue{
			"company_id": &types.AttributeValueMemberS{Value: companyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingProfile{}, err
	}
	if len(out.Item) == 0 {
		// A tenant that never saved a profile gets the zero-percent default.
		return entities.PricingProfile{CompanyID: companyID}, nil
	}

	var it pricingProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingProfile{}, err
	}
	return entities.PricingProfile{
		CompanyID:          it.CompanyID,
		TaxPercent:         stringToFloat(it.TaxPercent),
		DepositPercent:     stringToFloat(it.DepositPercent),
		CommissionPercent:  stringToFloat(it.CommissionPercent),
		EstimatedCostRatio: stringToFloat(it.EstimatedCostRatio),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}, nil
}

func (r *PricingRuleDynamoRepository) SaveProfile(ctx context.Context, p entities.PricingProfile) (entities.PricingProfile, error) {
	av, err := attributevalue.MarshalMap(pricingProfileItem{
		CompanyID:          p.CompanyID,
		TaxPercent:         floatToString(p.TaxPercent),
		DepositPercent:     floatToString(p.DepositPercent),
		CommissionPercent:  floatToString(p.CommissionPercent),
		EstimatedCostRatio: floatToString(p.EstimatedCostRatio),
		UpdatedAt:          fmtTime(p.UpdatedAt),
	})
	if err != nil {
		return entities.PricingProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.profilesTable),
		Item:      av,
	})
	if err != nil {
		return entities.PricingProfile{}, err
	}
	return p, nil
}
