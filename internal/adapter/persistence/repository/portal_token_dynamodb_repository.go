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

const defaultPortalTokensTableName = "portal_tokens"

type portalTokenItem struct {
	TokenHash    string `dynamodbav:"token_hash"`
	CompanyID    string `dynamodbav:"company_id"`
	DocumentType string `dynamodbav:"document_type"`
	DocumentID   string `dynamodbav:"document_id"`
	Purpose      string `dynamodbav:"purpose"`
	OneShot      bool   `dynamodbav:"one_shot"`

	ExpiresAt string `dynamodbav:"expires_at"`
	UsedAt    string `dynamodbav:"used_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PortalTokenDynamoRepository persists PortalToken rows in DynamoDB.
//
// Table requirements:
//   - PK: token_hash (string)
//
// Only the SHA-256 hash of the token ever reaches this table. MarkUsed is the
// one-shot consumption primitive: it conditions on used_at not existing, so
// two racing requests resolve to exactly one winner inside DynamoDB rather
// than in application code.

type PortalTokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPortalTokenRepository = (*PortalTokenDynamoRepository)(nil)

func NewPortalTokenDynamoRepository(ddb *dynamodb.Client) *PortalTokenDynamoRepository {
	return &PortalTokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PORTAL_TOKENS_TABLE", defaultPortalTokensTableName),
	}
}

func (r *PortalTokenDynamoRepository) Create(ctx context.Context, t entities.PortalToken) error {
	av, err := attributevalue.MarshalMap(portalTokenItem{
		TokenHash:    t.TokenHash,
		CompanyID:    t.CompanyID,
		DocumentType: string(t.DocumentType),
		DocumentID:   t.DocumentID,
		Purpose:      string(t.Purpose),
		OneShot:      t.OneShot,
		ExpiresAt:    fmtTime(t.ExpiresAt),
		UsedAt:       fmtTimePtr(t.UsedAt),
		CreatedAt:    fmtTime(t.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token_hash)"),
		ExpressionAttributeNames: map[string]string{
			"#token_hash": "token_hash",
		},
	})
	return err
}

func (r *PortalTokenDynamoRepository) GetByHash(ctx context.Context, hash string) (entities.PortalToken, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token_hash": &types.AttributeValueMemberS{Value: hash},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PortalToken{}, err
	}
	if len(out.Item) == 0 {
		return entities.PortalToken{}, nil
	}

	var it portalTokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PortalToken{}, err
	}
	return entities.PortalToken{
		TokenHash:    it.TokenHash,
		CompanyID:    it.CompanyID,
		DocumentType: entities.DocumentType(it.DocumentType),
		DocumentID:   it.DocumentID,
		Purpose:      entities.TokenPurpose(it.Purpose),
		OneShot:      it.OneShot,
		ExpiresAt:    parseTime(it.ExpiresAt),
		UsedAt:       parseTimePtr(it.UsedAt),
		CreatedAt:    parseTime(it.CreatedAt),
	}, nil
}

func (r *PortalTokenDynamoRepository) MarkUsed(ctx context.Context, hash string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token_hash": &types.AttributeValueMemberS{Value: hash},
		},
		ConditionExpression: aws.String("attribute_exists(#token_hash) AND attribute_not_exists(#used_at)"),
		UpdateExpression:    aws.String("SET #used_at = :used_at"),
		ExpressionAttributeNames: map[string]string{
			"#token_hash": "token_hash",
			"#used_at":    "used_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":used_at": &types.AttributeValueMemberS{Value: fmtTime(at)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrTokenUsed
		}
		return err
	}
	return nil
}
