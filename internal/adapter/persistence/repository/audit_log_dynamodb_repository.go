package repository

import (
	"context"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAuditLogTableName = "audit_log"

type auditLogItem struct {
	ID            string `dynamodbav:"id"`
	CompanyID     string `dynamodbav:"company_id"`
	EntityType    string `dynamodbav:"entity_type"`
	EntityID      string `dynamodbav:"entity_id"`
	LinkedEntryID string `dynamodbav:"linked_entry_id,omitempty"`

	Action        string `dynamodbav:"action"`
	PreviousState string `dynamodbav:"previous_state,omitempty"`
	NewState      string `dynamodbav:"new_state,omitempty"`
	Reason        string `dynamodbav:"reason,omitempty"`
	Denied        bool   `dynamodbav:"denied"`

	Actor     entities.Actor `dynamodbav:"actor"`
	CreatedAt string         `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository persists AuditLogEntry rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Append-only by construction: there is no update or delete path, and the
// Put conditions on the id not existing.

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOG_TABLE", defaultAuditLogTableName),
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, e entities.AuditLogEntry) error {
	av, err := attributevalue.MarshalMap(auditLogItem{
		ID:            e.ID,
		CompanyID:     e.CompanyID,
		EntityType:    e.EntityType,
		EntityID:      e.EntityID,
		LinkedEntryID: e.LinkedEntryID,
		Action:        e.Action,
		PreviousState: e.PreviousState,
		NewState:      e.NewState,
		Reason:        e.Reason,
		Denied:        e.Denied,
		Actor:         e.Actor,
		CreatedAt:     fmtTime(e.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
