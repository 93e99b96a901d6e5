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

const (
	defaultInvoicesTableName = "invoices"
	invoicesJobIDIndex       = "job_id-index"
)

type invoiceItem struct {
	ID         string `dynamodbav:"id"`
	CompanyID  string `dynamodbav:"company_id"`
	CustomerID string `dynamodbav:"customer_id"`
	JobID      string `dynamodbav:"job_id,omitempty"`
	EstimateID string `dynamodbav:"estimate_id,omitempty"`
	Type       string `dynamodbav:"type"`
	Status     string `dynamodbav:"status"`

	Total      string `dynamodbav:"total"`
	AmountPaid string `dynamodbav:"amount_paid"`
	AmountDue  string `dynamodbav:"amount_due"`
	RowVersion int64  `dynamodbav:"row_version"`

	WriteOffReason string `dynamodbav:"write_off_reason,omitempty"`

	DueAt     string `dynamodbav:"due_at"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Money updates never go through this repository; they are transactional
// writes owned by PaymentLedgerDynamoRepository. UpdateStatus here covers the
// direct (non-payment) transitions only.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	if it.CompanyID != companyID {
		return entities.Invoice{}, nil
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByJobID(ctx context.Context, companyID, jobID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if it.CompanyID != companyID {
			continue
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, companyID, id string, from, to entities.InvoiceStatus, writeOffReason string) (entities.Invoice, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#company_id": "company_id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":cid":        &types.AttributeValueMemberS{Value: companyID},
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: fmtTime(time.Now())},
	}
	if writeOffReason != "" {
		expr += ", #write_off_reason = :reason"
		names["#write_off_reason"] = "write_off_reason"
		values[":reason"] = &types.AttributeValueMemberS{Value: writeOffReason}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #company_id = :cid AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, interfaces.ErrStaleStatus
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:             inv.ID,
		CompanyID:      inv.CompanyID,
		CustomerID:     inv.CustomerID,
		JobID:          inv.JobID,
		EstimateID:     inv.EstimateID,
		Type:           string(inv.Type),
		Status:         string(inv.Status),
		Total:          floatToString(inv.Total),
		AmountPaid:     floatToString(inv.AmountPaid),
		AmountDue:      floatToString(inv.AmountDue),
		RowVersion:     inv.RowVersion,
		WriteOffReason: inv.WriteOffReason,
		DueAt:          fmtTime(inv.DueAt),
		CreatedAt:      fmtTime(inv.CreatedAt),
		UpdatedAt:      fmtTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:             it.ID,
		CompanyID:      it.CompanyID,
		CustomerID:     it.CustomerID,
		JobID:          it.JobID,
		EstimateID:     it.EstimateID,
		Type:           entities.InvoiceType(it.Type),
		Status:         entities.InvoiceStatus(it.Status),
		Total:          stringToFloat(it.Total),
		AmountPaid:     stringToFloat(it.AmountPaid),
		AmountDue:      stringToFloat(it.AmountDue),
		RowVersion:     it.RowVersion,
		WriteOffReason: it.WriteOffReason,
		DueAt:          parseTime(it.DueAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
