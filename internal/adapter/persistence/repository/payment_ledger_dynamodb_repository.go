package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsInvoiceIDIndex   = "invoice_id-index"
)

type paymentItem struct {
	ID         string `dynamodbav:"id"`
	InvoiceID  string `dynamodbav:"invoice_id"`
	CompanyID  string `dynamodbav:"company_id"`
	Amount     string `dynamodbav:"amount"`
	Method     string `dynamodbav:"method"`
	RecordedBy string `dynamodbav:"recorded_by,omitempty"`
	Note       string `dynamodbav:"note,omitempty"`

	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
}

// PaymentLedgerDynamoRepository persists Payment ledger rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// RecordPayment is the financial write path: one TransactWriteItems carrying
// the ledger-row Put and the invoice Update, the latter conditioned on
// row_version still being the version the caller validated against. Either
// both land or neither does; a version mismatch cancels the transaction and
// is reported as ErrVersionMismatch.

type PaymentLedgerDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	invoicesTable string
}

var _ interfaces.IPaymentLedgerRepository = (*PaymentLedgerDynamoRepository)(nil)

func NewPaymentLedgerDynamoRepository(ddb *dynamodb.Client) *PaymentLedgerDynamoRepository {
	return &PaymentLedgerDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		invoicesTable: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *PaymentLedgerDynamoRepository) RecordPayment(ctx context.Context, updated entities.Invoice, expectedVersion int64, p entities.Payment) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Invoice{}, err
	}

	newVersion := expectedVersion + 1
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.invoicesTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: updated.ID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #company_id = :cid AND #row_version = :expected"),
					UpdateExpression: aws.String("SET #amount_paid = :paid, #amount_due = :due, #status = :status, " +
						"#row_version = :new_version, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":          "id",
						"#company_id":  "company_id",
						"#row_version": "row_version",
						"#amount_paid": "amount_paid",
						"#amount_due":  "amount_due",
						"#status":      "status",
						"#updated_at":  "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":cid":         &types.AttributeValueMemberS{Value: updated.CompanyID},
						":expected":    &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
						":new_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(newVersion, 10)},
						":paid":        &types.AttributeValueMemberS{Value: floatToString(updated.AmountPaid)},
						":due":         &types.AttributeValueMemberS{Value: floatToString(updated.AmountDue)},
						":status":      &types.AttributeValueMemberS{Value: string(updated.Status)},
						":updated_at":  &types.AttributeValueMemberS{Value: fmtTime(updated.UpdatedAt)},
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Invoice{}, interfaces.ErrVersionMismatch
		}
		return entities.Invoice{}, err
	}

	updated.RowVersion = newVersion
	return updated, nil
}

func (r *PaymentLedgerDynamoRepository) ListByInvoiceID(ctx context.Context, companyID, invoiceID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if it.CompanyID != companyID {
			continue
		}
		items = append(items, fromPaymentItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

// isConditionalCancellation reports whether a transaction was cancelled by a
// ConditionCheckFailed on any of its items, as opposed to throttling or a
// service fault.
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		CompanyID:          p.CompanyID,
		Amount:             floatToString(p.Amount),
		Method:             string(p.Method),
		RecordedBy:         p.RecordedBy,
		Note:               p.Note,
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		CreatedAt:          fmtTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                 it.ID,
		InvoiceID:          it.InvoiceID,
		CompanyID:          it.CompanyID,
		Amount:             stringToFloat(it.Amount),
		Method:             entities.PaymentMethod(it.Method),
		RecordedBy:         it.RecordedBy,
		Note:               it.Note,
		ProviderPaymentID:  it.ProviderPaymentID,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
