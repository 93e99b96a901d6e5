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
	defaultContractsTableName       = "contracts"
	defaultSignedContractsTableName = "signed_contracts"
)

type contractItem struct {
	ID                      string `dynamodbav:"id"`
	CompanyID               string `dynamodbav:"company_id"`
	CustomerID              string `dynamodbav:"customer_id"`
	EstimateID              string `dynamodbav:"estimate_id"`
	EstimateSnapshotVersion int64  `dynamodbav:"estimate_snapshot_version"`
	Status                  string `dynamodbav:"status"`

	HeaderContent    string `dynamodbav:"header_content,omitempty"`
	WorkItemsContent string `dynamodbav:"work_items_content,omitempty"`
	TermsContent     string `dynamodbav:"terms_content,omitempty"`
	FooterContent    string `dynamodbav:"footer_content,omitempty"`

	SignedByName string `dynamodbav:"signed_by_name,omitempty"`
	SignedAt     string `dynamodbav:"signed_at,omitempty"`
	LockedAt     string `dynamodbav:"locked_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type signedContractItem struct {
	ContractID string `dynamodbav:"contract_id"`
	CompanyID  string `dynamodbav:"company_id"`

	HeaderContent    string `dynamodbav:"header_content,omitempty"`
	WorkItemsContent string `dynamodbav:"work_items_content,omitempty"`
	TermsContent     string `dynamodbav:"terms_content,omitempty"`
	FooterContent    string `dynamodbav:"footer_content,omitempty"`

	SignedByName string         `dynamodbav:"signed_by_name"`
	Signer       entities.Actor `dynamodbav:"signer"`
	SignedAt     string         `dynamodbav:"signed_at"`
}

// ContractDynamoRepository persists Contract entities and their signed legal
// snapshots in DynamoDB.
//
// Table requirements:
//   - contracts: PK id (string)
//   - signed_contracts: PK contract_id (string)
//
// CreateSignedSnapshot conditions on the snapshot not existing: a contract
// has at most one legal record, and it is written before the contract row is
// marked signed.

type ContractDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	signedTable string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
		signedTable: getenvDefault("SIGNED_CONTRACTS_TABLE", defaultSignedContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	if it.CompanyID != companyID {
		return entities.Contract{}, nil
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	// Locked rows are immutable at the storage layer too.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #company_id = :cid AND attribute_not_exists(#locked_at)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#company_id": "company_id",
			"#locked_at":  "locked_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: c.CompanyID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) UpdateStatus(ctx context.Context, companyID, id string, from, to entities.ContractStatus) (entities.Contract, error) {
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
			return entities.Contract{}, interfaces.ErrStaleStatus
		}
		return entities.Contract{}, err
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) CreateSignedSnapshot(ctx context.Context, s entities.SignedContractSnapshot) error {
	av, err := attributevalue.MarshalMap(signedContractItem{
		ContractID:       s.ContractID,
		CompanyID:        s.CompanyID,
		HeaderContent:    s.HeaderContent,
		WorkItemsContent: s.WorkItemsContent,
		TermsContent:     s.TermsContent,
		FooterContent:    s.FooterContent,
		SignedByName:     s.SignedByName,
		Signer:           s.Signer,
		SignedAt:         fmtTime(s.SignedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.signedTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#contract_id)"),
		ExpressionAttributeNames: map[string]string{
			"#contract_id": "contract_id",
		},
	})
	return err
}

func (r *ContractDynamoRepository) GetSignedSnapshot(ctx context.Context, companyID, contractID string) (entities.SignedContractSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.signedTable),
		Key: map[string]types.AttributeValue{
			"contract_id": &types.AttributeValueMemberS{Value: contractID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SignedContractSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.SignedContractSnapshot{}, nil
	}

	var it signedContractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SignedContractSnapshot{}, err
	}
	if it.CompanyID != companyID {
		return entities.SignedContractSnapshot{}, nil
	}
	return entities.SignedContractSnapshot{
		ContractID:       it.ContractID,
		CompanyID:        it.CompanyID,
		HeaderContent:    it.HeaderContent,
		WorkItemsContent: it.WorkItemsContent,
		TermsContent:     it.TermsContent,
		FooterContent:    it.FooterContent,
		SignedByName:     it.SignedByName,
		Signer:           it.Signer,
		SignedAt:         parseTime(it.SignedAt),
	}, nil
}

// MarkSigned finalizes the contract row: signed status, signer, lock. It
// conditions on the row still being sent, so a concurrent void or a replayed
// sign cannot double-apply.
func (r *ContractDynamoRepository) MarkSigned(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: c.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #company_id = :cid AND #status = :sent"),
		UpdateExpression: aws.String("SET #status = :signed, #signed_by_name = :signer, " +
			"#signed_at = :signed_at, #locked_at = :locked_at, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#company_id":     "company_id",
			"#status":         "status",
			"#signed_by_name": "signed_by_name",
			"#signed_at":      "signed_at",
			"#locked_at":      "locked_at",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":        &types.AttributeValueMemberS{Value: c.CompanyID},
			":sent":       &types.AttributeValueMemberS{Value: string(entities.ContractStatusSent)},
			":signed":     &types.AttributeValueMemberS{Value: string(entities.ContractStatusSigned)},
			":signer":     &types.AttributeValueMemberS{Value: c.SignedByName},
			":signed_at":  &types.AttributeValueMemberS{Value: fmtTimePtr(c.SignedAt)},
			":locked_at":  &types.AttributeValueMemberS{Value: fmtTimePtr(c.LockedAt)},
			":updated_at": &types.AttributeValueMemberS{Value: fmtTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, interfaces.ErrStaleStatus
		}
		return entities.Contract{}, err
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:                      c.ID,
		CompanyID:               c.CompanyID,
		CustomerID:              c.CustomerID,
		EstimateID:              c.EstimateID,
		EstimateSnapshotVersion: c.EstimateSnapshotVersion,
		Status:                  string(c.Status),
		HeaderContent:           c.HeaderContent,
		WorkItemsContent:        c.WorkItemsContent,
		TermsContent:            c.TermsContent,
		FooterContent:           c.FooterContent,
		SignedByName:            c.SignedByName,
		SignedAt:                fmtTimePtr(c.SignedAt),
		LockedAt:                fmtTimePtr(c.LockedAt),
		CreatedAt:               fmtTime(c.CreatedAt),
		UpdatedAt:               fmtTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:                      it.ID,
		CompanyID:               it.CompanyID,
		CustomerID:              it.CustomerID,
		EstimateID:              it.EstimateID,
		EstimateSnapshotVersion: it.EstimateSnapshotVersion,
		Status:                  entities.ContractStatus(it.Status),
		HeaderContent:           it.HeaderContent,
		WorkItemsContent:        it.WorkItemsContent,
		TermsContent:            it.TermsContent,
		FooterContent:           it.FooterContent,
		SignedByName:            it.SignedByName,
		SignedAt:                parseTimePtr(it.SignedAt),
		LockedAt:                parseTimePtr(it.LockedAt),
		CreatedAt:               parseTime(it.CreatedAt),
		UpdatedAt:               parseTime(it.UpdatedAt),
	}
}
