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
	defaultJobsTableName                  = "jobs"
	defaultCrewAssignmentsTableName       = "crew_assignments"
	defaultEquipmentReservationsTableName = "equipment_reservations"
)

type jobItem struct {
	ID              string `dynamodbav:"id"`
	CompanyID       string `dynamodbav:"company_id"`
	CustomerID      string `dynamodbav:"customer_id"`
	EstimateID      string `dynamodbav:"estimate_id,omitempty"`
	Status          string `dynamodbav:"status"`
	DepositRequired bool   `dynamodbav:"deposit_required"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type crewAssignmentItem struct {
	ID        string `dynamodbav:"id"`
	CompanyID string `dynamodbav:"company_id"`
	JobID     string `dynamodbav:"job_id"`
	CrewID    string `dynamodbav:"crew_id"`
	StartsAt  string `dynamodbav:"starts_at"`
	EndsAt    string `dynamodbav:"ends_at"`
	CreatedAt string `dynamodbav:"created_at"`
}

type equipmentReservationItem struct {
	ID          string `dynamodbav:"id"`
	CompanyID   string `dynamodbav:"company_id"`
	JobID       string `dynamodbav:"job_id"`
	EquipmentID string `dynamodbav:"equipment_id"`
	StartsAt    string `dynamodbav:"starts_at"`
	EndsAt      string `dynamodbav:"ends_at"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// JobDynamoRepository persists jobs and their crew/equipment bookings in
// DynamoDB.
//
// Table requirements:
//   - jobs: PK id (string)
//   - crew_assignments: PK id (string)
//   - equipment_reservations: PK id (string)

type JobDynamoRepository struct {
	ddb               *dynamodb.Client
	jobsTable         string
	assignmentsTable  string
	reservationsTable string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:               ddb,
		jobsTable:         getenvDefault("JOBS_TABLE", defaultJobsTableName),
		assignmentsTable:  getenvDefault("CREW_ASSIGNMENTS_TABLE", defaultCrewAssignmentsTableName),
		reservationsTable: getenvDefault("EQUIPMENT_RESERVATIONS_TABLE", defaultEquipmentReservationsTableName),
	}
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.jobsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	if it.CompanyID != companyID {
		return entities.Job{}, nil
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, companyID, id string, from, to entities.JobStatus) (entities.Job, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.jobsTable),
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
			return entities.Job{}, interfaces.ErrStaleStatus
		}
		return entities.Job{}, err
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) CreateCrewAssignment(ctx context.Context, a entities.CrewAssignment) (entities.CrewAssignment, error) {
	av, err := attributevalue.MarshalMap(crewAssignmentItem{
		ID:        a.ID,
		CompanyID: a.CompanyID,
		JobID:     a.JobID,
		CrewID:    a.CrewID,
		StartsAt:  fmtTime(a.StartsAt),
		EndsAt:    fmtTime(a.EndsAt),
		CreatedAt: fmtTime(a.CreatedAt),
	})
	if err != nil {
		return entities.CrewAssignment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.assignmentsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CrewAssignment{}, err
	}
	return a, nil
}

func (r *JobDynamoRepository) CreateEquipmentReservation(ctx context.Context, res entities.EquipmentReservation) (entities.EquipmentReservation, error) {
	av, err := attributevalue.MarshalMap(equipmentReservationItem{
		ID:          res.ID,
		CompanyID:   res.CompanyID,
		JobID:       res.JobID,
		EquipmentID: res.EquipmentID,
		StartsAt:    fmtTime(res.StartsAt),
		EndsAt:      fmtTime(res.EndsAt),
		CreatedAt:   fmtTime(res.CreatedAt),
	})
	if err != nil {
		return entities.EquipmentReservation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.reservationsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EquipmentReservation{}, err
	}
	return res, nil
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:              it.ID,
		CompanyID:       it.CompanyID,
		CustomerID:      it.CustomerID,
		EstimateID:      it.EstimateID,
		Status:          entities.JobStatus(it.Status),
		DepositRequired: it.DepositRequired,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
