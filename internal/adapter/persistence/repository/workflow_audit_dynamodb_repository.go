package repository

import (
	"context"
	"time"

	"warranty_hub/internal/domain/entities"
	"warranty_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuditTableName = "workflow_audit"
	auditClaimIDIndex     = "claim_id-index"
)

type workflowAuditItem struct {
	ID         string   `dynamodbav:"id"`
	ClaimID    string   `dynamodbav:"claim_id"`
	Action     string   `dynamodbav:"action"`
	ActorID    string   `dynamodbav:"actor_id"`
	ActorRole  string   `dynamodbav:"actor_role"`
	FromStatus string   `dynamodbav:"from_status"`
	ToStatus   string   `dynamodbav:"to_status"`
	Warnings   []string `dynamodbav:"warnings,omitempty"`
	Date       string   `dynamodbav:"date"`
}

// WorkflowAuditDynamoRepository persists workflow transition records in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: claim_id-index (PK: claim_id)

type WorkflowAuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkflowAuditRepository = (*WorkflowAuditDynamoRepository)(nil)

func NewWorkflowAuditDynamoRepository(ddb *dynamodb.Client) *WorkflowAuditDynamoRepository {
	return &WorkflowAuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *WorkflowAuditDynamoRepository) Append(ctx context.Context, rec entities.WorkflowAuditRecord) (entities.WorkflowAuditRecord, error) {
	it := toWorkflowAuditItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkflowAuditRecord{}, err
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
		return entities.WorkflowAuditRecord{}, err
	}
	return rec, nil
}

func (r *WorkflowAuditDynamoRepository) ListByClaimID(ctx context.Context, claimID string) ([]entities.WorkflowAuditRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditClaimIDIndex),
		KeyConditionExpression: aws.String("claim_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: claimID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.WorkflowAuditRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workflowAuditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromWorkflowAuditItem(it))
	}
	return records, nil
}

func toWorkflowAuditItem(rec entities.WorkflowAuditRecord) workflowAuditItem {
	return workflowAuditItem{
		ID:         rec.ID,
		ClaimID:    rec.ClaimID,
		Action:     string(rec.Action),
		ActorID:    rec.ActorID,
		ActorRole:  string(rec.ActorRole),
		FromStatus: string(rec.FromStatus),
		ToStatus:   string(rec.ToStatus),
		Warnings:   rec.Warnings,
		Date:       rec.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromWorkflowAuditItem(it workflowAuditItem) entities.WorkflowAuditRecord {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.WorkflowAuditRecord{
		ID:         it.ID,
		ClaimID:    it.ClaimID,
		Action:     entities.ActionKind(it.Action),
		ActorID:    it.ActorID,
		ActorRole:  entities.Role(it.ActorRole),
		FromStatus: entities.ClaimStatus(it.FromStatus),
		ToStatus:   entities.ClaimStatus(it.ToStatus),
		Warnings:   it.Warnings,
		Date:       dt,
	}
}
