package repository

import (
	"context"
	"log"
	"strconv"

	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	defaultQuotesTableName   = "quotes"
	projectsCustomerIDIndex  = "customer_id-index"
)

type projectItem struct {
	ID                    string `dynamodbav:"id"`
	CustomerID            string `dynamodbav:"customer_id"`
	VehicleID             string `dynamodbav:"vehicle_id"`
	ProjectType           string `dynamodbav:"project_type"`
	Description           string `dynamodbav:"description"`
	DesiredCompletionDate string `dynamodbav:"desired_completion_date,omitempty"`
	Budget                string `dynamodbav:"budget"`
	Status                string `dynamodbav:"status"`
	Progress              int    `dynamodbav:"progress"`
	AppointmentID         string `dynamodbav:"appointment_id,omitempty"`
	Version               int64  `dynamodbav:"version"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

type quoteItem struct {
	ProjectID     string `dynamodbav:"project_id"`
	ID            string `dynamodbav:"id"`
	LaborCost     string `dynamodbav:"labor_cost"`
	PartsCost     string `dynamodbav:"parts_cost"`
	TotalCost     string `dynamodbav:"total_cost"`
	EstimatedDays int    `dynamodbav:"estimated_days"`
	Breakdown     string `dynamodbav:"breakdown,omitempty"`
	SubmittedBy   string `dynamodbav:"submitted_by"`
	SubmittedAt   string `dynamodbav:"submitted_at"`
}

// ProjectDynamoRepository persists Project entities and their Quote in DynamoDB.
//
// Table requirements:
//   - projects: PK id (string), GSI customer_id-index (PK: customer_id)
//   - quotes:   PK project_id (string)
//
// Keying quotes by project id keeps a single quote per project.

type ProjectDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	quotesTable string
}

var (
	_ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)
	_ interfaces.IQuoteRepository   = (*ProjectDynamoRepository)(nil)
)

func NewProjectDynamoRepository(ddb DynamoAPI) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		quotesTable: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Project, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProjects(items)
}

func (r *ProjectDynamoRepository) ListAll(ctx context.Context) ([]entities.Project, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return unmarshalProjects(items)
}

// Update writes the mutable fields of p if the stored version still equals p.Version.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	expr, cond, names, values := versionedUpdate(projectMutableFields(p), p.Version)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey("id", p.ID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			log.Printf("[project][repository] version conflict project_id=%s expected_version=%d", p.ID, p.Version)
			return entities.Project{}, interfaces.ErrVersionConflict
		}
		return entities.Project{}, err
	}
	p.Version++
	return p, nil
}

// UpdateWithQuote stores the quote and the quoted project atomically.
func (r *ProjectDynamoRepository) UpdateWithQuote(ctx context.Context, p entities.Project, q entities.Quote) (entities.Project, error) {
	qav, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Project{}, err
	}
	expr, cond, names, values := versionedUpdate(projectMutableFields(p), p.Version)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:                 aws.String(r.tableName),
				Key:                       idKey("id", p.ID),
				UpdateExpression:          aws.String(expr),
				ConditionExpression:       aws.String(cond),
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: values,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.quotesTable),
				Item:                     qav,
				ConditionExpression:      aws.String("attribute_not_exists(#pid)"),
				ExpressionAttributeNames: map[string]string{"#pid": "project_id"},
			}},
		},
	})
	if err != nil {
		if failed, ok := failedConditions(err); ok && len(failed) > 0 {
			log.Printf("[project][repository] quote transaction cancelled project_id=%s failed_items=%v", p.ID, failed)
			return entities.Project{}, interfaces.ErrVersionConflict
		}
		return entities.Project{}, err
	}
	p.Version++
	return p, nil
}

func (r *ProjectDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.quotesTable),
		Key:            idKey("project_id", projectID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func projectMutableFields(p entities.Project) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"status":     &types.AttributeValueMemberS{Value: string(p.Status)},
		"progress":   &types.AttributeValueMemberN{Value: strconv.Itoa(p.Progress)},
		"budget":     &types.AttributeValueMemberS{Value: p.Budget.String()},
		"updated_at": &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
	}
}

func unmarshalProjects(raw []map[string]types.AttributeValue) ([]entities.Project, error) {
	out := make([]entities.Project, 0, len(raw))
	for _, av := range raw {
		var it projectItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProjectItem(it))
	}
	return out, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:                    p.ID,
		CustomerID:            p.CustomerID,
		VehicleID:             p.VehicleID,
		ProjectType:           p.ProjectType,
		Description:           p.Description,
		DesiredCompletionDate: p.DesiredCompletionDate,
		Budget:                p.Budget.String(),
		Status:                string(p.Status),
		Progress:              p.Progress,
		AppointmentID:         p.AppointmentID,
		Version:               p.Version,
		CreatedAt:             formatTime(p.CreatedAt),
		UpdatedAt:             formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:                    it.ID,
		CustomerID:            it.CustomerID,
		VehicleID:             it.VehicleID,
		ProjectType:           it.ProjectType,
		Description:           it.Description,
		DesiredCompletionDate: it.DesiredCompletionDate,
		Budget:                parseDecimal(it.Budget),
		Status:                entities.ProjectStatus(it.Status),
		Progress:              it.Progress,
		AppointmentID:         it.AppointmentID,
		Version:               it.Version,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ProjectID:     q.ProjectID,
		ID:            q.ID,
		LaborCost:     q.LaborCost.String(),
		PartsCost:     q.PartsCost.String(),
		TotalCost:     q.TotalCost.String(),
		EstimatedDays: q.EstimatedDays,
		Breakdown:     q.Breakdown,
		SubmittedBy:   q.SubmittedBy,
		SubmittedAt:   formatTime(q.SubmittedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:            it.ID,
		ProjectID:     it.ProjectID,
		LaborCost:     parseDecimal(it.LaborCost),
		PartsCost:     parseDecimal(it.PartsCost),
		TotalCost:     parseDecimal(it.TotalCost),
		EstimatedDays: it.EstimatedDays,
		Breakdown:     it.Breakdown,
		SubmittedBy:   it.SubmittedBy,
		SubmittedAt:   parseTime(it.SubmittedAt),
	}
}
