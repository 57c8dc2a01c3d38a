package repository

import (
	"context"
	"sort"

	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceNotesTableName  = "service_notes"
	defaultServicePhotosTableName = "service_photos"
	serviceIDIndex                = "service_id-index"
)

type serviceNoteItem struct {
	ID              string `dynamodbav:"id"`
	ServiceID       string `dynamodbav:"service_id"`
	EmployeeID      string `dynamodbav:"employee_id"`
	Note            string `dynamodbav:"note"`
	CustomerVisible bool   `dynamodbav:"customer_visible"`
	CreatedAt       string `dynamodbav:"created_at"`
}

type servicePhotoItem struct {
	ID          string `dynamodbav:"id"`
	ServiceID   string `dynamodbav:"service_id"`
	EmployeeID  string `dynamodbav:"employee_id"`
	FileName    string `dynamodbav:"file_name"`
	PhotoURL    string `dynamodbav:"photo_url"`
	Description string `dynamodbav:"description,omitempty"`
	UploadedAt  string `dynamodbav:"uploaded_at"`
}

// ServiceNoteDynamoRepository persists append-only ServiceNote entities.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_id-index (PK: service_id)

type ServiceNoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceNoteRepository = (*ServiceNoteDynamoRepository)(nil)

func NewServiceNoteDynamoRepository(ddb DynamoAPI) *ServiceNoteDynamoRepository {
	return &ServiceNoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_NOTES_TABLE", defaultServiceNotesTableName),
	}
}

func (r *ServiceNoteDynamoRepository) Create(ctx context.Context, n entities.ServiceNote) (entities.ServiceNote, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toServiceNoteItem(n)); err != nil {
		return entities.ServiceNote{}, err
	}
	return n, nil
}

// ListByServiceID returns notes oldest first.
func (r *ServiceNoteDynamoRepository) ListByServiceID(ctx context.Context, serviceID string, customerVisibleOnly bool) ([]entities.ServiceNote, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceIDIndex),
		KeyConditionExpression: aws.String("service_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceID},
		},
	}
	if customerVisibleOnly {
		in.FilterExpression = aws.String("customer_visible = :visible")
		in.ExpressionAttributeValues[":visible"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	raw, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	notes := make([]entities.ServiceNote, 0, len(raw))
	for _, av := range raw {
		var it serviceNoteItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		notes = append(notes, fromServiceNoteItem(it))
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].CreatedAt.Before(notes[j].CreatedAt) })
	return notes, nil
}

// ServicePhotoDynamoRepository persists photo metadata; the files live elsewhere.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_id-index (PK: service_id)

type ServicePhotoDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServicePhotoRepository = (*ServicePhotoDynamoRepository)(nil)

func NewServicePhotoDynamoRepository(ddb DynamoAPI) *ServicePhotoDynamoRepository {
	return &ServicePhotoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_PHOTOS_TABLE", defaultServicePhotosTableName),
	}
}

func (r *ServicePhotoDynamoRepository) Create(ctx context.Context, p entities.ServicePhoto) (entities.ServicePhoto, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toServicePhotoItem(p)); err != nil {
		return entities.ServicePhoto{}, err
	}
	return p, nil
}

func (r *ServicePhotoDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.ServicePhoto, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceIDIndex),
		KeyConditionExpression: aws.String("service_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceID},
		},
	})
	if err != nil {
		return nil, err
	}
	photos := make([]entities.ServicePhoto, 0, len(raw))
	for _, av := range raw {
		var it servicePhotoItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		photos = append(photos, fromServicePhotoItem(it))
	}
	sort.SliceStable(photos, func(i, j int) bool { return photos[i].UploadedAt.Before(photos[j].UploadedAt) })
	return photos, nil
}

func toServiceNoteItem(n entities.ServiceNote) serviceNoteItem {
	return serviceNoteItem{
		ID:              n.ID,
		ServiceID:       n.ServiceID,
		EmployeeID:      n.EmployeeID,
		Note:            n.Note,
		CustomerVisible: n.CustomerVisible,
		CreatedAt:       formatTime(n.CreatedAt),
	}
}

func fromServiceNoteItem(it serviceNoteItem) entities.ServiceNote {
	return entities.ServiceNote{
		ID:              it.ID,
		ServiceID:       it.ServiceID,
		EmployeeID:      it.EmployeeID,
		Note:            it.Note,
		CustomerVisible: it.CustomerVisible,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}

func toServicePhotoItem(p entities.ServicePhoto) servicePhotoItem {
	return servicePhotoItem{
		ID:          p.ID,
		ServiceID:   p.ServiceID,
		EmployeeID:  p.EmployeeID,
		FileName:    p.FileName,
		PhotoURL:    p.PhotoURL,
		Description: p.Description,
		UploadedAt:  formatTime(p.UploadedAt),
	}
}

func fromServicePhotoItem(it servicePhotoItem) entities.ServicePhoto {
	return entities.ServicePhoto{
		ID:          it.ID,
		ServiceID:   it.ServiceID,
		EmployeeID:  it.EmployeeID,
		FileName:    it.FileName,
		PhotoURL:    it.PhotoURL,
		Description: it.Description,
		UploadedAt:  parseTime(it.UploadedAt),
	}
}
