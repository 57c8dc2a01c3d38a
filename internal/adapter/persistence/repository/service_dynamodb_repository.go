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
	defaultServicesTableName = "services"
	servicesCustomerIDIndex  = "customer_id-index"

	appointmentMarkerPrefix   = "appointment#"
	invoiceNumberMarkerPrefix = "invoice_number#"
)

type serviceItem struct {
	ID                  string   `dynamodbav:"id"`
	AppointmentID       string   `dynamodbav:"appointment_id"`
	CustomerID          string   `dynamodbav:"customer_id"`
	AssignedEmployeeIDs []string `dynamodbav:"assigned_employee_ids,omitempty"`
	Status              string   `dynamodbav:"status"`
	Progress            int      `dynamodbav:"progress"`
	HoursLogged         float64  `dynamodbav:"hours_logged"`
	EstimatedCompletion string   `dynamodbav:"estimated_completion,omitempty"`
	Version             int64    `dynamodbav:"version"`
	CreatedAt           string   `dynamodbav:"created_at"`
	UpdatedAt           string   `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists the StandardService aggregate.
//
// Table requirements:
//   - services:         PK id (string), GSI customer_id-index (PK: customer_id)
//   - service_notes:    see ServiceNoteDynamoRepository
//   - invoices:         see InvoiceDynamoRepository
//   - workshop_uniques: PK id (string); holds appointment#<id> and invoice_number#<n> markers
//
// Multi-item writes use TransactWriteItems so a service never ends up completed
// without its invoice, nor with a duplicated appointment or invoice number.

type ServiceDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	notesTable    string
	invoicesTable string
	uniquesTable  string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("SERVICES_TABLE", defaultServicesTableName),
		notesTable:    getenvDefault("SERVICE_NOTES_TABLE", defaultServiceNotesTableName),
		invoicesTable: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		uniquesTable:  getenvDefault("UNIQUES_TABLE", defaultUniquesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.StandardService) (entities.StandardService, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.StandardService{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			uniqueMarker(r.uniquesTable, appointmentMarkerPrefix+s.AppointmentID, s.ID),
		},
	})
	if err != nil {
		if failed, ok := failedConditions(err); ok && failed[1] {
			return entities.StandardService{}, interfaces.ErrDuplicateAppointment
		}
		return entities.StandardService{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.StandardService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StandardService{}, err
	}
	if len(out.Item) == 0 {
		return entities.StandardService{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StandardService{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.StandardService, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicesCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalServices(items)
}

func (r *ServiceDynamoRepository) ListAll(ctx context.Context) ([]entities.StandardService, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return unmarshalServices(items)
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.StandardService, newNotes []entities.ServiceNote) (entities.StandardService, error) {
	tx := []types.TransactWriteItem{r.versionedServiceUpdate(s)}
	notes, err := r.notePuts(newNotes)
	if err != nil {
		return entities.StandardService{}, err
	}
	tx = append(tx, notes...)

	if err := r.commit(ctx, s, tx, -1); err != nil {
		return entities.StandardService{}, err
	}
	s.Version++
	return s, nil
}

func (r *ServiceDynamoRepository) Complete(ctx context.Context, s entities.StandardService, newNotes []entities.ServiceNote, inv entities.Invoice) (entities.StandardService, error) {
	tx := []types.TransactWriteItem{r.versionedServiceUpdate(s)}
	notes, err := r.notePuts(newNotes)
	if err != nil {
		return entities.StandardService{}, err
	}
	tx = append(tx, notes...)

	iav, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.StandardService{}, err
	}
	tx = append(tx, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.invoicesTable),
		Item:                     iav,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}})
	markerIdx := len(tx)
	tx = append(tx, uniqueMarker(r.uniquesTable, invoiceNumberMarkerPrefix+inv.InvoiceNumber, inv.ID))

	if err := r.commit(ctx, s, tx, markerIdx); err != nil {
		return entities.StandardService{}, err
	}
	log.Printf("[service][repository] completed service_id=%s invoice_id=%s", s.ID, inv.ID)
	s.Version++
	return s, nil
}

// commit runs tx. Item 0 is always the versioned service update; invoiceMarkerIdx is
// the position of the invoice number marker, or -1.
func (r *ServiceDynamoRepository) commit(ctx context.Context, s entities.StandardService, tx []types.TransactWriteItem, invoiceMarkerIdx int) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err == nil {
		return nil
	}
	failed, ok := failedConditions(err)
	if !ok {
		return err
	}
	switch {
	case failed[0]:
		log.Printf("[service][repository] version conflict service_id=%s expected_version=%d", s.ID, s.Version)
		return interfaces.ErrVersionConflict
	case invoiceMarkerIdx >= 0 && failed[invoiceMarkerIdx]:
		return interfaces.ErrDuplicateInvoiceNumber
	}
	return err
}

func (r *ServiceDynamoRepository) versionedServiceUpdate(s entities.StandardService) types.TransactWriteItem {
	fields := map[string]types.AttributeValue{
		"status":               &types.AttributeValueMemberS{Value: string(s.Status)},
		"progress":             &types.AttributeValueMemberN{Value: strconv.Itoa(s.Progress)},
		"hours_logged":         &types.AttributeValueMemberN{Value: strconv.FormatFloat(s.HoursLogged, 'f', -1, 64)},
		"estimated_completion": &types.AttributeValueMemberS{Value: formatTime(s.EstimatedCompletion)},
		"updated_at":           &types.AttributeValueMemberS{Value: formatTime(s.UpdatedAt)},
	}
	expr, cond, names, values := versionedUpdate(fields, s.Version)
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey("id", s.ID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}}
}

func (r *ServiceDynamoRepository) notePuts(notes []entities.ServiceNote) ([]types.TransactWriteItem, error) {
	out := make([]types.TransactWriteItem, 0, len(notes))
	for _, n := range notes {
		av, err := attributevalue.MarshalMap(toServiceNoteItem(n))
		if err != nil {
			return nil, err
		}
		out = append(out, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(r.notesTable),
			Item:      av,
		}})
	}
	return out, nil
}

func unmarshalServices(raw []map[string]types.AttributeValue) ([]entities.StandardService, error) {
	out := make([]entities.StandardService, 0, len(raw))
	for _, av := range raw {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

func toServiceItem(s entities.StandardService) serviceItem {
	return serviceItem{
		ID:                  s.ID,
		AppointmentID:       s.AppointmentID,
		CustomerID:          s.CustomerID,
		AssignedEmployeeIDs: s.AssignedEmployeeIDs,
		Status:              string(s.Status),
		Progress:            s.Progress,
		HoursLogged:         s.HoursLogged,
		EstimatedCompletion: formatTime(s.EstimatedCompletion),
		Version:             s.Version,
		CreatedAt:           formatTime(s.CreatedAt),
		UpdatedAt:           formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.StandardService {
	return entities.StandardService{
		ID:                  it.ID,
		AppointmentID:       it.AppointmentID,
		CustomerID:          it.CustomerID,
		AssignedEmployeeIDs: it.AssignedEmployeeIDs,
		Status:              entities.ServiceStatus(it.Status),
		Progress:            it.Progress,
		HoursLogged:         it.HoursLogged,
		EstimatedCompletion: parseTime(it.EstimatedCompletion),
		Version:             it.Version,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
