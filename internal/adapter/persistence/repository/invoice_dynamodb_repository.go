package repository

import (
	"context"
	"strconv"
	"time"

	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

// Claim attributes live only in storage; they never reach the Invoice entity.
const (
	attrPaymentClaim          = "payment_claim"
	attrPaymentClaimExpiresAt = "payment_claim_expires_at"
)

type invoiceItem struct {
	ID               string            `dynamodbav:"id"`
	InvoiceNumber    string            `dynamodbav:"invoice_number"`
	ServiceID        string            `dynamodbav:"service_id"`
	CustomerID       string            `dynamodbav:"customer_id"`
	Items            []invoiceLineItem `dynamodbav:"items"`
	Subtotal         string            `dynamodbav:"subtotal"`
	TaxAmount        string            `dynamodbav:"tax_amount"`
	TotalAmount      string            `dynamodbav:"total_amount"`
	Status           string            `dynamodbav:"status"`
	PaidAt           string            `dynamodbav:"paid_at,omitempty"`
	PaymentReference string            `dynamodbav:"payment_reference,omitempty"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

type invoiceLineItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Amount      string `dynamodbav:"amount"`
}

// InvoiceDynamoRepository reads invoices and records payments. Invoices are created
// by ServiceDynamoRepository.Complete.
//
// A payment holds payment_claim (token) and payment_claim_expires_at (unix millis)
// while the provider is being called.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_id-index (PK: service_id)

type InvoiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("id", id),
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
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Invoice, error) {
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

	items := make([]entities.Invoice, 0, len(raw))
	for _, av := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

// ClaimPayment reserves a PENDING invoice for claimID until expiresAt. An expired
// claim may be taken over.
func (r *InvoiceDynamoRepository) ClaimPayment(ctx context.Context, id, claimID string, now, expiresAt time.Time) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending AND (attribute_not_exists(#claim) OR #claim_expires_at < :now)"),
		UpdateExpression:    aws.String("SET #claim = :claim, #claim_expires_at = :expires_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPending)},
			":claim":      &types.AttributeValueMemberS{Value: claimID},
			":now":        &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UnixMilli(), 10)},
			":expires_at": &types.AttributeValueMemberN{Value: strconv.FormatInt(expiresAt.UnixMilli(), 10)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#status":           "status",
			"#claim":            attrPaymentClaim,
			"#claim_expires_at": attrPaymentClaimExpiresAt,
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReleasePaymentClaim drops claimID if it still holds the invoice.
func (r *InvoiceDynamoRepository) ReleasePaymentClaim(ctx context.Context, id, claimID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey("id", id),
		ConditionExpression: aws.String("#claim = :claim"),
		UpdateExpression:    aws.String("REMOVE #claim, #claim_expires_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claim": &types.AttributeValueMemberS{Value: claimID},
		},
		ExpressionAttributeNames: map[string]string{
			"#claim":            attrPaymentClaim,
			"#claim_expires_at": attrPaymentClaimExpiresAt,
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

// MarkPaid flips a PENDING invoice held by claimID to PAID and drops the claim.
// A zero Invoice means it was not pending or the claim was lost.
func (r *InvoiceDynamoRepository) MarkPaid(ctx context.Context, id, claimID string, paidAt time.Time, paymentReference string) (entities.Invoice, error) {
	ts := formatTime(paidAt)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending AND #claim = :claim"),
		UpdateExpression:    aws.String("SET #status = :paid, #paid_at = :paid_at, #payment_reference = :ref, #updated_at = :paid_at REMOVE #claim, #claim_expires_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPending)},
			":paid":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
			":paid_at": &types.AttributeValueMemberS{Value: ts},
			":ref":     &types.AttributeValueMemberS{Value: paymentReference},
			":claim":   &types.AttributeValueMemberS{Value: claimID},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#status":            "status",
			"#paid_at":           "paid_at",
			"#payment_reference": "payment_reference",
			"#updated_at":        "updated_at",
			"#claim":             attrPaymentClaim,
			"#claim_expires_at":  attrPaymentClaimExpiresAt,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Items))
	for _, li := range inv.Items {
		lines = append(lines, invoiceLineItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice.String(),
			Amount:      li.Amount.String(),
		})
	}
	it := invoiceItem{
		ID:               inv.ID,
		InvoiceNumber:    inv.InvoiceNumber,
		ServiceID:        inv.ServiceID,
		CustomerID:       inv.CustomerID,
		Items:            lines,
		Subtotal:         inv.Subtotal.String(),
		TaxAmount:        inv.TaxAmount.String(),
		TotalAmount:      inv.TotalAmount.String(),
		Status:           string(inv.Status),
		PaymentReference: inv.PaymentReference,
		CreatedAt:        formatTime(inv.CreatedAt),
		UpdatedAt:        formatTime(inv.UpdatedAt),
	}
	if inv.PaidAt != nil {
		it.PaidAt = formatTime(*inv.PaidAt)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	lines := make([]entities.InvoiceItem, 0, len(it.Items))
	for _, li := range it.Items {
		lines = append(lines, entities.InvoiceItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   parseDecimal(li.UnitPrice),
			Amount:      parseDecimal(li.Amount),
		})
	}
	inv := entities.Invoice{
		ID:               it.ID,
		InvoiceNumber:    it.InvoiceNumber,
		ServiceID:        it.ServiceID,
		CustomerID:       it.CustomerID,
		Items:            lines,
		Subtotal:         parseDecimal(it.Subtotal),
		TaxAmount:        parseDecimal(it.TaxAmount),
		TotalAmount:      parseDecimal(it.TotalAmount),
		Status:           entities.InvoiceStatus(it.Status),
		PaymentReference: it.PaymentReference,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
	if it.PaidAt != "" {
		paidAt := parseTime(it.PaidAt)
		inv.PaidAt = &paidAt
	}
	return inv
}
