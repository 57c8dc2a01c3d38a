package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan       func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	transact   func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scan(in)
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return f.transact(in)
}

func cancelledAt(n, failed int) error {
	reasons := make([]types.CancellationReason, n)
	for i := range reasons {
		reasons[i].Code = aws.String("None")
	}
	reasons[failed].Code = aws.String(conditionalCheckFailed)
	return &types.TransactionCanceledException{Message: aws.String("cancelled"), CancellationReasons: reasons}
}

func TestVersionedUpdate(t *testing.T) {
	expr, cond, names, values := versionedUpdate(map[string]types.AttributeValue{
		"status":   &types.AttributeValueMemberS{Value: "QUOTED"},
		"progress": &types.AttributeValueMemberN{Value: "0"},
	}, 3)

	if expr != "SET #version = :next_version, #progress = :progress, #status = :status" {
		t.Fatalf("unexpected expression: %s", expr)
	}
	if cond != "attribute_exists(#id) AND #version = :expected_version" {
		t.Fatalf("unexpected condition: %s", cond)
	}
	if names["#status"] != "status" || names["#version"] != "version" {
		t.Fatalf("unexpected names: %v", names)
	}
	if v := values[":expected_version"].(*types.AttributeValueMemberN).Value; v != "3" {
		t.Fatalf("expected version 3, got %s", v)
	}
	if v := values[":next_version"].(*types.AttributeValueMemberN).Value; v != "4" {
		t.Fatalf("next version 4, got %s", v)
	}
}

func TestProjectDynamoRepository_Update(t *testing.T) {
	p := entities.Project{ID: "p-1", Status: entities.ProjectStatusApproved, Budget: decimal.NewFromInt(10), Version: 2, UpdatedAt: time.Now()}

	t.Run("bumps version", func(t *testing.T) {
		repo := NewProjectDynamoRepository(&fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.TableName) != defaultProjectsTableName {
				t.Fatalf("unexpected table: %s", aws.ToString(in.TableName))
			}
			return &dynamodb.UpdateItemOutput{}, nil
		}})
		got, err := repo.Update(context.Background(), p)
		if err != nil || got.Version != 3 {
			t.Fatalf("unexpected result: version=%d err=%v", got.Version, err)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		repo := NewProjectDynamoRepository(&fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("failed")}
		}})
		_, err := repo.Update(context.Background(), p)
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("quote written in the same transaction", func(t *testing.T) {
		repo := NewProjectDynamoRepository(&fakeDynamo{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			if len(in.TransactItems) != 2 || in.TransactItems[0].Update == nil || in.TransactItems[1].Put == nil {
				t.Fatalf("unexpected transaction: %+v", in.TransactItems)
			}
			if aws.ToString(in.TransactItems[1].Put.TableName) != defaultQuotesTableName {
				t.Fatalf("quote written to %s", aws.ToString(in.TransactItems[1].Put.TableName))
			}
			return nil, cancelledAt(2, 0)
		}})
		_, err := repo.UpdateWithQuote(context.Background(), p, entities.Quote{ID: "q-1", ProjectID: "p-1"})
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestServiceDynamoRepository_Transactions(t *testing.T) {
	svc := entities.StandardService{ID: "svc-1", AppointmentID: "APT-1", CustomerID: "cust-1", Status: entities.ServiceStatusCompleted, Progress: 100, Version: 4}
	notes := []entities.ServiceNote{{ID: "n-1", ServiceID: "svc-1", Note: "Service completed.", CustomerVisible: true}}
	inv := entities.Invoice{ID: "inv-1", InvoiceNumber: "INV-20260301100000", ServiceID: "svc-1"}

	t.Run("complete writes service notes invoice and marker", func(t *testing.T) {
		repo := NewServiceDynamoRepository(&fakeDynamo{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			if len(in.TransactItems) != 4 {
				t.Fatalf("expected 4 items, got %d", len(in.TransactItems))
			}
			marker := in.TransactItems[3].Put
			if marker == nil || aws.ToString(marker.TableName) != defaultUniquesTableName {
				t.Fatalf("unexpected marker put: %+v", marker)
			}
			if key := marker.Item["id"].(*types.AttributeValueMemberS).Value; key != "invoice_number#INV-20260301100000" {
				t.Fatalf("unexpected marker key: %s", key)
			}
			return &dynamodb.TransactWriteItemsOutput{}, nil
		}})
		got, err := repo.Complete(context.Background(), svc, notes, inv)
		if err != nil || got.Version != 5 {
			t.Fatalf("unexpected result: version=%d err=%v", got.Version, err)
		}
	})

	t.Run("taken invoice number", func(t *testing.T) {
		repo := NewServiceDynamoRepository(&fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, cancelledAt(4, 3)
		}})
		_, err := repo.Complete(context.Background(), svc, notes, inv)
		if !errors.Is(err, interfaces.ErrDuplicateInvoiceNumber) {
			t.Fatalf("expected ErrDuplicateInvoiceNumber, got %v", err)
		}
	})

	t.Run("stale service", func(t *testing.T) {
		repo := NewServiceDynamoRepository(&fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, cancelledAt(2, 0)
		}})
		_, err := repo.Update(context.Background(), svc, notes)
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("duplicated appointment", func(t *testing.T) {
		repo := NewServiceDynamoRepository(&fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, cancelledAt(2, 1)
		}})
		_, err := repo.Create(context.Background(), svc)
		if !errors.Is(err, interfaces.ErrDuplicateAppointment) {
			t.Fatalf("expected ErrDuplicateAppointment, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		repo := NewServiceDynamoRepository(&fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, errors.New("throttled")
		}})
		_, err := repo.Complete(context.Background(), svc, notes, inv)
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}

func TestInvoiceDynamoRepository(t *testing.T) {
	paidAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	stored := entities.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-1",
		ServiceID:     "svc-1",
		CustomerID:    "cust-1",
		Items: []entities.InvoiceItem{
			{ID: "it-1", Description: "Service Completion - APT-1", Quantity: 1, UnitPrice: decimal.RequireFromString("150.00"), Amount: decimal.RequireFromString("150.00")},
		},
		Subtotal:    decimal.RequireFromString("150.00"),
		TaxAmount:   decimal.RequireFromString("22.50"),
		TotalAmount: decimal.RequireFromString("172.50"),
		Status:      entities.InvoiceStatusPaid,
		PaidAt:      &paidAt,
	}

	t.Run("get keeps exact amounts", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toInvoiceItem(stored))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		repo := NewInvoiceDynamoRepository(&fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: av}, nil
		}})
		got, err := repo.GetByID(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.TotalAmount.Equal(stored.TotalAmount) || !got.Items[0].Amount.Equal(stored.Items[0].Amount) {
			t.Fatalf("amounts changed: %+v", got)
		}
		if got.PaidAt == nil || !got.PaidAt.Equal(paidAt) {
			t.Fatalf("unexpected paid_at: %v", got.PaidAt)
		}
	})

	t.Run("missing invoice", func(t *testing.T) {
		repo := NewInvoiceDynamoRepository(&fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}})
		got, err := repo.GetByID(context.Background(), "inv-9")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero invoice, got %+v err=%v", got, err)
		}
	})

	t.Run("mark paid only from pending and claimed", func(t *testing.T) {
		repo := NewInvoiceDynamoRepository(&fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			cond := aws.ToString(in.ConditionExpression)
			if !strings.Contains(cond, "#status = :pending") || !strings.Contains(cond, "#claim = :claim") {
				t.Fatalf("unexpected condition: %s", cond)
			}
			if v := in.ExpressionAttributeValues[":claim"].(*types.AttributeValueMemberS).Value; v != "claim-1" {
				t.Fatalf("unexpected claim: %s", v)
			}
			if !strings.Contains(aws.ToString(in.UpdateExpression), "REMOVE #claim, #claim_expires_at") {
				t.Fatalf("claim is not dropped: %s", aws.ToString(in.UpdateExpression))
			}
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("failed")}
		}})
		got, err := repo.MarkPaid(context.Background(), "inv-1", "claim-1", paidAt, "mp-1")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero invoice, got %+v err=%v", got, err)
		}
	})
}

func TestInvoiceDynamoRepository_ClaimPayment(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("claims a pending invoice", func(t *testing.T) {
		repo := NewInvoiceDynamoRepository(&fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			cond := aws.ToString(in.ConditionExpression)
			if !strings.Contains(cond, "#status = :pending") || !strings.Contains(cond, "attribute_not_exists(#claim) OR #claim_expires_at < :now") {
				t.Fatalf("unexpected condition: %s", cond)
			}
			if v := in.ExpressionAttributeValues[":now"].(*types.AttributeValueMemberN).Value; v != "1772442000000" {
				t.Fatalf("unexpected now: %s", v)
			}
			if v := in.ExpressionAttributeValues[":expires_at"].(*types.AttributeValueMemberN).Value; v != "1772442120000" {
				t.Fatalf("unexpected expiry: %s", v)
			}
			return &dynamodb.UpdateItemOutput{}, nil
		}})
		ok, err := repo.ClaimPayment(context.Background(), "inv-1", "claim-1", now, now.Add(2*time.Minute))
		if err != nil || !ok {
			t.Fatalf("expected claim, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("held or not pending", func(t *testing.T) {
		repo := NewInvoiceDynamoRepository(&fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("failed")}
		}})
		ok, err := repo.ClaimPayment(context.Background(), "inv-1", "claim-2", now, now.Add(time.Minute))
		if err != nil || ok {
			t.Fatalf("expected no claim, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		repo := NewInvoiceDynamoRepository(&fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, errors.New("throttled")
		}})
		if _, err := repo.ClaimPayment(context.Background(), "inv-1", "claim-1", now, now); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("release ignores a claim already gone", func(t *testing.T) {
		repo := NewInvoiceDynamoRepository(&fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "#claim = :claim" {
				t.Fatalf("unexpected condition: %s", aws.ToString(in.ConditionExpression))
			}
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("failed")}
		}})
		if err := repo.ReleasePaymentClaim(context.Background(), "inv-1", "claim-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestServiceNoteDynamoRepository_ListByServiceID(t *testing.T) {
	older := serviceNoteItem{ID: "n-1", ServiceID: "svc-1", Note: "a", CustomerVisible: true, CreatedAt: "2026-03-01T10:00:00Z"}
	newer := serviceNoteItem{ID: "n-2", ServiceID: "svc-1", Note: "b", CustomerVisible: true, CreatedAt: "2026-03-01T11:00:00Z"}
	a, _ := attributevalue.MarshalMap(newer)
	b, _ := attributevalue.MarshalMap(older)

	repo := NewServiceNoteDynamoRepository(&fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		if aws.ToString(in.FilterExpression) != "customer_visible = :visible" {
			t.Fatalf("expected visibility filter, got %q", aws.ToString(in.FilterExpression))
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{a, b}}, nil
	}})

	notes, err := repo.ListByServiceID(context.Background(), "svc-1", true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != "n-1" {
		t.Fatalf("expected oldest first, got %+v", notes)
	}
}
