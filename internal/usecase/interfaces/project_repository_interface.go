package interfaces

import (
	"context"
	"mecanica_projects/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project and its Quote.
//
// Lookups return a zero Project (ID == "") when nothing is stored.
// Update and UpdateWithQuote are compare-and-swap writes on p.Version: they fail with
// ErrVersionConflict when the stored version differs, and return the project with
// its version incremented.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Project, error)
	ListAll(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	UpdateWithQuote(ctx context.Context, p entities.Project, q entities.Quote) (entities.Project, error)
}

// IQuoteRepository reads quotes written through IProjectRepository.UpdateWithQuote.

type IQuoteRepository interface {
	GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error)
}
