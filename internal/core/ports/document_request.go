package ports

import (
	"context"

	"github.com/bms-ph/records-system/internal/core/domain"
)

type DocumentRequestRepository interface {
	Insert(ctx context.Context, dr *domain.DocumentRequest) (*domain.DocumentRequest, error)
	FindByID(ctx context.Context, id string) (*domain.DocumentRequest, error)
	List(ctx context.Context, scope domain.Scope, query DocumentRequestQuery) ([]domain.DocumentRequest, error)
	Update(ctx context.Context, dr *domain.DocumentRequest) error
}

type DocumentRequestQuery struct {
	Status      domain.RequestStatus
	RequestedBy string
	Limit       int64
	Offset      int64
}

type CreateDocumentRequestInput struct {
	BarangayID string
	Type       domain.DocumentType
	Purpose    string
}

type DocumentRequestService interface {
	Create(ctx context.Context, scope domain.Scope, requestedBy string, input CreateDocumentRequestInput) (*domain.DocumentRequest, error)
	Get(ctx context.Context, scope domain.Scope, id string) (*domain.DocumentRequest, error)
	List(ctx context.Context, scope domain.Scope, query DocumentRequestQuery) ([]domain.DocumentRequest, error)
	// Advance moves a request through its status lifecycle. processedBy is the
	// acting staff principal.
	Advance(ctx context.Context, scope domain.Scope, id string, next domain.RequestStatus, remarks, processedBy string) (*domain.DocumentRequest, error)
}
