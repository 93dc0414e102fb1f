package ports

import (
	"context"

	"github.com/bms-ph/records-system/internal/core/domain"
)

type AnnouncementRepository interface {
	Insert(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	FindByID(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context, scope domain.Scope, limit, offset int64) ([]domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id string) error
}

type AnnouncementInput struct {
	BarangayID string
	Title      string
	Body       string
	Pinned     bool
}

type AnnouncementService interface {
	Create(ctx context.Context, scope domain.Scope, postedBy string, input AnnouncementInput) (*domain.Announcement, error)
	Get(ctx context.Context, scope domain.Scope, id string) (*domain.Announcement, error)
	List(ctx context.Context, scope domain.Scope, limit, offset int64) ([]domain.Announcement, error)
	Delete(ctx context.Context, scope domain.Scope, id string) error
}
