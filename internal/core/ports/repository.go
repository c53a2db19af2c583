package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/openspace/internal/core/domain"
)

type ArrangementRepository interface {
	Save(ctx context.Context, arrangement *domain.Arrangement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Arrangement, error)
}

type ArrangementCache interface {
	Set(ctx context.Context, arrangement *domain.Arrangement) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Arrangement, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

type NameSource interface {
	LoadNames(ctx context.Context) ([]string, error)
}
