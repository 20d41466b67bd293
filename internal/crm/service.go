package crm

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/mkovalev/graphql_crm/internal/models"
)

// EventPublisher delivers entity lifecycle events to the message broker.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event map[string]any) error
}

// ProductIndexer pushes product documents into the search backend.
type ProductIndexer interface {
	IndexProduct(ctx context.Context, p models.Product) error
}

// Service implements every CRM mutation and query. Events and Index are
// optional; a nil collaborator disables the corresponding side effect.
type Service struct {
	DB     *gorm.DB
	Events EventPublisher
	Index  ProductIndexer
	Log    *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// publish is best-effort: a broker failure is logged, never surfaced to the
// caller of a mutation.
func (s *Service) publish(ctx context.Context, topic, key string, event map[string]any) {
	if s.Events == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pubCtx, topic, key, event); err != nil {
		s.logger().Error("publish event", "topic", topic, "error", err)
	}
}

func (s *Service) indexProduct(ctx context.Context, p models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		s.logger().Error("index product", "productID", p.ID, "error", err)
	}
}
