package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/snapledger/snapledger/constants"
	"github.com/snapledger/snapledger/gen/ent"
	"github.com/snapledger/snapledger/gen/ent/category"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*ent.Category, error)
	FindByName(ctx context.Context, name string) (*ent.Category, error)
	// Seed inserts the fixed label set, skipping names that already exist.
	Seed(ctx context.Context) error
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*ent.Category, error) {
	return r.client.Category.
		Query().
		Order(category.ByName()).
		All(ctx)
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*ent.Category, error) {
	return r.client.Category.Query().
		Where(category.Name(name)).
		Only(ctx)
}

func (r *categoryRepository) Seed(ctx context.Context) error {
	for _, name := range constants.AsStringSlice() {
		exists, err := r.client.Category.Query().Where(category.Name(name)).Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := r.client.Category.Create().SetName(name).Exec(ctx); err != nil {
			r.logger.Error("failed to seed category", "name", name, "error", err)
			return err
		}
	}
	return nil
}

// ResolveCategoryID maps a classifier label to its row ID, nil when the label
// is empty or unknown.
func ResolveCategoryID(ctx context.Context, repo CategoryRepository, label string) *uuid.UUID {
	if label == "" {
		return nil
	}
	cat, err := repo.FindByName(ctx, label)
	if err != nil {
		return nil
	}
	id := cat.ID
	return &id
}
