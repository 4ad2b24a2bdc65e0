package service

import (
	"context"

	"financas/internal/dto"
	"financas/internal/models"
	"financas/internal/repository"

	"go.uber.org/zap"
)

type CategoryService struct {
	catRepo *repository.CategoryRepository
	logger  *zap.Logger
}

func NewCategoryService(catRepo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		catRepo: catRepo,
		logger:  logger,
	}
}

// List returns the user's categories, seeding the default set the first time
// the list comes back empty.
func (s *CategoryService) List(ctx context.Context, userID int64) (*dto.CategoriesResponse, error) {
	categories, err := s.catRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		for _, def := range models.DefaultCategories {
			c := models.Category{UserID: userID, Name: def.Name, Colour: def.Colour}
			if err := s.catRepo.Create(ctx, &c); err != nil && !repository.IsDuplicateKey(err) {
				s.logger.Warn("Default category insert failed",
					zap.String("name", def.Name),
					zap.Error(err),
				)
			}
		}
		categories, err = s.catRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	resp := &dto.CategoriesResponse{Categories: make([]dto.CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, dto.CategoryResponse{
			ID:     c.ID,
			UserID: c.UserID,
			Name:   c.Name,
			Colour: c.Colour,
		})
	}
	return resp, nil
}
