package services

import (
	"context"
	"time"

	"techhub_backend/internal/apperrors"
	"techhub_backend/internal/models"
	"techhub_backend/internal/repositories"
	"techhub_backend/internal/services/dto"

	"github.com/google/uuid"
)

type SavedItemService interface {
	Save(ctx context.Context, userID string, req *dto.SaveItemRequest) (*models.SavedItem, error)
	ListByUser(ctx context.Context, userID string) ([]models.SavedItem, error)
	Delete(ctx context.Context, userID, itemID string) error
}

type SavedItemServiceImpl struct {
	savedRepo repositories.SavedItemRepository
}

func NewSavedItemService(savedRepo repositories.SavedItemRepository) SavedItemService {
	return &SavedItemServiceImpl{savedRepo: savedRepo}
}

func (s *SavedItemServiceImpl) Save(ctx context.Context, userID string, req *dto.SaveItemRequest) (*models.SavedItem, error) {
	item := &models.SavedItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ItemType:  models.SavedItemType(req.ItemType),
		ItemID:    req.ItemID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.savedRepo.Create(ctx, item); err != nil {
		if apperrors.Is(err, repositories.ErrItemAlreadySaved) {
			return nil, apperrors.ErrItemAlreadySaved
		}
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *SavedItemServiceImpl) ListByUser(ctx context.Context, userID string) ([]models.SavedItem, error) {
	items, err := s.savedRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *SavedItemServiceImpl) Delete(ctx context.Context, userID, itemID string) error {
	if err := s.savedRepo.Delete(ctx, itemID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrSavedItemNotFound) {
			return apperrors.ErrSavedItemNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
