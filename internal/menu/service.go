package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidItem = errors.New("item needs a name and a non-negative price")
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateItem assigns an id and persists the item.
// Also used by the bulk ingestion commit step, one call per item.
func (s *Service) CreateItem(ctx context.Context, item Item) (*Item, error) {
	if strings.TrimSpace(item.Name) == "" || item.Price.IsNegative() {
		return nil, ErrInvalidItem
	}

	item.ID = uuid.New().String()
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) UpdateItem(ctx context.Context, item Item) (*Item, error) {
	if item.ID == "" {
		return nil, ErrItemNotFound
	}
	if strings.TrimSpace(item.Name) == "" || item.Price.IsNegative() {
		return nil, ErrInvalidItem
	}

	if err := s.repo.Update(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UploadItemImage stores the image in object storage and points the
// item at its public URL.
func (s *Service) UploadItemImage(
	ctx context.Context,
	itemID string,
	file multipart.File,
	filename string,
) (*Item, error) {

	if s.storage == nil {
		return nil, errors.New("image storage not configured")
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil, errors.New("invalid file")
	}

	key := fmt.Sprintf("items/%s/%s%s", itemID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return nil, err
	}

	item.ImageURL = url
	item.ImageHint = item.Name
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
