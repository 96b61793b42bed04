package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"furnshop/internal/domain"
	"furnshop/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

const productCacheTTL = time.Minute

// UpdateProductInput is a full overwrite of the editable product fields.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int64
	Category    domain.Category
	ImageURL    string
	IsFeatured  bool
}

type CatalogService struct {
	repo        repository.ProductRepository
	redisClient *redis.Client
}

func NewCatalogService(r repository.ProductRepository) *CatalogService {
	return &CatalogService{repo: r}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.repo.FindAll()
}

// Get serves single-product reads through the cache when available. Stock
// mutations go through the repository inside their own transactions and
// never trust this cache.
func (s *CatalogService) Get(ctx context.Context, id uint64) (*domain.Product, error) {
	cacheKey := fmt.Sprintf("product:%d", id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(p); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return p, nil
}

// CreateDraft inserts a placeholder product the admin is expected to edit
// right away (two-step create-blank-then-edit flow).
func (s *CatalogService) CreateDraft() (*domain.Product, error) {
	p := &domain.Product{
		Name:        "Sample Name",
		Description: "Sample description",
		Price:       0,
		Quantity:    0,
		Category:    domain.CategoryUncategorized,
		ImageURL:    "/images/hero.png",
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) Update(ctx context.Context, id uint64, in UpdateProductInput) (*domain.Product, error) {
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, in.Category)
	}
	if in.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Quantity = in.Quantity
	p.Category = in.Category
	p.ImageURL = in.ImageURL
	p.IsFeatured = in.IsFeatured

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return p, nil
}

// Delete hard-deletes the product. Historical order items keep their
// snapshots, so no cascade runs.
func (s *CatalogService) Delete(ctx context.Context, id uint64) error {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// WarmupCache pre-populates the single-product cache, fetching concurrently.
func (s *CatalogService) WarmupCache(ctx context.Context, ids []uint64) error {
	if s.redisClient == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			p, err := s.repo.FindByID(id)
			if err != nil || p == nil {
				log.Printf("failed to warm up cache for product %d: %v", id, err)
				return nil
			}
			if data, err := json.Marshal(p); err == nil {
				s.redisClient.Set(ctx, fmt.Sprintf("product:%d", id), data, productCacheTTL)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *CatalogService) invalidate(ctx context.Context, id uint64) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, fmt.Sprintf("product:%d", id)).Err(); err != nil {
		log.Printf("failed to invalidate product cache: %v", err)
	}
}
