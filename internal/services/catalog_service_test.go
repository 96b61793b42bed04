package services

import (
	"context"
	"fmt"
	"testing"

	"furnshop/internal/domain"
	"furnshop/internal/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_CreateDraft(t *testing.T) {
	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("Create", mock.AnythingOfType("*domain.Product")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Product).ID = TestProductID
	})

	service := NewCatalogService(mockRepo)
	draft, err := service.CreateDraft()

	assert.NoError(t, err)
	assert.Equal(t, TestProductID, draft.ID)
	assert.Equal(t, "Sample Name", draft.Name)
	assert.Zero(t, draft.Price)
	assert.Zero(t, draft.Quantity)
	assert.Equal(t, domain.CategoryUncategorized, draft.Category)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Update(t *testing.T) {
	validInput := UpdateProductInput{
		Name:        TestProductName,
		Description: "Solid oak, seats four",
		Price:       120,
		Quantity:    8,
		Category:    domain.CategoryFurniture,
		ImageURL:    "/images/table.png",
		IsFeatured:  true,
	}

	tests := []struct {
		name          string
		input         UpdateProductInput
		setupMocks    func(*mocks.MockProductRepository)
		expectedError error
	}{
		{
			name:  "full overwrite",
			input: validInput,
			setupMocks: func(mockRepo *mocks.MockProductRepository) {
				mockRepo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, "Sample Name", 0, 0), nil)
				mockRepo.On("Update", mock.AnythingOfType("*domain.Product")).Return(nil)
			},
		},
		{
			name: "unknown category rejected",
			input: UpdateProductInput{
				Name:     TestProductName,
				Price:    120,
				Quantity: 8,
				Category: domain.Category("Garden Gnomes"),
			},
			setupMocks:    func(mockRepo *mocks.MockProductRepository) {},
			expectedError: domain.ErrInvalidCategory,
		},
		{
			name:  "missing product",
			input: validInput,
			setupMocks: func(mockRepo *mocks.MockProductRepository) {
				mockRepo.On("FindByID", TestProductID).Return(nil, nil)
			},
			expectedError: domain.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockProductRepository)
			tt.setupMocks(mockRepo)

			service := NewCatalogService(mockRepo)
			result, err := service.Update(context.Background(), TestProductID, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.input.Name, result.Name)
			assert.Equal(t, tt.input.Price, result.Price)
			assert.Equal(t, tt.input.Quantity, result.Quantity)
			assert.Equal(t, tt.input.Category, result.Category)
			assert.True(t, result.IsFeatured)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestProductName, 100, 5), nil)

		service := NewCatalogService(mockRepo)
		p, err := service.Get(context.Background(), TestProductID)

		assert.NoError(t, err)
		assert.Equal(t, TestProductName, p.Name)
	})

	t.Run("missing", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("FindByID", TestProductID).Return(nil, nil)

		service := NewCatalogService(mockRepo)
		p, err := service.Get(context.Background(), TestProductID)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Nil(t, p)
	})
}

func TestCatalogService_Delete(t *testing.T) {
	t.Run("hard delete", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestProductName, 100, 5), nil)
		mockRepo.On("Delete", TestProductID).Return(nil)

		service := NewCatalogService(mockRepo)
		assert.NoError(t, service.Delete(context.Background(), TestProductID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("FindByID", TestProductID).Return(nil, nil)

		service := NewCatalogService(mockRepo)
		assert.ErrorIs(t, service.Delete(context.Background(), TestProductID), domain.ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}

func TestCatalogService_WarmupCache(t *testing.T) {
	red := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: red.Addr()})

	mockRepo := new(mocks.MockProductRepository)
	mockRepo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestProductName, 100, 5), nil)

	service := NewCatalogService(mockRepo)
	service.SetRedisClient(client)

	assert.NoError(t, service.WarmupCache(context.Background(), []uint64{TestProductID}))

	key := fmt.Sprintf("product:%d", TestProductID)
	assert.True(t, red.Exists(key))
	// warmed entries expire on the same schedule as read-through entries
	assert.Equal(t, productCacheTTL, red.TTL(key))

	// a warmed product is served from the cache, not the repository
	p, err := service.Get(context.Background(), TestProductID)
	assert.NoError(t, err)
	assert.Equal(t, TestProductName, p.Name)
	mockRepo.AssertNumberOfCalls(t, "FindByID", 1)
}
