package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"tableside/internal/domain"
	"tableside/internal/mocks"
)

func TestMenuService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         MenuItemInput
		setupMocks    func(*mocks.MockStore)
		expectedError error
	}{
		{
			name: "valid item",
			input: MenuItemInput{
				Name:        "Classic Burger",
				Description: "Juicy beef patty",
				Price:       Dec("12.99"),
				Category:    "Mains",
			},
			setupMocks: func(store *mocks.MockStore) {
				store.On("CreateMenuItem", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).
					Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.MenuItem).ID = 1
				})
			},
		},
		{
			name: "missing name",
			input: MenuItemInput{
				Description: "Juicy beef patty",
				Price:       Dec("12.99"),
				Category:    "Mains",
			},
			setupMocks:    func(store *mocks.MockStore) {},
			expectedError: ErrMissingField,
		},
		{
			name: "negative price",
			input: MenuItemInput{
				Name:        "Classic Burger",
				Description: "Juicy beef patty",
				Price:       Dec("-1.00"),
				Category:    "Mains",
			},
			setupMocks:    func(store *mocks.MockStore) {},
			expectedError: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockStore)
			tt.setupMocks(store)

			service := NewMenuService(store, zap.NewNop())
			item, err := service.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint64(1), item.ID)
				assert.Equal(t, tt.input.Name, item.Name)
			}

			store.AssertExpectations(t)
		})
	}
}

func TestMenuService_Get_NotFound(t *testing.T) {
	store := new(mocks.MockStore)
	store.On("FindMenuItemByID", mock.Anything, uint64(99)).Return(nil, nil)

	service := NewMenuService(store, zap.NewNop())
	_, err := service.Get(context.Background(), 99)

	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestMenuService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockStore)
		expectedError error
	}{
		{
			name: "unreferenced item deleted",
			setupMocks: func(store *mocks.MockStore) {
				store.On("FindMenuItemByID", mock.Anything, uint64(1)).
					Return(&domain.MenuItem{ID: 1, Name: "Fries"}, nil)
				store.On("CountItemsForMenuItem", mock.Anything, uint64(1)).Return(int64(0), nil)
				store.On("DeleteMenuItem", mock.Anything, uint64(1)).Return(nil)
			},
		},
		{
			name: "referenced item rejected",
			setupMocks: func(store *mocks.MockStore) {
				store.On("FindMenuItemByID", mock.Anything, uint64(1)).
					Return(&domain.MenuItem{ID: 1, Name: "Fries"}, nil)
				store.On("CountItemsForMenuItem", mock.Anything, uint64(1)).Return(int64(3), nil)
			},
			expectedError: ErrMenuItemInUse,
		},
		{
			name: "missing item",
			setupMocks: func(store *mocks.MockStore) {
				store.On("FindMenuItemByID", mock.Anything, uint64(1)).Return(nil, nil)
			},
			expectedError: ErrMenuItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockStore)
			tt.setupMocks(store)

			service := NewMenuService(store, zap.NewNop())
			err := service.Delete(context.Background(), 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				store.AssertNotCalled(t, "DeleteMenuItem", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			store.AssertExpectations(t)
		})
	}
}

func TestMenuService_Update(t *testing.T) {
	store := new(mocks.MockStore)
	store.On("FindMenuItemByID", mock.Anything, uint64(1)).
		Return(&domain.MenuItem{ID: 1, Name: "Fries", Price: Dec("4.50"), Description: "old", Category: "Sides"}, nil)
	store.On("UpdateMenuItem", mock.Anything, mock.MatchedBy(func(m *domain.MenuItem) bool {
		return m.ID == 1 && m.Name == "Loaded Fries" && m.Price.Equal(Dec("6.00"))
	})).Return(nil)

	service := NewMenuService(store, zap.NewNop())
	item, err := service.Update(context.Background(), 1, MenuItemInput{
		Name:        "Loaded Fries",
		Description: "Fries with cheese and bacon",
		Price:       Dec("6.00"),
		Category:    "Sides",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Loaded Fries", item.Name)
	store.AssertExpectations(t)
}
