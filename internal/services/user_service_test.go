package services

import (
	"testing"

	"furnshop/internal/domain"
	"furnshop/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Run("always creates a customer with a hashed password", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByName", "betty").Return(nil, nil)
		mockRepo.On("FindByEmail", "betty@example.com").Return(nil, nil)
		mockRepo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.User).ID = TestUserID
		})

		service := NewUserService(mockRepo, TestRootAdmin)
		user, err := service.Register("betty", "betty@example.com", "hunter2")

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleCustomer, user.Role)
		assert.NotEqual(t, "hunter2", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByName", "betty").Return(CreateTestUser(2, "betty", domain.RoleCustomer), nil)

		service := NewUserService(mockRepo, TestRootAdmin)
		_, err := service.Register("betty", "", "hunter2")

		assert.ErrorIs(t, err, domain.ErrNameTaken)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByName", "newbie").Return(nil, nil)
		mockRepo.On("FindByEmail", "taken@example.com").Return(CreateTestUser(2, "betty", domain.RoleCustomer), nil)

		service := NewUserService(mockRepo, TestRootAdmin)
		_, err := service.Register("newbie", "taken@example.com", "hunter2")

		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestUserService_Login(t *testing.T) {
	stored := CreateTestUser(TestUserID, "betty", domain.RoleCustomer)
	stored.PasswordHash = HashTestPassword("hunter2")

	t.Run("valid credentials", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByName", "betty").Return(stored, nil)

		service := NewUserService(mockRepo, TestRootAdmin)
		user, err := service.Login("betty", "hunter2")

		assert.NoError(t, err)
		assert.Equal(t, TestUserID, user.ID)
	})

	t.Run("wrong password and unknown name are indistinguishable", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByName", "betty").Return(stored, nil)
		mockRepo.On("FindByName", "nobody").Return(nil, nil)

		service := NewUserService(mockRepo, TestRootAdmin)

		_, errWrongPassword := service.Login("betty", "wrong")
		_, errUnknownUser := service.Login("nobody", "hunter2")

		assert.ErrorIs(t, errWrongPassword, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownUser, domain.ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
	})
}

func TestUserService_AdminCreate(t *testing.T) {
	t.Run("creates with the chosen role", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByName", "sam").Return(nil, nil)
		mockRepo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)

		service := NewUserService(mockRepo, TestRootAdmin)
		user, err := service.AdminCreate("sam", "", "secret", domain.RoleSales)

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleSales, user.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)

		service := NewUserService(mockRepo, TestRootAdmin)
		_, err := service.AdminCreate("sam", "", "secret", domain.Role("superuser"))

		assert.ErrorIs(t, err, domain.ErrInvalidRole)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByName", "sam").Return(CreateTestUser(3, "sam", domain.RoleSales), nil)

		service := NewUserService(mockRepo, TestRootAdmin)
		_, err := service.AdminCreate("sam", "", "secret", domain.RoleSales)

		assert.ErrorIs(t, err, domain.ErrNameTaken)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("root admin is protected regardless of caller", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByID", uint64(1)).Return(CreateTestUser(1, TestRootAdmin, domain.RoleAdmin), nil)

		service := NewUserService(mockRepo, TestRootAdmin)
		err := service.Delete(1)

		assert.ErrorIs(t, err, domain.ErrProtectedAdmin)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("other admins can be deleted", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByID", uint64(5)).Return(CreateTestUser(5, "second-admin", domain.RoleAdmin), nil)
		mockRepo.On("Delete", uint64(5)).Return(nil)

		service := NewUserService(mockRepo, TestRootAdmin)
		assert.NoError(t, service.Delete(5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByID", uint64(5)).Return(nil, nil)

		service := NewUserService(mockRepo, TestRootAdmin)
		assert.ErrorIs(t, service.Delete(5), domain.ErrUserNotFound)
	})
}

func TestUserService_EnsureRootAdmin(t *testing.T) {
	t.Run("creates the account when absent", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByName", TestRootAdmin).Return(nil, nil)
		mockRepo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(0).(*domain.User)
			assert.Equal(t, domain.RoleAdmin, u.Role)
			assert.Equal(t, TestRootAdmin, u.Name)
		})

		service := NewUserService(mockRepo, TestRootAdmin)
		assert.NoError(t, service.EnsureRootAdmin("admin@example.com", "12345"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("refreshes the account when present", func(t *testing.T) {
		existing := CreateTestUser(1, TestRootAdmin, domain.RoleCustomer)
		mockRepo := new(mocks.MockUserRepository)
		mockRepo.On("FindByName", TestRootAdmin).Return(existing, nil)
		mockRepo.On("Update", mock.AnythingOfType("*domain.User")).Return(nil)

		service := NewUserService(mockRepo, TestRootAdmin)
		assert.NoError(t, service.EnsureRootAdmin("admin@example.com", "12345"))
		assert.Equal(t, domain.RoleAdmin, existing.Role)
		mockRepo.AssertExpectations(t)
	})
}
