package services

import (
	"fmt"
	"log"

	"furnshop/internal/domain"
	"furnshop/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type UserService struct {
	repo          repository.UserRepository
	rootAdminName string
}

// NewUserService wires the identity store. rootAdminName designates the one
// administrator account that can never be deleted.
func NewUserService(r repository.UserRepository, rootAdminName string) *UserService {
	return &UserService{repo: r, rootAdminName: rootAdminName}
}

// Register creates a self-service account. The role is always customer; any
// role supplied by the client is ignored.
func (s *UserService) Register(name, email, password string) (*domain.User, error) {
	if existing, err := s.repo.FindByName(name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrNameTaken
	}
	if email != "" {
		if existing, err := s.repo.FindByEmail(email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials. Unknown name and wrong password yield the
// same error.
func (s *UserService) Login(name, password string) (*domain.User, error) {
	u, err := s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// AdminCreate creates a user with an explicitly chosen role. Only the
// admin-only handler reaches this path.
func (s *UserService) AdminCreate(name, email, password string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	if existing, err := s.repo.FindByName(name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrNameTaken
	}
	if email != "" {
		if existing, err := s.repo.FindByEmail(email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByID(id uint64) (*domain.User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) List() ([]domain.User, error) {
	return s.repo.FindAll()
}

func (s *UserService) ListSales() ([]domain.User, error) {
	return s.repo.FindByRole(domain.RoleSales)
}

// Delete removes a user. The root admin is protected regardless of caller;
// the victim's orders survive with a NULL owner.
func (s *UserService) Delete(id uint64) error {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if u.Role == domain.RoleAdmin && u.Name == s.rootAdminName {
		return domain.ErrProtectedAdmin
	}
	return s.repo.Delete(id)
}

// EnsureRootAdmin creates or refreshes the protected admin account at
// startup, mirroring the seed flow of the storefront.
func (s *UserService) EnsureRootAdmin(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	existing, err := s.repo.FindByName(s.rootAdminName)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Email = email
		existing.PasswordHash = string(hash)
		existing.Role = domain.RoleAdmin
		if err := s.repo.Update(existing); err != nil {
			return err
		}
		log.Printf("root admin %q refreshed", s.rootAdminName)
		return nil
	}

	u := &domain.User{
		Name:         s.rootAdminName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := s.repo.Create(u); err != nil {
		return err
	}
	log.Printf("root admin %q created", s.rootAdminName)
	return nil
}
