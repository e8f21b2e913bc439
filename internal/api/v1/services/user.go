package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/keycloak"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

// UserServiceImpl implements UserService. Creating a user provisions the
// identity in Keycloak first; the returned Keycloak ID becomes the user_id.
type UserServiceImpl struct {
	users       repository.UserDAO
	roles       repository.RoleDAO
	provisioner keycloak.Provisioner
	logger      *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users repository.UserDAO, roles repository.RoleDAO, provisioner keycloak.Provisioner, logger *zap.Logger) UserService {
	return &UserServiceImpl{
		users:       users,
		roles:       roles,
		provisioner: provisioner,
		logger:      logger,
	}
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list users")
	}
	return dto.ToUserResponses(users), nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get user")
	}
	if user == nil {
		return nil, errors.NewNotFoundError("User")
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid role ID")
	}

	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to check role")
	}
	if role == nil {
		return nil, errors.NewValidationError("Invalid user request", map[string]string{
			"role_id": "role does not exist",
		})
	}

	if existing, err := s.users.GetByUsername(ctx, req.Username); err != nil {
		return nil, errors.NewInternalError("Failed to check username")
	} else if existing != nil {
		return nil, errors.NewConflictError("Username already exists")
	}
	if existing, err := s.users.GetByEmail(ctx, req.Email); err != nil {
		return nil, errors.NewInternalError("Failed to check email")
	} else if existing != nil {
		return nil, errors.NewConflictError("Email already exists")
	}

	exists, err := s.provisioner.EmailExists(ctx, req.Email)
	if err != nil {
		s.logger.Error("keycloak lookup failed", zap.Error(err))
		return nil, errors.NewServiceUnavailableError("Identity provider is unavailable")
	}
	if exists {
		return nil, errors.NewConflictError("Email already registered with identity provider")
	}

	userID, err := s.provisioner.CreateUser(ctx, req.Username, req.Email, req.FirstName, req.LastName)
	if err != nil {
		s.logger.Error("keycloak user creation failed", zap.Error(err))
		return nil, errors.NewServiceUnavailableError("Identity provider is unavailable")
	}

	user := &model.User{
		UserID:    userID,
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
		RoleID:    roleID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Roll back the identity so Keycloak does not keep an orphan.
		if delErr := s.provisioner.DeleteUser(ctx, userID); delErr != nil {
			s.logger.Error("failed to roll back keycloak identity",
				zap.String("user_id", userID.String()), zap.Error(delErr))
		}
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Username or email already exists")
		}
		return nil, errors.NewInternalError("Failed to create user")
	}

	s.logger.Info("user created",
		zap.String("user_id", user.UserID.String()),
		zap.String("username", user.Username))

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	update := repository.UserUpdate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
	}

	if req.RoleID != nil {
		roleID, err := uuid.Parse(*req.RoleID)
		if err != nil {
			return nil, errors.NewBadRequestError("Invalid role ID")
		}
		role, err := s.roles.GetByID(ctx, roleID)
		if err != nil {
			return nil, errors.NewInternalError("Failed to check role")
		}
		if role == nil {
			return nil, errors.NewValidationError("Invalid user request", map[string]string{
				"role_id": "role does not exist",
			})
		}
		update.RoleID = &roleID
	}

	user, err := s.users.Update(ctx, id, update)
	if err != nil {
		if err == repository.ErrDuplicate {
			return nil, errors.NewConflictError("Username or email already exists")
		}
		return nil, errors.NewInternalError("Failed to update user")
	}
	if user == nil {
		return nil, errors.NewNotFoundError("User")
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		if err == repository.ErrInUse {
			return errors.NewConflictError("User owns resources and cannot be deleted")
		}
		return errors.NewInternalError("Failed to delete user")
	}
	if !deleted {
		return errors.NewNotFoundError("User")
	}

	if err := s.provisioner.DeleteUser(ctx, id); err != nil {
		// The local row is gone; log and move on rather than failing the
		// request over identity provider cleanup.
		s.logger.Error("failed to delete keycloak identity",
			zap.String("user_id", id.String()), zap.Error(err))
	}
	return nil
}
