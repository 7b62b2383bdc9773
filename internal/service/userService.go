package service

import (
	"context"
	"fmt"

	repository "github.com/eventsphere/server/internal/database/memory"
	"github.com/eventsphere/server/internal/entity"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUserRequest represents the data needed to create an account
type RegisterUserRequest struct {
	Username          string          `json:"username" binding:"required,min=3,max=50"`
	Password          string          `json:"password" binding:"required,min=6,max=72"`
	Email             string          `json:"email" binding:"required,email"`
	FirstName         string          `json:"firstName" binding:"required"`
	LastName          string          `json:"lastName" binding:"required"`
	Role              entity.UserRole `json:"role" binding:"omitempty,oneof=student event_manager"`
	Department        string          `json:"department"`
	Bio               string          `json:"bio"`
	ProfileImage      string          `json:"profileImage"`
	Company           string          `json:"company"`
	YearsOfExperience int             `json:"yearsOfExperience" binding:"omitempty,min=0"`
}

// UpdateUserRequest represents a partial profile update
type UpdateUserRequest struct {
	FirstName         *string `json:"firstName,omitempty"`
	LastName          *string `json:"lastName,omitempty"`
	Department        *string `json:"department,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	ProfileImage      *string `json:"profileImage,omitempty"`
	Company           *string `json:"company,omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty"`
}

type userService struct {
	userRepo         repository.UserRepository
	registrationRepo repository.RegistrationRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(
	userRepo repository.UserRepository,
	registrationRepo repository.RegistrationRepository,
) UserService {
	return &userService{
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
	}
}

func (s *userService) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*entity.User, error) {
	// Уникальность username и email проверяется здесь, хранилище ее не обеспечивает
	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, entity.ErrUsernameTaken
	}
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, entity.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = entity.RoleStudent
	}

	user := &entity.User{
		Username:          req.Username,
		PasswordHash:      string(hash),
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Role:              role,
		Department:        req.Department,
		Bio:               req.Bio,
		ProfileImage:      req.ProfileImage,
		Company:           req.Company,
		YearsOfExperience: req.YearsOfExperience,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate проверяет пару логин/пароль. Ответ не раскрывает,
// существует ли пользователь с таким именем.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	if req.Company != nil {
		user.Company = *req.Company
	}
	if req.YearsOfExperience != nil {
		user.YearsOfExperience = *req.YearsOfExperience
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserStats(ctx context.Context, userID int64) (*entity.UserStats, error) {
	registrations, err := s.registrationRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user registrations: %w", err)
	}

	stats := &entity.UserStats{RegisteredEvents: len(registrations)}
	for _, reg := range registrations {
		if reg.HasAttended {
			stats.AttendedEvents++
		}
	}
	return stats, nil
}
