package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"ivms/internal/db"
	"ivms/internal/entities"
	"ivms/internal/validate"
)

// ErrInvalidCredentials is returned on any login failure; handlers must
// not reveal whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserStore interface {
	CreateUser(ctx context.Context, u *db.User) error
	GetUserByUsername(ctx context.Context, username string) (*db.User, error)
	ListUsers(ctx context.Context) ([]db.User, error)
	DeleteUsers(ctx context.Context, ids []int) (int64, error)
}

type UserService struct {
	store     UserStore
	jwtSecret []byte
}

func NewUserService(store UserStore, jwtSecret string) *UserService {
	return &UserService{store: store, jwtSecret: []byte(jwtSecret)}
}

// Register creates an account. New accounts default to the User role.
func (s *UserService) Register(ctx context.Context, req entities.RegisterRequest) (*entities.UserResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "User"
	}

	user := &db.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	resp := entities.UserResponseFrom(user)
	return &resp, nil
}

// Login verifies credentials and issues an HS256 token valid for one hour.
func (s *UserService) Login(ctx context.Context, req entities.LoginRequest) (*entities.LoginResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &entities.LoginResponse{Token: signed}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]entities.UserResponse, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]entities.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, entities.UserResponseFrom(&users[i]))
	}
	return responses, nil
}

// DeleteUsers removes the given accounts and reports how many existed.
func (s *UserService) DeleteUsers(ctx context.Context, req entities.DeleteUsersRequest) (int64, error) {
	if err := validate.Struct(req); err != nil {
		return 0, err
	}
	return s.store.DeleteUsers(ctx, req.IDs)
}
