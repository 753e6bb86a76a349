package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"github.com/Fer-Urbina/LittleLemon/repository"
	"github.com/Fer-Urbina/LittleLemon/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login business logic.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a customer account; duplicate username/email errors out.
func (s *AuthService) Register(username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password are required")
	}

	count, err := s.userRepo.CountByIdentity(username, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("username or email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleCustomer,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
