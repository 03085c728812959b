package application

import (
	"errors"

	"github.com/granttrack/granttrack/internal/domain/user"
	"github.com/granttrack/granttrack/internal/repository"
	"github.com/granttrack/granttrack/pkg/utils"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input user.RegisterDTO) (*user.User, error) {
	if _, err := s.Repos.User.GetUserByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	}
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	u := &user.User{
		Username: input.Username,
		Password: hash,
		Email:    input.Email,
		FullName: input.FullName,
	}
	if err := s.Repos.User.CreateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Authenticate(input user.LoginDTO) (*user.User, error) {
	u, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(u.Password, input.Password) {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

func (s *UserService) GetUser(id uint) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}
