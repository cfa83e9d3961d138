package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"
	"atelie/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid role")
)

var signupMessages = map[string]string{
	"name":           "Nome é obrigatório",
	"email.required": "E-mail é obrigatório",
	"email.email":    "E-mail inválido",
	"password":       "A senha deve ter pelo menos 6 caracteres",
}

type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// Session is the result of a successful login or signup.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Signup(ctx context.Context, in SignupInput) (Session, error)
	Authenticate(ctx context.Context, token string) (*entities.Actor, error)
	CreateStaffUser(ctx context.Context, in SignupInput, role entities.Role) (entities.User, error)
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	tokens   interfaces.ITokenIssuer
	hasher   interfaces.IPasswordHasher
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenIssuer, hasher interfaces.IPasswordHasher, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		validate: pkg.NewValidator(),
		now:      time.Now,
		logger:   logger.Named("auth.usecase"),
	}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if user.ID == "" {
		return Session{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		u.logger.Info("login rejected", zap.String("user_id", user.ID))
		return Session{}, ErrInvalidCredentials
	}
	return u.session(user)
}

// Signup registers a self-service account with role cliente.
func (u *AuthUseCase) Signup(ctx context.Context, in SignupInput) (Session, error) {
	user, err := u.register(ctx, in, entities.RoleCliente)
	if err != nil {
		return Session{}, err
	}
	return u.session(user)
}

// Authenticate resolves a bearer token to an actor. An empty token is an
// anonymous caller (nil, nil).
func (u *AuthUseCase) Authenticate(_ context.Context, token string) (*entities.Actor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	actor, err := u.tokens.Parse(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return &actor, nil
}

// CreateStaffUser bootstraps an admin or editor account.
func (u *AuthUseCase) CreateStaffUser(ctx context.Context, in SignupInput, role entities.Role) (entities.User, error) {
	if !role.IsStaff() {
		return entities.User{}, ErrInvalidRole
	}
	return u.register(ctx, in, role)
}

func (u *AuthUseCase) register(ctx context.Context, in SignupInput, role entities.Role) (entities.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := pkg.ValidateStruct(u.validate, in, signupMessages); err != nil {
		return entities.User{}, err
	}

	existing, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, err
	}

	created, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    u.now().UTC(),
	})
	if err != nil {
		return entities.User{}, err
	}
	u.logger.Info("user registered", zap.String("user_id", created.ID), zap.String("role", string(role)))
	return created, nil
}

func (u *AuthUseCase) session(user entities.User) (Session, error) {
	token, exp, err := u.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
