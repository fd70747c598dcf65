package services

import (
	"context"
	"strconv"
	"time"

	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type authUserRepository interface {
	Add(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ProfileUpdate carries the mutable profile fields; zero values leave the
// stored field untouched. Role is deliberately absent: it is fixed at
// registration.
type ProfileUpdate struct {
	Name     string
	Email    string
	Password string
	Skills   []string
	Resume   string
}

type Auth struct {
	users     authUserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(users authUserRepository, jwtSecret string, tokenTTL time.Duration) *Auth {
	return &Auth{users: users, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

func (s *Auth) Register(ctx context.Context, input RegisterInput) (*models.User, error) {

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, errs.InvalidInputf("name, email and password are required")
	}
	if validate.Var(input.Email, "email") != nil {
		return nil, errs.InvalidInputf("invalid email address")
	}

	role := models.RoleJobseeker
	if input.Role != "" {
		var ok bool
		if role, ok = models.ToRole(input.Role); !ok {
			return nil, errs.InvalidInputf("invalid role: %s", input.Role)
		}
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up email")
	}
	if existing != nil {
		return nil, errs.Conflictf("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := models.NewUser(input.Name, input.Email, string(hash), role)
	if err = s.users.Add(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

func (s *Auth) Login(ctx context.Context, email, password string) (*models.User, error) {

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up email")
	}
	if user == nil {
		return nil, errs.Unauthenticatedf("invalid email or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errs.Unauthenticatedf("invalid email or password")
	}

	return user, nil
}

func (s *Auth) GetProfile(ctx context.Context, userID uint) (*models.User, error) {

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	if user == nil {
		return nil, errs.NotFoundf("user not found")
	}
	return user, nil
}

func (s *Auth) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Email != "" && update.Email != user.Email {
		if validate.Var(update.Email, "email") != nil {
			return nil, errs.InvalidInputf("invalid email address")
		}
		taken, err := s.users.GetByEmail(ctx, update.Email)
		if err != nil {
			return nil, errors.Wrap(err, "failed to look up email")
		}
		if taken != nil {
			return nil, errs.Conflictf("email already in use")
		}
		user.Email = update.Email
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.Password = string(hash)
	}
	if update.Skills != nil {
		user.SetSkills(update.Skills)
	}
	if update.Resume != "" {
		user.Resume = update.Resume
	}

	if err = s.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// GenerateToken issues a signed, time-bound token carrying the user ID.
func (s *Auth) GenerateToken(userID uint) (string, error) {

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken verifies signature and expiry and returns the embedded user ID.
func (s *Auth) ParseToken(tokenString string) (uint, error) {

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errs.Unauthenticatedf("unexpected signing method")
			}
			return s.jwtSecret, nil
		})
	if err != nil || !token.Valid {
		return 0, errs.Unauthenticatedf("invalid or expired token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, errs.Unauthenticatedf("invalid token claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, errs.Unauthenticatedf("invalid token subject")
	}

	return uint(userID), nil
}
