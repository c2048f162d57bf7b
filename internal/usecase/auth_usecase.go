package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
	"resto-backend/internal/repository"
)

// TokenSigner issues a bearer token for a subject.
type TokenSigner func(subject string, ttl time.Duration) (string, error)

// AuthUsecase signs employees in with the password an administrator set for them.
type AuthUsecase struct {
	repo repository.EmployeeRepository
	sign TokenSigner
	ttl  time.Duration
}

func NewAuthUsecase(repo repository.EmployeeRepository, sign TokenSigner, ttl time.Duration) *AuthUsecase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthUsecase{repo: repo, sign: sign, ttl: ttl}
}

type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expires_in"`
	Employee  *model.Employee `json:"employee"`
}

func badCredentials() error {
	return apperror.Tag(apperror.New(apperror.CodeBadCredentials, "Email or password is incorrect"), "Login")
}

// Login checks the bcrypt hash. Unknown, fired and password-less accounts all
// get the same answer.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperror.Tag(apperror.New(apperror.CodeMissingData, "email and password are required"), "Login")
	}
	emp, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Tag(err, "Login")
	}
	if emp == nil || emp.PasswordHash == "" || emp.UserID == nil || emp.FiredAt != nil {
		return nil, badCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return nil, badCredentials()
	}

	token, err := u.sign(*emp.UserID, u.ttl)
	if err != nil {
		return nil, apperror.Tag(err, "Login")
	}
	return &LoginResult{Token: token, ExpiresIn: int64(u.ttl.Seconds()), Employee: emp}, nil
}
