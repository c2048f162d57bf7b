package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"resto-backend/internal/apperror"
)

const localUserID = "user_id"

var ErrInvalidToken = errors.New("invalid token")

// Verifier resolves a bearer token to the subject it was issued for.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Auth requires a verified bearer token and stores its subject under "user_id".
func Auth(v Verifier, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return reject(c, apperror.New(apperror.CodeMissingToken, "Authorization bearer token is required"))
		}

		subject, err := v.Verify(c.UserContext(), token)
		if err != nil {
			if !errors.Is(err, ErrInvalidToken) {
				log.Error("token verification failed", zap.Error(err))
				return c.Status(fiber.StatusInternalServerError).JSON(apperror.Response{
					Error: "Token verification unavailable",
					Code:  string(apperror.CodeInternal),
				})
			}
			return reject(c, apperror.New(apperror.CodeInvalidToken, "Token is invalid or expired"))
		}

		c.Locals(localUserID, subject)
		return c.Next()
	}
}

// UserID is the authenticated subject, or "" outside Auth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

func reject(c *fiber.Ctx, err *apperror.Error) error {
	return c.Status(apperror.Status(err)).JSON(apperror.Response{Error: err.Message, Code: string(err.Code)})
}

// JWTVerifier checks HS256 tokens signed with a shared secret and returns the sub claim.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// SignToken issues an HS256 token for subject.
func SignToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// IntrospectionVerifier asks the hosted identity provider who owns the token.
type IntrospectionVerifier struct {
	client *resty.Client
}

type providerUser struct {
	ID string `json:"id"`
}

func NewIntrospectionVerifier(baseURL, apiKey string) *IntrospectionVerifier {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("apikey", apiKey).
		SetHeader("Accept", "application/json")
	return &IntrospectionVerifier{client: client}
}

func (v *IntrospectionVerifier) Verify(ctx context.Context, token string) (string, error) {
	var user providerUser
	resp, err := v.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		return "", fmt.Errorf("identity provider: %w", err)
	}
	switch {
	case resp.StatusCode() == fiber.StatusUnauthorized, resp.StatusCode() == fiber.StatusForbidden:
		return "", ErrInvalidToken
	case resp.IsError():
		return "", fmt.Errorf("identity provider returned %d", resp.StatusCode())
	}
	if user.ID == "" {
		return "", ErrInvalidToken
	}
	return user.ID, nil
}
