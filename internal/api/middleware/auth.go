package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/fideslex/booking-service/internal/api/handlers"
	"github.com/fideslex/booking-service/internal/domain"
)

type callerKey struct{}

const (
	msgMissingToken = "falta el token de autorización"
	msgInvalidToken = "token inválido o caducado"
	msgForbidden    = "acceso denegado"
)

// Claims полезная нагрузка токена: sub идентификатор пользователя, role его роль
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth проверка bearer-токенов, выпущенных провайдером учетных записей
type Auth struct {
	secret []byte
	issuer string
	logger Logger
}

// NewAuth создает middleware аутентификации с HMAC секретом
func NewAuth(secret, issuer string, logger Logger) *Auth {
	return &Auth{secret: []byte(secret), issuer: issuer, logger: logger}
}

// Required пропускает только запросы с валидным токеном
func (a *Auth) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			a.logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		caller, err := a.parse(token)
		if err != nil {
			a.logger.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

// Optional добавляет пользователя в контекст, если токен есть и валиден
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := bearerToken(r); ok {
			caller, err := a.parse(token)
			if err != nil {
				a.logger.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}
			r = r.WithContext(WithCaller(r.Context(), caller))
		}
		next.ServeHTTP(w, r)
	})
}

// Sign выпускает токен (для служебных утилит и тестов)
func (a *Auth) Sign(claims Claims) (string, error) {
	if claims.Issuer == "" {
		claims.Issuer = a.issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Auth) parse(tokenString string) (domain.Caller, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return domain.Caller{}, err
	}
	if !token.Valid {
		return domain.Caller{}, fmt.Errorf("token is not valid")
	}
	if a.issuer != "" && !claims.VerifyIssuer(a.issuer, true) {
		return domain.Caller{}, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if claims.Subject == "" {
		return domain.Caller{}, fmt.Errorf("subject is empty")
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Caller{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	return domain.Caller{UserID: claims.Subject, Role: role}, nil
}

// RequireRole пропускает только пользователей с одной из ролей; ставится после Required
func RequireRole(logger Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := GetCaller(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			for _, role := range roles {
				if caller.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			logger.Warn("%s %s - role %s is not allowed, user_id=%s", r.Method, r.URL.Path, caller.Role, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

// WithCaller кладет пользователя в контекст
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// GetCaller извлекает пользователя из контекста
func GetCaller(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Caller)
	return caller, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
