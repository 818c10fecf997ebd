package http

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ordering/internal/core/domain/model/identity"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var (
	//go:embed rbac_model.conf
	rbacModel string

	//go:embed rbac_policy.csv
	rbacPolicy string
)

// Principal is the caller identified by the bearer token.
type Principal struct {
	Username string
	Role     identity.Role
}

// Claims are the JWT claims the service accepts: sub carries the username.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// PrincipalFrom returns the principal stored by Authenticate.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

// Authenticate validates HS256 bearer tokens. An empty issuer accepts any issuer.
func Authenticate(secret []byte, issuer string, logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "jwt_authentication")

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "authorization header missing"})
			}

			token, err := extractToken(authHeader)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: err.Error()})
			}

			claims := new(Claims)
			if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}); err != nil {
				logger.InfoContext(ctx, "rejected bearer token", "error", err)
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "invalid token"})
			}

			sub, err := claims.GetSubject()
			if err != nil || strings.TrimSpace(sub) == "" {
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "invalid token"})
			}

			role, err := identity.ParseRole(claims.Role)
			if err != nil {
				logger.InfoContext(ctx, "rejected bearer token", "subject", sub, "error", err)
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "invalid token"})
			}

			c.Set(principalKey, Principal{Username: sub, Role: role})
			return next(c)
		}
	}
}

func extractToken(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

// Authorizer decides from the principal's role whether a route may be called.
type Authorizer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewAuthorizer loads the embedded role policy.
func NewAuthorizer() (*Authorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m, stringadapter.NewAdapter(rbacPolicy))
	if err != nil {
		return nil, fmt.Errorf("load rbac policy: %w", err)
	}

	return &Authorizer{enforcer: enforcer}, nil
}

// Allowed reports whether role may call method on the route template path.
func (a *Authorizer) Allowed(role identity.Role, path string, method string) (bool, error) {
	return a.enforcer.Enforce(role.String(), path, method)
}

// Middleware enforces the policy on the matched route. It must run after Authenticate.
func (a *Authorizer) Middleware(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "rbac_authorization")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "unauthenticated"})
			}

			allowed, err := a.Allowed(p.Role, c.Path(), c.Request().Method)
			if err != nil {
				logger.ErrorContext(c.Request().Context(), "failed to enforce access policy", "error", err)
				return c.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: "internal server error"})
			}
			if !allowed {
				return c.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "forbidden"})
			}

			return next(c)
		}
	}
}
