package controller

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

const principalKey = "principal"

// Claims carried by access tokens. company_id is required for the company role.
type Claims struct {
	CompanyId string `json:"company_id,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type authenticator struct {
	secret []byte
}

func newAuthenticator(secret string) *authenticator {
	return &authenticator{secret: []byte(secret)}
}

// Middleware resolves the bearer token into an entity.Principal.
func (a *authenticator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if header == "" || tokenString == header {
			return c.JSON(http.StatusUnauthorized, errorResponse{Reason: "Empty JWT-Token"})
		}

		principal, err := a.parse(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{Reason: err.Error()})
		}

		c.Set(principalKey, principal)

		return next(c)
	}
}

func (a *authenticator) parse(tokenString string) (entity.Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entity.Principal{}, errors.New("Invalid JWT-Token")
	}

	p := entity.Principal{Subject: claims.Subject, Role: common.Role(claims.Role)}
	switch p.Role {
	case common.RoleAdmin, common.RoleSystem:
	case common.RoleCompany:
		id, err := uuid.Parse(claims.CompanyId)
		if err != nil {
			return entity.Principal{}, errors.New("Company not found in token")
		}
		p.CompanyId = id
	default:
		return entity.Principal{}, errors.New("Role not found in token")
	}

	return p, nil
}

func principal(c echo.Context) entity.Principal {
	p, _ := c.Get(principalKey).(entity.Principal)
	return p
}

// requireRole rejects callers whose role is not listed.
func requireRole(roles ...common.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(roles, principal(c).Role) {
				return c.JSON(http.StatusForbidden, errorResponse{Reason: "Not allowed for your role"})
			}

			return next(c)
		}
	}
}

// IssueToken signs claims with the shared secret; used by tests and tooling.
func IssueToken(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
