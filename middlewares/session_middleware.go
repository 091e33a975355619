// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package middlewares

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/accesscontrol"
	"github.com/worknest-dev/worknest/shared"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, authClient shared.AdminClient, sessionCookie string) (accesscontrol.Session, error) {
	unescaped, err := url.QueryUnescape(sessionCookie)
	if err != nil {
		return accesscontrol.NoSession, err
	}

	identity, err := authClient.GetIdentityFromCookie(ctx, unescaped)
	if err != nil {
		return accesscontrol.NoSession, err
	}

	traits, _ := identity.Traits.(map[string]any)
	return accesscontrol.NewSession(
		identity.Id,
		traitString(traits, "email"),
		traitString(traits, "name"),
		traitString(traits, "picture"),
	), nil
}

func traitString(traits map[string]any, key string) string {
	v, ok := traits[key].(string)
	if !ok {
		return ""
	}
	return v
}

// bearerAuth verifies a signed access token, used by API clients that do not
// carry the identity provider's session cookie.
func bearerAuth(authorization string) (accesscontrol.Session, error) {
	raw := strings.TrimPrefix(authorization, "Bearer ")

	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return accesscontrol.NoSession, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return accesscontrol.NoSession, fmt.Errorf("unexpected claims type")
	}

	sub, _ := claims.GetSubject()
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	avatar, _ := claims["picture"].(string)

	return accesscontrol.NewSession(sub, email, name, avatar), nil
}

// SessionMiddleware resolves the caller's identity from the identity
// provider cookie or a bearer token. It never rejects the request itself -
// an unauthenticated caller gets NoSession and fails later at RequireSession.
func SessionMiddleware(authClient shared.AdminClient) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if cookie := getCookie("ory_kratos_session", ctx.Cookies()); cookie != nil {
				session, err := cookieAuth(ctx.Request().Context(), authClient, cookie.String())
				if err != nil {
					slog.Warn("could not resolve session from cookie", "err", err)
					shared.SetSession(ctx, accesscontrol.NoSession)
					return next(ctx)
				}
				shared.SetSession(ctx, session)
				return next(ctx)
			}

			if authorization := ctx.Request().Header.Get("Authorization"); strings.HasPrefix(authorization, "Bearer ") {
				session, err := bearerAuth(authorization)
				if err != nil {
					slog.Warn("could not verify bearer token", "err", err)
					shared.SetSession(ctx, accesscontrol.NoSession)
					return next(ctx)
				}
				shared.SetSession(ctx, session)
				return next(ctx)
			}

			shared.SetSession(ctx, accesscontrol.NoSession)
			return next(ctx)
		}
	}
}
