package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/valyala/fasthttp"

	"github.com/courseflow/course-service/internal/domain/access"
	"github.com/courseflow/course-service/pkg/httputil"
)

const actorKey = "actor"

// Authenticate validates the bearer token and stores the resulting Actor
// on the request context. Token issuance is the identity provider's job;
// this middleware only verifies and decodes.
func Authenticate(jwtSecret string) httputil.Middleware {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			authHeader := string(ctx.Request.Header.Peek("Authorization"))
			if authHeader == "" {
				httputil.WriteErrorResponse(ctx, "missing authorization header", fasthttp.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				httputil.WriteErrorResponse(ctx, "invalid authorization header format", fasthttp.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})

			if err != nil || !token.Valid {
				httputil.WriteErrorResponse(ctx, "invalid or expired token", fasthttp.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				httputil.WriteErrorResponse(ctx, "invalid token claims", fasthttp.StatusUnauthorized)
				return
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				httputil.WriteErrorResponse(ctx, err.Error(), fasthttp.StatusUnauthorized)
				return
			}

			ctx.SetUserValue(actorKey, actor)
			next(ctx)
		}
	}
}

// ActorFromCtx returns the authenticated actor stored by Authenticate.
func ActorFromCtx(ctx *fasthttp.RequestCtx) (access.Actor, bool) {
	actor, ok := ctx.UserValue(actorKey).(access.Actor)
	return actor, ok
}

func actorFromClaims(claims jwt.MapClaims) (access.Actor, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return access.Actor{}, fmt.Errorf("missing user ID in token")
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return access.Actor{}, fmt.Errorf("malformed user ID in token")
	}

	email, _ := claims["email"].(string)

	role := access.RoleMember
	if raw, _ := claims["role"].(string); raw == string(access.RoleModerator) {
		role = access.RoleModerator
	}

	return access.Actor{ID: id, Email: email, Role: role}, nil
}
