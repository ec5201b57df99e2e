package handler

import (
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/bookloop/lending-service/config"
	"github.com/bookloop/lending-service/pkg/auth"
)

const (
	authorizationHeader = "Authorization"
	bearer              = "Bearer "
)

// authMW picks the principal source: JWT when a signing key is
// configured, the gateway's X-User-* headers otherwise.
func authMW(cfg config.Config) echo.MiddlewareFunc {
	if cfg.JWTKey != "" {
		return jwtAuthentication([]byte(cfg.JWTKey))
	}
	return authContext
}

func jwtAuthentication(key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(authorizationHeader)
			if authorization == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No Authorization Header")
			}
			if !strings.HasPrefix(authorization, bearer) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
			}
			tokenStr := strings.TrimPrefix(authorization, bearer)
			claims := new(auth.Claims)

			token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
				return key, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
			}
			if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
				return echo.NewHTTPError(http.StatusUnauthorized, "TokenExpired")
			}

			req := c.Request()
			ctx := auth.SetAuthContext(req.Context(), auth.Principal{
				ID:   claims.Profile.UserID,
				Name: claims.Profile.Name,
				Role: claims.Profile.Role,
			})
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

// authContext trusts upstream identity headers. Only for deployments
// behind the gateway that already validated the token.
func authContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		userID := req.Header.Get(auth.XUserIDHeader)
		if userID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "user-id is empty")
		}
		userRole := req.Header.Get(auth.XUserRoleHeader)
		if userRole == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "user-role is empty")
		}
		ctx := auth.SetAuthContext(req.Context(), auth.Principal{
			ID:   userID,
			Name: req.Header.Get(auth.XUserNameHeader),
			Role: userRole,
		})
		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}

func newRateLimiterMW(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func requestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
