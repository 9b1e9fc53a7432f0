package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request correlation id.
	HeaderRequestID = "X-Request-ID"
	// HeaderUserID carries the id of the caller, set by the authenticating gateway.
	HeaderUserID = "X-User-ID"

	ctxRequestID = "request_id"
	ctxUserID    = "user_id"
)

// requestID keeps the caller's X-Request-ID or generates a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.log.ErrorContext(c.Request.Context(), "Handler panicked",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(ctxRequestID),
		)
		fail(c, http.StatusInternalServerError, "An unexpected error occurred", nil)
		c.Abort()
	})
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.log.InfoContext(c.Request.Context(), "HTTP request",
			"method", c.Request.Method,
			"route", routeOf(c),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString(ctxRequestID),
		)
	}
}

func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeOf(c)
		s.metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		s.metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// routeOf returns the matched route pattern so metric labels stay bounded.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}

	return "unmatched"
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", HeaderUserID, HeaderRequestID}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.ExposeHeaders = []string{HeaderRequestID}

	return cors.New(corsCfg)
}

// requireUser rejects requests without a valid X-User-ID header.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUserID(c.GetHeader(HeaderUserID))
		if !ok {
			fail(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}
		c.Set(ctxUserID, id)
		c.Next()
	}
}

// optionalUser records the caller when the X-User-ID header is valid and lets anonymous requests through.
func optionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := parseUserID(c.GetHeader(HeaderUserID)); ok {
			c.Set(ctxUserID, id)
		}
		c.Next()
	}
}

// currentUser returns the caller id set by requireUser or optionalUser.
func currentUser(c *gin.Context) (int64, bool) {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	userID, ok := id.(int64)

	return userID, ok
}

func parseUserID(header string) (int64, bool) {
	if header == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(header, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
