package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS admits cross-origin requests from exactly one origin, the frontend
// the registry is served to. Any method and any request header are permitted:
// a preflight is granted every header listed in Access-Control-Request-Headers.
func CORS(origin string) gin.HandlerFunc {
	config := cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Language",
			"Authorization", "Cache-Control", "X-Requested-With", RequestIDHeader,
		},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	base := cors.New(config)

	return func(c *gin.Context) {
		requested := requestedHeaders(c.Request)
		if c.Request.Method != http.MethodOptions || len(requested) == 0 {
			base(c)
			return
		}

		// Preflight headers are fixed per cors.Config, so the requested
		// headers get a config of their own.
		mirrored := config
		mirrored.AllowHeaders = append(append([]string{}, config.AllowHeaders...), requested...)
		cors.New(mirrored)(c)
	}
}

func requestedHeaders(r *http.Request) []string {
	var headers []string
	for _, value := range r.Header.Values("Access-Control-Request-Headers") {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				headers = append(headers, name)
			}
		}
	}
	return headers
}
