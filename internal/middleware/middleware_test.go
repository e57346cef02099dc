package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stwalsh4118/landregistry/internal/logger"
)

const testOrigin = "http://localhost:8080"

func init() {
	// Set Gin to test mode to reduce noise in tests
	gin.SetMode(gin.TestMode)
}

// TestRequestID tests the RequestID middleware
func TestRequestID(t *testing.T) {
	t.Run("generates new request ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			requestID := GetRequestID(c)
			if requestID == "" {
				t.Error("Expected request ID to be set")
			}
			c.String(200, requestID)
		})

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		headerID := w.Header().Get(RequestIDHeader)
		if headerID == "" {
			t.Error("Expected X-Request-ID header to be set")
		}
		if w.Body.String() != headerID {
			t.Errorf("Expected body to contain request ID %s, got %s", headerID, w.Body.String())
		}
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(200, GetRequestID(c))
		})

		existingID := "existing-request-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Body.String() != existingID {
			t.Errorf("Expected request ID %s, got %s", existingID, w.Body.String())
		}
	})

	t.Run("replaces malformed request ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(200, GetRequestID(c))
		})

		for _, bad := range []string{strings.Repeat("a", maxRequestIDLength+1), "has space"} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, bad)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Body.String() == bad || w.Body.String() == "" {
				t.Errorf("Expected %q to be replaced, got %q", bad, w.Body.String())
			}
		}
	})

	t.Run("GetRequestID returns empty string if not set", func(t *testing.T) {
		c := &gin.Context{}
		requestID := GetRequestID(c)
		if requestID != "" {
			t.Errorf("Expected empty string, got %s", requestID)
		}
	})
}

// TestCORS tests the CORS middleware
func TestCORS(t *testing.T) {
	t.Run("allows request from configured origin", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(testOrigin))
		router.GET("/test", func(c *gin.Context) {
			c.String(200, "OK")
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", testOrigin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != 200 {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != testOrigin {
			t.Error("Expected Access-Control-Allow-Origin header to be set")
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("Expected Access-Control-Allow-Credentials header to be set")
		}
	})

	t.Run("does not set CORS headers for other origins", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(testOrigin))
		router.GET("/test", func(c *gin.Context) {
			c.String(200, "OK")
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Error("Expected no CORS headers for disallowed origin")
		}
	})

	t.Run("handles OPTIONS preflight for configured origin", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(testOrigin))
		router.GET("/test", func(c *gin.Context) {
			c.String(200, "OK")
		})

		req := httptest.NewRequest("OPTIONS", "/test", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", "GET")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204 for OPTIONS, got %d", w.Code)
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "GET") {
			t.Errorf("Expected GET in allowed methods, got %q", w.Header().Get("Access-Control-Allow-Methods"))
		}
	})

	t.Run("grants any requested header on preflight", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(testOrigin))
		router.GET("/test", func(c *gin.Context) {
			c.String(200, "OK")
		})

		req := httptest.NewRequest("OPTIONS", "/test", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", "GET")
		req.Header.Set("Access-Control-Request-Headers", "x-client-version, X-Trace-Token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204 for OPTIONS, got %d", w.Code)
		}
		allowed := w.Header().Get("Access-Control-Allow-Headers")
		for _, name := range []string{"X-Client-Version", "X-Trace-Token", "Content-Type"} {
			if !strings.Contains(allowed, name) {
				t.Errorf("Expected %s in allowed headers, got %q", name, allowed)
			}
		}
		if w.Header().Get("Access-Control-Allow-Origin") != testOrigin {
			t.Error("Expected Access-Control-Allow-Origin header to be set")
		}
	})

	t.Run("requested headers do not widen later preflights", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(testOrigin))
		router.GET("/test", func(c *gin.Context) {
			c.String(200, "OK")
		})

		first := httptest.NewRequest("OPTIONS", "/test", nil)
		first.Header.Set("Origin", testOrigin)
		first.Header.Set("Access-Control-Request-Method", "GET")
		first.Header.Set("Access-Control-Request-Headers", "X-Client-Version")
		router.ServeHTTP(httptest.NewRecorder(), first)

		second := httptest.NewRequest("OPTIONS", "/test", nil)
		second.Header.Set("Origin", testOrigin)
		second.Header.Set("Access-Control-Request-Method", "GET")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, second)

		if strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "X-Client-Version") {
			t.Errorf("Expected base header list, got %q", w.Header().Get("Access-Control-Allow-Headers"))
		}
	})

	t.Run("rejects OPTIONS preflight for other origins", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(testOrigin))
		router.GET("/test", func(c *gin.Context) {
			c.String(200, "OK")
		})

		req := httptest.NewRequest("OPTIONS", "/test", nil)
		req.Header.Set("Origin", "http://evil.com")
		req.Header.Set("Access-Control-Request-Method", "GET")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Expected status 403 for disallowed OPTIONS, got %d", w.Code)
		}
	})
}

// TestLogger tests the Logger middleware
func TestLogger(t *testing.T) {
	t.Run("logs one line per request", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithOptions("production", logger.Options{Output: &buf})

		router := gin.New()
		router.Use(RequestID())
		router.Use(Logger(log))
		router.GET("/parcels", func(c *gin.Context) {
			c.String(200, "OK")
		})

		req := httptest.NewRequest("GET", "/parcels?search=oak", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var entry map[string]interface{}
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
			t.Fatalf("Expected one JSON log line, got %q: %v", buf.String(), err)
		}
		if entry["level"] != "info" {
			t.Errorf("Expected info level, got %v", entry["level"])
		}
		if entry["request_id"] != "req-42" {
			t.Errorf("Expected request_id req-42, got %v", entry["request_id"])
		}
		if entry["query"] != "search=oak" {
			t.Errorf("Expected query to be logged, got %v", entry["query"])
		}
		if entry["route"] != "/parcels" {
			t.Errorf("Expected route /parcels, got %v", entry["route"])
		}
	})

	t.Run("logs client errors as warnings", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithOptions("production", logger.Options{Output: &buf})

		router := gin.New()
		router.Use(Logger(log))
		router.GET("/missing", func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/missing", nil))

		if !strings.Contains(buf.String(), `"level":"warn"`) {
			t.Errorf("Expected warn level entry, got %q", buf.String())
		}
	})

	t.Run("GetLogger retrieves logger from context", func(t *testing.T) {
		log := logger.New("test")
		router := gin.New()
		router.Use(RequestID())
		router.Use(Logger(log))
		router.GET("/test", func(c *gin.Context) {
			contextLogger := GetLogger(c)
			if contextLogger == nil {
				t.Error("Expected logger to be in context")
			}
			c.String(200, "OK")
		})

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	})

	t.Run("GetLogger returns nil if not set", func(t *testing.T) {
		c := &gin.Context{}
		log := GetLogger(c)
		if log != nil {
			t.Error("Expected nil logger")
		}
	})
}

// TestRecovery tests the Recovery middleware
func TestRecovery(t *testing.T) {
	t.Run("recovers from panic and returns 500", func(t *testing.T) {
		log := logger.New("test")
		router := gin.New()
		router.Use(RequestID())
		router.Use(Recovery(log))
		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		req := httptest.NewRequest("GET", "/panic", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != 500 {
			t.Errorf("Expected status 500 after panic, got %d", w.Code)
		}

		body := w.Body.String()
		if !strings.Contains(body, "INTERNAL_SERVER_ERROR") {
			t.Error("Expected error response to contain INTERNAL_SERVER_ERROR")
		}
		if !strings.Contains(body, "request_id") {
			t.Error("Expected error response to contain request_id")
		}
		if strings.Contains(body, "test panic") {
			t.Error("Expected panic value not to leak into the response")
		}
	})

	t.Run("does not interfere with normal requests", func(t *testing.T) {
		log := logger.New("test")
		router := gin.New()
		router.Use(Recovery(log))
		router.GET("/normal", func(c *gin.Context) {
			c.String(200, "OK")
		})

		req := httptest.NewRequest("GET", "/normal", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != 200 {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Body.String() != "OK" {
			t.Errorf("Expected body 'OK', got %s", w.Body.String())
		}
	})
}

// TestMiddlewareStack tests that all middleware work together
func TestMiddlewareStack(t *testing.T) {
	log := logger.New("test")

	router := gin.New()
	router.Use(RequestID())
	router.Use(Logger(log))
	router.Use(Recovery(log))
	router.Use(CORS(testOrigin))
	router.GET("/test", func(c *gin.Context) {
		if GetRequestID(c) == "" {
			t.Error("Expected request ID from RequestID middleware")
		}
		if GetLogger(c) == nil {
			t.Error("Expected logger from Logger middleware")
		}
		c.String(200, "OK")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", testOrigin)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("Expected X-Request-ID header")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != testOrigin {
		t.Error("Expected CORS headers")
	}
}
