package middleware

import (
	"net"
	"net/url"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const environmentProduction = "production"

// DefaultCORSConfig builds the CORS policy for environment.
// Production only accepts allowedOrigins. Other environments also accept
// localhost and private-network origins so local dashboards can reach the API.
func DefaultCORSConfig(environment string, allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if environment == environmentProduction {
		cfg.AllowOrigins = allowedOrigins
		if len(cfg.AllowOrigins) == 0 {
			// cors.New panics on an empty policy.
			cfg.AllowOriginFunc = func(string) bool { return false }
		}
		return cfg
	}

	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	cfg.AllowOriginFunc = func(origin string) bool {
		return allowed[origin] || isLocalOrigin(origin)
	}
	return cfg
}

// CORS wraps gin-contrib/cors with cfg.
func CORS(cfg cors.Config) gin.HandlerFunc {
	return cors.New(cfg)
}

func isLocalOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}

	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && (ip.IsLoopback() || ip.IsPrivate())
}
