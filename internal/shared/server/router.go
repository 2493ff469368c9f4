package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/ats"
	googleauth "resumeai-backend/internal/auth"
	"resumeai-backend/internal/chat"
	"resumeai-backend/internal/enhancer"
	"resumeai-backend/internal/interview"
	"resumeai-backend/internal/resume"
	"resumeai-backend/internal/shared/config"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/server/middleware"
	"resumeai-backend/internal/shared/server/respond"
	"resumeai-backend/internal/usage"
	"resumeai-backend/internal/zeroai"
)

// aiRoutes lists route patterns that consume the AI budget. Both the
// rate limiter and the quota middleware key off this set.
var aiRoutes = map[string]struct{}{
	"/api/v1/resume/summary/generate": {},
	"/api/v1/resume/:list/:id/polish": {},
	"/api/v1/ats/check":               {},
	"/api/v1/enhance":                 {},
	"/api/v1/interview/insights":      {},
	"/api/v1/zeroai/detect":           {},
	"/api/v1/zeroai/humanize":         {},
	"/api/v1/chat":                    {},
}

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config           config.Config
	ResumeHandler    *resume.Handler
	ATSHandler       *ats.Handler
	EnhancerHandler  *enhancer.Handler
	InterviewHandler *interview.Handler
	ZeroAIHandler    *zeroai.Handler
	ChatHandler      *chat.Handler
	UsageHandler     *usage.Handler
	UsageService     *usage.Service
	GoogleAuth       *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"ai":      {Rate: 1, Burst: 5},
				"DEFAULT": {Rate: 20, Burst: 60},
			},
			GroupFor: func(c *gin.Context) string {
				if _, ok := aiRoutes[c.FullPath()]; ok {
					return "ai"
				}
				return ""
			},
		}),
		aiQuota(deps.UsageService),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.GoogleAuth.RegisterRoutes(api)
	registerMeRoutes(api)
	deps.ResumeHandler.RegisterRoutes(api)
	deps.ATSHandler.RegisterRoutes(api)
	deps.EnhancerHandler.RegisterRoutes(api)
	deps.InterviewHandler.RegisterRoutes(api)
	deps.ZeroAIHandler.RegisterRoutes(api)
	deps.ChatHandler.RegisterRoutes(api)
	deps.UsageHandler.RegisterRoutes(api)
	if deps.Config.Env == "dev" {
		dev := api.Group("/dev")
		deps.UsageHandler.RegisterDevRoutes(dev)
	}

	return r
}

// aiQuota charges one AI call per request on gateway-backed routes.
func aiQuota(svc *usage.Service) gin.HandlerFunc {
	quota := usage.Quota(svc)
	return func(c *gin.Context) {
		if _, ok := aiRoutes[c.FullPath()]; ok {
			quota(c)
			return
		}
		c.Next()
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
