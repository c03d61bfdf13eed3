package handler

import (
	"equity-registry/internal/adapter/http/middleware"
	redisStore "equity-registry/internal/adapter/storage/redis"
	"equity-registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	VotingSvc      ports.VotingService
	RightsSvc      ports.RightsService
	RegistrySvc    ports.RegistryService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	registryHandler := NewRegistryHandler(deps.RegistrySvc)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	holderHandler := NewHolderHandler(deps.VotingSvc, deps.RightsSvc)

	registry := v1.Group("/registry", jwtAuth)
	{
		registry.POST("", rl("admin"), registryHandler.Init)
		registry.GET("", rl("queries"), registryHandler.Info)
		registry.GET("/events", rl("queries"), registryHandler.Events)
		registry.POST("/split", rl("admin"), registryHandler.Split)
		registry.PUT("/vote-mode", rl("admin"), registryHandler.SetVoteMode)
		registry.PUT("/dividend", rl("admin"), registryHandler.SetDividend)
	}

	transfers := v1.Group("/transfers", jwtAuth)
	{
		transfers.POST("", rl("transfers"), ledgerHandler.Transfer)
		transfers.POST("/delegated", rl("transfers"), ledgerHandler.TransferFrom)
	}

	supply := v1.Group("/supply", jwtAuth)
	{
		supply.POST("/mint", rl("admin"), ledgerHandler.Mint)
		supply.POST("/burn", rl("admin"), ledgerHandler.Burn)
	}

	allowances := v1.Group("/allowances", jwtAuth)
	{
		allowances.POST("", rl("transfers"), ledgerHandler.Approve)
		allowances.PATCH("", rl("transfers"), ledgerHandler.UpdateApprove)
		allowances.GET("/:spender", rl("queries"), ledgerHandler.Allowance)
	}

	me := v1.Group("/me", jwtAuth)
	{
		me.GET("/balance", rl("queries"), ledgerHandler.MyBalance)
		me.PUT("/delegate", rl("transfers"), holderHandler.SetDelegate)
		me.DELETE("/delegate", rl("transfers"), holderHandler.RemoveDelegate)
		me.GET("/delegate", rl("queries"), holderHandler.GetDelegate)
		me.GET("/voting", rl("queries"), holderHandler.MyVotingProfile)
		me.GET("/rights", rl("queries"), holderHandler.MyRights)
	}

	holders := v1.Group("/holders", jwtAuth)
	{
		holders.GET("/:address/balance", rl("queries"), ledgerHandler.HolderBalance)
		holders.GET("/:address/voting", rl("queries"), holderHandler.VotingProfile)
		holders.GET("/:address/rights", rl("queries"), holderHandler.HolderRights)
		holders.GET("/:address/delegators", rl("queries"), holderHandler.Delegators)
	}

	rights := v1.Group("/rights", jwtAuth)
	{
		rights.GET("/brackets", rl("queries"), holderHandler.Brackets)
	}

	return r
}

// senderAddress extracts the authenticated holder address from the context.
func senderAddress(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxAddress)
	if !ok {
		return "", false
	}
	addr, ok := v.(string)
	return addr, ok && addr != ""
}
