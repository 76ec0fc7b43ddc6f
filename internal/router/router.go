package router

import (
	"fmt"
	"strings"

	"github.com/compravenda/api/internal/cache"
	"github.com/compravenda/api/internal/config"
	"github.com/compravenda/api/internal/http/handlers"
	"github.com/compravenda/api/internal/logger"
	"github.com/compravenda/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with the full route surface.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "loja"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "Muitas tentativas de login.",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	auth := UserJWTAuthMiddleware(c.UserAuthService)

	r.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("username")), handler.Login)
	r.POST("/login/refresh", handler.Refresh)

	usuarios := r.Group("/usuarios")
	{
		usuarios.POST("", handler.Register)
		usuarios.GET("", auth, handler.ListUsers)
		usuarios.GET("/perfil", auth, handler.GetProfile)
		usuarios.GET("/:id", auth, handler.GetUser)
		usuarios.PUT("", auth, handler.UpdateProfile)
		usuarios.PUT("/:id", auth, handler.UpdateUser)
	}

	produtos := r.Group("/produtos")
	{
		produtos.GET("", handler.ListProducts)
		produtos.GET("/:id", handler.GetProduct)
		produtos.POST("", auth, handler.CreateProduct)
		produtos.PUT("/:id", auth, handler.UpdateProduct)
		produtos.DELETE("/:id", auth, handler.DeleteProduct)
		produtos.GET("/:id/avaliacoes", handler.ListProductRatings)
		produtos.POST("/:id/avaliacao", auth, handler.CreateProductRating)
		produtos.POST("/:id/comentario", auth, handler.CreateProductComment)
	}

	carrinho := r.Group("/carrinho", auth)
	{
		carrinho.GET("", handler.GetActiveCart)
		carrinho.POST("/adicionar", handler.CreateCart)
		carrinho.PUT("/atualizar/:id", handler.UpdateCart)
		carrinho.DELETE("/remover/:id", handler.DeleteCart)
	}

	pedidos := r.Group("/pedidos", auth)
	{
		pedidos.GET("", handler.ListOrders)
		pedidos.GET("/:id", handler.GetOrder)
		pedidos.POST("/criar", handler.CreateOrder)
		pedidos.PUT("/atualizar/:id", handler.UpdateOrder)
		pedidos.DELETE("/cancelar/:id", handler.CancelOrder)
	}

	r.GET("/consultas/cep/:cep", handler.LookupCep)

	return r
}
