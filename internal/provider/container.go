package provider

import (
	"github.com/compravenda/api/internal/cache"
	"github.com/compravenda/api/internal/config"
	"github.com/compravenda/api/internal/logger"
	"github.com/compravenda/api/internal/models"
	"github.com/compravenda/api/internal/queue"
	"github.com/compravenda/api/internal/repository"
	"github.com/compravenda/api/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	ReviewRepo  repository.ReviewRepository
	UserRepo    repository.UserRepository

	// Services
	ProductService  *service.ProductService
	CartService     *service.CartService
	OrderService    *service.OrderService
	ReviewService   *service.ReviewService
	UserService     *service.UserService
	UserAuthService *service.UserAuthService
	EmailService    *service.EmailService
	CepService      *service.CepService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ReviewRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.QueueClient, c.Config.Catalog.LowStockThreshold)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.QueueClient)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.UserService = service.NewUserService(c.Config, c.UserRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.CepService = service.NewCepService(&c.Config.Cep)
}

// Close releases held resources.
func (c *Container) Close() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}
