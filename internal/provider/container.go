package provider

import (
	"github.com/glowderma/glowderma/internal/authz"
	"github.com/glowderma/glowderma/internal/cache"
	"github.com/glowderma/glowderma/internal/config"
	"github.com/glowderma/glowderma/internal/logger"
	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/queue"
	"github.com/glowderma/glowderma/internal/repository"
	"github.com/glowderma/glowderma/internal/service"
)

// Container wires repositories and services for the handlers.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo    repository.AdminRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	PostRepo     repository.PostRepository
	CouponRepo   repository.CouponRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	PaymentRepo  repository.PaymentRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	CaptchaService      *service.CaptchaService
	NotificationService *service.NotificationService
	CategoryService     *service.CategoryService
	ProductService      *service.ProductService
	PostService         *service.PostService
	CouponAdminService  *service.CouponAdminService
	CartService         *service.CartService
	OrderService        *service.OrderService
	AssistantService    *service.AssistantService
}

// NewContainer initializes the dependency container.
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
	c.AdminRepo = repository.NewAdminRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.NotificationService = service.NewNotificationService(c.QueueClient)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.ProductRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.PostService = service.NewPostService(c.PostRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.CouponRepo, c.NotificationService)
	c.OrderService = service.NewOrderService(c.Config, c.OrderRepo, c.PaymentRepo, c.CouponRepo, c.CartService, c.NotificationService, c.QueueClient)
	c.AssistantService = service.NewAssistantService(c.Config.Assistant)
}
