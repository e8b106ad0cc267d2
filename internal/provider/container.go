package provider

import (
	"github.com/veltrachem-web/internal/cache"
	"github.com/veltrachem-web/internal/config"
	"github.com/veltrachem-web/internal/logger"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/queue"
	"github.com/veltrachem-web/internal/repository"
	"github.com/veltrachem-web/internal/service"
	"github.com/veltrachem-web/internal/storage"
)

// Container is the dependency injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Storage     storage.Storage

	// Repositories
	AdminRepo         repository.AdminRepository
	CategoryRepo      repository.CategoryRepository
	ProductRepo       repository.ProductRepository
	ProductBlogRepo   repository.ProductBlogRepository
	CompanyBlogRepo   repository.CompanyBlogRepository
	CompanyRepo       repository.CompanyRepository
	ContactRepo       repository.ContactRepository
	DownloadEmailRepo repository.DownloadEmailRepository

	// Services
	AuthService         *service.AuthService
	EmailService        *service.EmailService
	NotificationService *service.NotificationService
	CatalogService      *service.CatalogService
	BlogService         *service.BlogService
	CompanyService      *service.CompanyService
	ContactService      *service.ContactService
	DownloadService     *service.DownloadService
	SitemapService      *service.SitemapService
	UploadService       *service.UploadService
}

// NewContainer wires repositories and services.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		logger.Errorw("provider_init_storage_failed", "error", err)
		panic(err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Storage:     store,
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
	c.ProductBlogRepo = repository.NewProductBlogRepository(db)
	c.CompanyBlogRepo = repository.NewCompanyBlogRepository(db)
	c.CompanyRepo = repository.NewCompanyRepository(db)
	c.ContactRepo = repository.NewContactRepository(db)
	c.DownloadEmailRepo = repository.NewDownloadEmailRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.NotificationService = service.NewNotificationService(
		c.EmailService,
		c.QueueClient,
		c.ContactRepo,
		c.Config.Contact.NotifyEmail,
	)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo)
	c.BlogService = service.NewBlogService(c.ProductBlogRepo, c.CompanyBlogRepo)
	c.CompanyService = service.NewCompanyService(c.CompanyRepo)
	c.ContactService = service.NewContactService(c.ContactRepo, c.NotificationService)
	c.DownloadService = service.NewDownloadService(c.DownloadEmailRepo)
	c.SitemapService = service.NewSitemapService(
		c.CatalogService,
		c.BlogService,
		c.Config.Site.BaseURL,
		c.Config.Site.AdminPath,
	)
	c.UploadService = service.NewUploadService(c.Config, c.Storage)
}
