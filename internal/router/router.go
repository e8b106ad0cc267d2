package router

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/veltrachem-web/internal/cache"
	"github.com/veltrachem-web/internal/config"
	adminhandlers "github.com/veltrachem-web/internal/http/handlers/admin"
	publichandlers "github.com/veltrachem-web/internal/http/handlers/public"
	"github.com/veltrachem-web/internal/logger"
	"github.com/veltrachem-web/internal/provider"
	"github.com/veltrachem-web/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires all HTTP routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	gin.SetMode(resolveGinMode(cfg.Server.Mode))
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "vc"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Blog content is authored HTML and rendered as-is.
	r.SetFuncMap(template.FuncMap{
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	})
	r.LoadHTMLGlob("templates/*.tmpl")
	r.Static("/static", "./static")
	if local, ok := c.Storage.(*storage.Local); ok {
		r.Static(local.PublicURL(), local.Dir())
	}

	// Marketing pages. The home and contact pages both accept the
	// contact form.
	r.GET("/", publicHandler.Index)
	r.POST("/", publicHandler.Contact)
	r.GET("/contact/", publicHandler.ContactPage)
	r.POST("/contact/", publicHandler.Contact)
	r.POST("/contact/ajax/", publicHandler.ContactAjax)
	r.POST("/save-email/", publicHandler.SaveEmail)
	r.GET("/aboutus", publicHandler.About)
	r.GET("/ourservices", publicHandler.Services)
	r.GET("/products", publicHandler.Products)
	r.GET("/product/:slug/", publicHandler.ProductDetail)
	r.GET("/MEA-Triazine", publicHandler.Triazine)
	r.GET("/blog", publicHandler.BlogList)
	r.GET("/blog/:slug/", publicHandler.BlogDetail)
	r.GET("/product-blog/:slug/", publicHandler.ProductBlogDetail)
	r.GET("/sitemap.xml", publicHandler.Sitemap)
	r.GET("/robots.txt", publicHandler.Robots)

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/categories", publicHandler.APICategories)
			public.GET("/products", publicHandler.APIProducts)
			public.GET("/products/:slug", publicHandler.APIProductDetail)
			public.GET("/blogs", publicHandler.APICompanyBlogs)
			public.GET("/product-blogs", publicHandler.APIProductBlogs)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.GET("/me", adminHandler.Me)
				authorized.PUT("/password", adminHandler.ChangePassword)
				authorized.GET("/admins", adminHandler.ListAdmins)
				authorized.POST("/admins", adminHandler.CreateAdmin)
				authorized.DELETE("/admins/:id", adminHandler.DeleteAdmin)

				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/products", adminHandler.ListProducts)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/product-blogs", adminHandler.ListProductBlogs)
				authorized.POST("/product-blogs", adminHandler.CreateProductBlog)
				authorized.PUT("/product-blogs/:id", adminHandler.UpdateProductBlog)
				authorized.DELETE("/product-blogs/:id", adminHandler.DeleteProductBlog)

				authorized.GET("/blogs", adminHandler.ListCompanyBlogs)
				authorized.POST("/blogs", adminHandler.CreateCompanyBlog)
				authorized.PUT("/blogs/:id", adminHandler.UpdateCompanyBlog)
				authorized.DELETE("/blogs/:id", adminHandler.DeleteCompanyBlog)

				authorized.GET("/company", adminHandler.GetCompanyProfile)
				authorized.PUT("/company", adminHandler.SaveCompanyProfile)
				authorized.GET("/company/faqs", adminHandler.ListCompanyFAQs)
				authorized.POST("/company/faqs", adminHandler.CreateCompanyFAQ)
				authorized.PUT("/company/faqs/:id", adminHandler.UpdateCompanyFAQ)
				authorized.DELETE("/company/faqs/:id", adminHandler.DeleteCompanyFAQ)

				authorized.GET("/contacts", adminHandler.ListContacts)
				authorized.GET("/contacts/unread-count", adminHandler.UnreadContactCount)
				authorized.GET("/contacts/:id", adminHandler.GetContact)
				authorized.POST("/contacts/mark-read", adminHandler.MarkContactsRead)
				authorized.POST("/contacts/mark-unread", adminHandler.MarkContactsUnread)
				authorized.DELETE("/contacts/:id", adminHandler.DeleteContact)

				authorized.GET("/download-emails", adminHandler.ListDownloadEmails)
				authorized.DELETE("/download-emails/:id", adminHandler.DeleteDownloadEmail)

				authorized.POST("/upload", adminHandler.Upload)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

func resolveGinMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
