package public

import (
	"net/http"

	"github.com/veltrachem-web/internal/http/handlers/shared"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
)

// The promo page is pinned to one product by exact name.
const promoProductName = "MEA TRIAZINE 78%"

// basePageData assembles the context every page template consumes.
// The company profile degrades to nil rather than failing the page.
func (h *Handler) basePageData(title string) gin.H {
	return gin.H{
		"title":    title,
		"company":  h.CompanyService.GetProfile(),
		"siteName": h.Config.Site.CompanyName,
	}
}

// Index renders the home page: contact form, company FAQs and the
// three most recent blog posts.
func (h *Handler) Index(c *gin.Context) {
	data := h.basePageData(h.Config.Site.CompanyName)
	data["productChoices"] = productInterestChoices()
	if faqs, err := h.CompanyService.ListFAQs(); err == nil {
		data["faqs"] = faqs
	}
	if blogs, _, err := h.BlogService.ListCompanyBlogs(repository.BlogListFilter{Page: 1, PageSize: 3}); err == nil {
		data["recentBlogs"] = blogs
	}
	c.HTML(http.StatusOK, "index.tmpl", data)
}

// About renders the about page.
func (h *Handler) About(c *gin.Context) {
	data := h.basePageData("About Us")
	faqs, err := h.CompanyService.ListFAQs()
	if err == nil {
		data["faqs"] = faqs
	}
	c.HTML(http.StatusOK, "aboutus.tmpl", data)
}

// Services renders the services page.
func (h *Handler) Services(c *gin.Context) {
	data := h.basePageData("Our Services")
	c.HTML(http.StatusOK, "ourservices.tmpl", data)
}

// Products renders the catalog listing. Inactive products stay
// visible here; only the sitemap hides them.
func (h *Handler) Products(c *gin.Context) {
	products, _, err := h.CatalogService.ListProducts(repository.ProductListFilter{
		CategorySlug: c.Query("category"),
	})
	if err != nil {
		shared.RequestLog(c).Errorw("catalog_list_failed", "error", err)
		products = nil
	}
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		categories = nil
	}

	data := h.basePageData("Products")
	data["products"] = products
	data["categories"] = categories
	c.HTML(http.StatusOK, "products.tmpl", data)
}

// ProductDetail renders one product page, or 404 on an unknown slug.
func (h *Handler) ProductDetail(c *gin.Context) {
	detail, err := h.CatalogService.GetProductBySlug(c.Param("slug"))
	if err == service.ErrNotFound {
		c.HTML(http.StatusNotFound, "404.tmpl", h.basePageData("Not Found"))
		return
	}
	if err != nil {
		shared.RequestLog(c).Errorw("product_detail_failed", "slug", c.Param("slug"), "error", err)
		c.HTML(http.StatusInternalServerError, "500.tmpl", h.basePageData("Error"))
		return
	}

	data := h.basePageData(detail.Product.Name)
	data["product"] = detail.Product
	data["specs"] = detail.Product.Specs()
	data["related"] = detail.Related
	c.HTML(http.StatusOK, "product_detail.tmpl", data)
}

// Triazine renders the fixed promotional page. A missing product row
// degrades to a placeholder image instead of an error.
func (h *Handler) Triazine(c *gin.Context) {
	result := h.CatalogService.GetNamedProduct(promoProductName)

	data := h.basePageData("MEA Triazine")
	data["image"] = result.Image
	data["missing"] = result.Missing
	if result.Product != nil {
		data["product"] = result.Product
		data["specs"] = result.Product.Specs()
	}
	c.HTML(http.StatusOK, "mea_triazine.tmpl", data)
}

// BlogList renders the company blog index.
func (h *Handler) BlogList(c *gin.Context) {
	blogs, _, err := h.BlogService.ListCompanyBlogs(repository.BlogListFilter{})
	if err != nil {
		blogs = nil
	}

	data := h.basePageData("Blog")
	data["blogs"] = blogs
	c.HTML(http.StatusOK, "blog_list.tmpl", data)
}

// BlogDetail renders one company blog post.
func (h *Handler) BlogDetail(c *gin.Context) {
	detail, err := h.BlogService.GetCompanyBlogBySlug(c.Param("slug"))
	if err == service.ErrNotFound {
		c.HTML(http.StatusNotFound, "404.tmpl", h.basePageData("Not Found"))
		return
	}
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.tmpl", h.basePageData("Error"))
		return
	}

	data := h.basePageData(detail.Blog.Title)
	data["blog"] = detail.Blog
	data["related"] = detail.Related
	c.HTML(http.StatusOK, "blog_detail.tmpl", data)
}

// ProductBlogDetail renders one product blog post.
func (h *Handler) ProductBlogDetail(c *gin.Context) {
	detail, err := h.BlogService.GetProductBlogBySlug(c.Param("slug"))
	if err == service.ErrNotFound {
		c.HTML(http.StatusNotFound, "404.tmpl", h.basePageData("Not Found"))
		return
	}
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.tmpl", h.basePageData("Error"))
		return
	}

	data := h.basePageData(detail.Blog.Title)
	data["blog"] = detail.Blog
	data["related"] = detail.Related
	c.HTML(http.StatusOK, "product_blog_detail.tmpl", data)
}

// productInterestChoices feeds the contact form select.
func productInterestChoices() []string {
	return models.ProductInterestChoices
}
