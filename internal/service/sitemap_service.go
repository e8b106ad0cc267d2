package service

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/veltrachem-web/internal/constants"
)

// SitemapURL is one <url> element of the sitemap.
type SitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

// SitemapURLSet is the sitemap document root.
type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapService renders crawler metadata: sitemap.xml and robots.txt.
type SitemapService struct {
	catalog   *CatalogService
	blogs     *BlogService
	baseURL   string
	adminPath string
}

// NewSitemapService creates a sitemap service.
func NewSitemapService(catalog *CatalogService, blogs *BlogService, baseURL, adminPath string) *SitemapService {
	return &SitemapService{
		catalog:   catalog,
		blogs:     blogs,
		baseURL:   strings.TrimRight(baseURL, "/"),
		adminPath: adminPath,
	}
}

// BuildSitemap assembles sitemap entries: active products only, then
// all company and product blog posts.
func (s *SitemapService) BuildSitemap() (*SitemapURLSet, error) {
	set := &SitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	products, err := s.catalog.ListActiveProducts()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        fmt.Sprintf("%s/product/%s/", s.baseURL, p.Slug),
			ChangeFreq: constants.SitemapFreqWeekly,
			Priority:   constants.SitemapPriorityProduct,
		})
	}

	companyBlogs, err := s.blogs.ListAllCompanyBlogs()
	if err != nil {
		return nil, err
	}
	for _, b := range companyBlogs {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        fmt.Sprintf("%s/blog/%s/", s.baseURL, b.Slug),
			ChangeFreq: constants.SitemapFreqMonthly,
			Priority:   constants.SitemapPriorityBlog,
		})
	}

	productBlogs, err := s.blogs.ListAllProductBlogs()
	if err != nil {
		return nil, err
	}
	for _, b := range productBlogs {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        fmt.Sprintf("%s/product-blog/%s/", s.baseURL, b.Slug),
			ChangeFreq: constants.SitemapFreqMonthly,
			Priority:   constants.SitemapPriorityBlog,
		})
	}

	return set, nil
}

// RenderSitemapXML renders the sitemap document.
func (s *SitemapService) RenderSitemapXML() ([]byte, error) {
	set, err := s.BuildSitemap()
	if err != nil {
		return nil, err
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// RenderRobotsTxt renders robots.txt: the admin path is disallowed,
// everything else allowed, and the sitemap URL advertised.
func (s *SitemapService) RenderRobotsTxt() string {
	var buf strings.Builder
	buf.WriteString("User-agent: *\n")
	if s.adminPath != "" {
		fmt.Fprintf(&buf, "Disallow: %s/\n", strings.TrimRight(s.adminPath, "/"))
	}
	buf.WriteString("Allow: /\n\n")
	fmt.Fprintf(&buf, "Sitemap: %s/sitemap.xml\n", s.baseURL)
	return buf.String()
}
