package main

import (
	"github.com/veltrachem-web/internal/config"
	"github.com/veltrachem-web/internal/logger"
	"github.com/veltrachem-web/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categories := []models.ProductCategory{
		{Name: "Oilfield Chemicals", Slug: "oilfield-chemicals", Icon: "droplet"},
		{Name: "Sulphonates", Slug: "sulphonates", Icon: "flask"},
		{Name: "Amines", Slug: "amines", Icon: "hexagon"},
	}
	for _, cat := range categories {
		var existing models.ProductCategory
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.ProductCategory
	if err := models.DB.Find(&categoryList).Error; err != nil {
		stdLog.Fatalf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	products := []models.Product{
		{
			Priority:   100,
			Name:       "MEA TRIAZINE 78%",
			Slug:       "mea-triazine-78",
			CategoryID: categoryIDs["oilfield-chemicals"],
			ShortDesc:  "High-performance hydrogen sulfide scavenger for sour gas and crude streams.",
			DetailedDesc: "MEA Triazine 78% is a water-soluble, non-regenerative H2S scavenger " +
				"built for contact towers and direct-injection service across upstream and " +
				"midstream operations. The concentrated grade reduces freight and dosing volume.",
			Purity:            "78%",
			Packaging:         "210 L HDPE drums, 1000 L IBC totes, bulk",
			Application:       "Sour gas sweetening, crude oil treatment",
			Grade:             "Technical",
			Form:              "Liquid",
			CASNumber:         "4719-04-4",
			Formula:           "C9H21N3O3",
			Appearance:        "Clear to pale yellow liquid",
			Assay:             "78% min",
			MolecularWeight:   "219.28 g/mol",
			Density:           "1.15 g/cm3 at 25 C",
			BoilingPoint:      "> 100 C",
			ISOCertifications: models.StringArray{"ISO 9001:2015", "ISO 14001:2015"},
			MetaTitle:         "MEA Triazine 78% | H2S Scavenger",
			MetaDescription:   "Buy MEA Triazine 78%, a concentrated hydrogen sulfide scavenger for oilfield service.",
			IsActive:          true,
			FAQs: []models.ProductFAQ{
				{Question: "What dosing rate is recommended?", Answer: "Typical rates run 2-4 litres per kg of H2S removed, tuned to contact time and temperature.", Priority: 10},
				{Question: "Is it compatible with downstream amine units?", Answer: "Yes, spent triazine is water-soluble and separates with the aqueous phase.", Priority: 5},
			},
			Applications: []models.ProductApplication{
				{Title: "Contact towers", Description: "Continuous sweetening of produced gas.", Priority: 10},
				{Title: "Direct injection", Description: "Atomized injection into flowlines.", Priority: 5},
			},
		},
		{
			Priority:   90,
			Name:       "P-TOLUENE SULPHONIC ACID",
			Slug:       "p-toluene-sulphonic-acid",
			CategoryID: categoryIDs["sulphonates"],
			ShortDesc:  "Strong organic acid catalyst for esterification and condensation reactions.",
			DetailedDesc: "PTSA is widely used as an acid catalyst in organic synthesis, resin " +
				"manufacture and as an intermediate for dyes and pharmaceuticals.",
			Purity:          "98%",
			Packaging:       "25 kg bags, 500 kg big bags",
			Grade:           "Industrial",
			Form:            "Crystalline solid",
			CASNumber:       "104-15-4",
			Formula:         "C7H8O3S",
			Appearance:      "White crystalline powder",
			Assay:           "98% min",
			MolecularWeight: "172.20 g/mol",
			MeltingPoint:    "104-107 C",
			IsActive:        true,
		},
		{
			Priority:   80,
			Name:       "SODIUM CUMENE SULPHONATE",
			Slug:       "sodium-cumene-sulphonate",
			CategoryID: categoryIDs["sulphonates"],
			ShortDesc:  "Hydrotrope for liquid detergents and hard-surface cleaners.",
			Purity:     "93%",
			Packaging:  "40% solution in IBC totes, 93% powder in 25 kg bags",
			Grade:      "Industrial",
			Form:       "Powder or aqueous solution",
			CASNumber:  "28348-53-0",
			Formula:    "C9H11NaO3S",
			Appearance: "White free-flowing powder",
			IsActive:   true,
		},
		{
			Priority:   70,
			Name:       "DIISOPROPYLAMINO ETHYLYNE DIAMINE",
			Slug:       "diisopropylamino-ethylyne-diamine",
			CategoryID: categoryIDs["amines"],
			ShortDesc:  "Specialty amine intermediate for agrochemical and pharmaceutical synthesis.",
			Packaging:  "200 kg drums",
			Grade:      "Technical",
			Form:       "Liquid",
			IsActive:   false,
		},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	var profile models.CompanyInformation
	if err := models.DB.First(&profile).Error; err != nil {
		profile = models.CompanyInformation{
			CompanyName:  cfg.Site.CompanyName,
			About:        "Veltra Chemicals manufactures and exports specialty chemicals for oilfield, detergent and pharmaceutical applications.",
			Address:      "Plot 14, GIDC Industrial Estate, Ankleshwar, Gujarat, India",
			SalesEmail:   "sales@veltrachem.com",
			SalesPhone:   "+91 98765 43210",
			GeneralEmail: "info@veltrachem.com",
			GeneralPhone: "+91 98765 43211",
			SocialLinks: models.JSON(map[string]interface{}{
				"linkedin": "https://www.linkedin.com/company/veltrachem",
			}),
			MetaTitle:       "Veltra Chemicals | Specialty Chemical Manufacturer",
			MetaDescription: "Manufacturer and exporter of H2S scavengers, sulphonates and specialty amines.",
			FAQs: []models.CompanyFAQ{
				{Question: "Do you ship internationally?", Answer: "Yes, we export to over 20 countries with full documentation support.", Priority: 10},
				{Question: "Can I request a sample?", Answer: "Samples up to 1 kg are available for qualified buyers.", Priority: 5},
			},
		}
		if err := models.DB.Create(&profile).Error; err != nil {
			stdLog.Printf("Failed to create company profile: %v", err)
		} else {
			stdLog.Printf("Created company profile: %s", profile.CompanyName)
		}
	} else {
		stdLog.Printf("Company profile already exists: %s", profile.CompanyName)
	}

	blogs := []models.CompanyBlog{
		{
			CompanyID: profile.ID,
			Title:     "Choosing the right H2S scavenger for sour service",
			Slug:      "choosing-the-right-h2s-scavenger",
			Author:    "Veltra Technical Team",
			Content: "<p>Hydrogen sulfide management is one of the defining challenges of sour " +
				"production. This article compares triazine-based scavengers with oxidizing " +
				"and metal-based alternatives across cost, safety and disposal criteria.</p>",
		},
		{
			CompanyID: profile.ID,
			Title:     "Hydrotropes in modern detergent formulation",
			Slug:      "hydrotropes-in-detergent-formulation",
			Author:    "Veltra Technical Team",
			Content: "<p>Sodium cumene sulphonate keeps high-active liquid detergents clear and " +
				"stable at low temperatures. We walk through usage levels and compatibility.</p>",
		},
	}
	for _, blog := range blogs {
		var existing models.CompanyBlog
		if err := models.DB.Where("slug = ?", blog.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&blog).Error; err != nil {
				stdLog.Printf("Failed to create blog %s: %v", blog.Slug, err)
			} else {
				stdLog.Printf("Created blog: %s", blog.Slug)
			}
		} else {
			stdLog.Printf("Blog already exists: %s", blog.Slug)
		}
	}

	var triazine models.Product
	if err := models.DB.Where("slug = ?", "mea-triazine-78").First(&triazine).Error; err == nil {
		productBlog := models.ProductBlog{
			ProductID: triazine.ID,
			Title:     "Field dosing guidelines for MEA Triazine 78%",
			Slug:      "field-dosing-guidelines-mea-triazine",
			Author:    "Veltra Technical Team",
			Content: "<p>Correct dosing balances scavenging capacity against spent-fluid " +
				"handling. These field guidelines cover tower sizing, injection rates and " +
				"monitoring practice for the concentrated 78% grade.</p>",
		}
		var existing models.ProductBlog
		if err := models.DB.Where("slug = ?", productBlog.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&productBlog).Error; err != nil {
				stdLog.Printf("Failed to create product blog %s: %v", productBlog.Slug, err)
			} else {
				stdLog.Printf("Created product blog: %s", productBlog.Slug)
			}
		} else {
			stdLog.Printf("Product blog already exists: %s", productBlog.Slug)
		}
	}

	stdLog.Printf("Seed completed")
}
