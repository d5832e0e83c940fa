// Package catalog holds the static product catalog and the coupon
// table. Both are defined at build time; nothing here mutates at
// runtime.
package catalog

import (
	"github.com/light-bringer/cart-service/internal/app/cart/domain"
)

// Catalog is a read-only product lookup grouped by category.
type Catalog struct {
	products []domain.Product
}

// NewCatalog creates the catalog with the built-in product list.
//
// Prices are the canonical USD list; earlier revisions of the storefront
// carried conflicting per-page price variants, and this list is the one
// they converged on.
func NewCatalog() *Catalog {
	return &Catalog{products: builtinProducts()}
}

// Products returns the products of one category in catalog order. An
// unknown category yields an empty sequence.
func (c *Catalog) Products(category domain.Category) []domain.Product {
	matched := make([]domain.Product, 0)
	for _, p := range c.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// All returns every product in catalog order.
func (c *Catalog) All() []domain.Product {
	products := make([]domain.Product, len(c.products))
	copy(products, c.products)
	return products
}

// Find looks up a product by ID.
func (c *Catalog) Find(productID string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

func builtinProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "ecommerce-website",
			Title:       "E-commerce Website",
			Description: "Fully responsive online store with payment gateway",
			Price:       domain.NewMoneyFromUnits(1999),
			Features:    []string{"Product Catalog", "Shopping Cart", "Payment Processing", "Order Management"},
			Category:    domain.CategoryWebsite,
		},
		{
			ID:          "corporate-website",
			Title:       "Corporate Website",
			Description: "Professional business website with CMS",
			Price:       domain.NewMoneyFromUnits(1499),
			Features:    []string{"Responsive Design", "Content Management", "Contact Forms", "SEO Optimized"},
			Category:    domain.CategoryWebsite,
		},
		{
			ID:          "portfolio-website",
			Title:       "Portfolio Website",
			Description: "Elegant showcase for creative work",
			Price:       domain.NewMoneyFromUnits(899),
			Features:    []string{"Gallery Layouts", "Custom Animations", "Social Integration", "Contact Section"},
			Category:    domain.CategoryWebsite,
		},
		{
			ID:          "blog-platform",
			Title:       "Blog Platform",
			Description: "Content-focused website with authoring tools",
			Price:       domain.NewMoneyFromUnits(1299),
			Features:    []string{"User Management", "Comment System", "SEO Tools", "Analytics"},
			Category:    domain.CategoryWebsite,
		},
		{
			ID:          "mobile-ecommerce-app",
			Title:       "Mobile E-commerce App",
			Description: "Native iOS/Android shopping experience",
			Price:       domain.NewMoneyFromUnits(2999),
			Features:    []string{"Push Notifications", "Payment Integration", "User Profiles", "Product Search"},
			Category:    domain.CategoryApp,
		},
		{
			ID:          "fitness-tracking-app",
			Title:       "Fitness Tracking App",
			Description: "Activity monitoring with health integration",
			Price:       domain.NewMoneyFromUnits(2499),
			Features:    []string{"Workout Plans", "Progress Tracking", "Social Sharing", "Health API"},
			Category:    domain.CategoryApp,
		},
		{
			ID:          "restaurant-ordering-app",
			Title:       "Restaurant Ordering App",
			Description: "Food ordering and reservation system",
			Price:       domain.NewMoneyFromUnits(2199),
			Features:    []string{"Menu Management", "Table Booking", "Order Tracking", "Loyalty Program"},
			Category:    domain.CategoryApp,
		},
		{
			ID:          "task-management-app",
			Title:       "Task Management App",
			Description: "Productivity tool for teams",
			Price:       domain.NewMoneyFromUnits(1799),
			Features:    []string{"Project Boards", "Team Collaboration", "Calendar Sync", "Reporting"},
			Category:    domain.CategoryApp,
		},
	}
}
