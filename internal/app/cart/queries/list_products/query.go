package list_products

import (
	"context"
	"sort"
	"strings"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
	"github.com/light-bringer/cart-service/internal/app/cart/domain"
	"github.com/light-bringer/cart-service/internal/catalog"
)

// Sort orders accepted by the filter.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// Query handles catalog browsing: category filter, price ceiling, title
// search, and price sorting.
type Query struct {
	catalog *catalog.Catalog
}

// NewQuery creates a new list products query.
func NewQuery(catalog *catalog.Catalog) *Query {
	return &Query{catalog: catalog}
}

// Execute returns the catalog entries matching the filter, in catalog
// order unless a price sort is requested.
func (q *Query) Execute(ctx context.Context, filter *contracts.ProductFilter) []contracts.ProductDTO {
	_ = ctx

	var products []domain.Product
	if filter.Category != "" {
		products = q.catalog.Products(domain.Category(filter.Category))
	} else {
		products = q.catalog.All()
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.MaxPriceCents > 0 && p.Price.Cents() > filter.MaxPriceCents {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		matched = append(matched, p)
	}

	switch filter.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(a, b int) bool {
			return matched[a].Price.LessThan(matched[b].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(matched, func(a, b int) bool {
			return matched[b].Price.LessThan(matched[a].Price)
		})
	}

	dtos := make([]contracts.ProductDTO, 0, len(matched))
	for _, p := range matched {
		dtos = append(dtos, contracts.ProductDTO{
			ProductID:   p.ID,
			Title:       p.Title,
			Description: p.Description,
			Category:    string(p.Category),
			Price:       p.Price.String(),
			Features:    append([]string(nil), p.Features...),
		})
	}
	return dtos
}
