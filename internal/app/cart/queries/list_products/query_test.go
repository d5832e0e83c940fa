package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
	"github.com/light-bringer/cart-service/internal/catalog"
)

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	query := NewQuery(catalog.NewCatalog())

	t.Run("no filter returns the full catalog", func(t *testing.T) {
		products := query.Execute(ctx, &contracts.ProductFilter{})
		assert.Len(t, products, 8)
	})

	t.Run("category filter", func(t *testing.T) {
		products := query.Execute(ctx, &contracts.ProductFilter{Category: "app"})
		require.Len(t, products, 4)
		for _, p := range products {
			assert.Equal(t, "app", p.Category)
		}
	})

	t.Run("unknown category yields nothing", func(t *testing.T) {
		products := query.Execute(ctx, &contracts.ProductFilter{Category: "gadgets"})
		assert.Empty(t, products)
	})

	t.Run("price ceiling", func(t *testing.T) {
		products := query.Execute(ctx, &contracts.ProductFilter{MaxPriceCents: 1500 * 100})
		require.Len(t, products, 3)
		for _, p := range products {
			assert.Contains(t, []string{"Corporate Website", "Portfolio Website", "Blog Platform"}, p.Title)
		}
	})

	t.Run("title search is case-insensitive", func(t *testing.T) {
		products := query.Execute(ctx, &contracts.ProductFilter{Search: "e-COMMERCE"})
		require.Len(t, products, 2)
		assert.Equal(t, "E-commerce Website", products[0].Title)
		assert.Equal(t, "Mobile E-commerce App", products[1].Title)
	})

	t.Run("sort by price ascending", func(t *testing.T) {
		products := query.Execute(ctx, &contracts.ProductFilter{Sort: SortPriceAsc})
		require.Len(t, products, 8)
		assert.Equal(t, "Portfolio Website", products[0].Title)
		assert.Equal(t, "Mobile E-commerce App", products[7].Title)
	})

	t.Run("sort by price descending", func(t *testing.T) {
		products := query.Execute(ctx, &contracts.ProductFilter{Sort: SortPriceDesc})
		require.Len(t, products, 8)
		assert.Equal(t, "Mobile E-commerce App", products[0].Title)
		assert.Equal(t, "Portfolio Website", products[7].Title)
	})

	t.Run("filters compose", func(t *testing.T) {
		products := query.Execute(ctx, &contracts.ProductFilter{
			Category:      "website",
			MaxPriceCents: 2000 * 100,
			Search:        "website",
			Sort:          SortPriceAsc,
		})
		require.Len(t, products, 3)
		assert.Equal(t, "Portfolio Website", products[0].Title)
		assert.Equal(t, "E-commerce Website", products[2].Title)
	})
}
