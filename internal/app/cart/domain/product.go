package domain

// Category is the closed set of catalog groupings.
type Category string

const (
	CategoryWebsite Category = "website"
	CategoryApp     Category = "app"
)

// Product is an immutable catalog record. Products are defined at build
// time and never created or destroyed at runtime.
type Product struct {
	ID          string
	Title       string
	Description string
	Price       *Money
	Features    []string
	Category    Category
}
