package models

type Catalog struct {
	Categories []Category `json:"categories"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Products    []Product `json:"products"`
}

// Product is a catalog entry flattened together with its category.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	Features     []string `json:"features"`
	CategoryID   string   `json:"categoryId,omitempty"`
	CategoryName string   `json:"categoryName,omitempty"`
	CategoryIcon string   `json:"categoryIcon,omitempty"`
}
