package products

import (
	"strconv"

	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Kind is the component kind of product items.
const Kind = "product"

// Item is the view state of one product in the list.
type Item struct {
	ProductID   int
	Title       string
	Description string
	Price       string
	ImageURL    string
	Currency    string
}

func (it Item) ID() string   { return strconv.Itoa(it.ProductID) }
func (it Item) Kind() string { return Kind }

func (it Item) Equal(other viewstate.Item) bool {
	o, ok := other.(Item)
	return ok && o == it
}

// NewItem returns the list item for p.
func NewItem(p Product) Item {
	return Item{
		ProductID:   p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.RegularPrice.DisplayString,
		ImageURL:    p.ImageURL,
		Currency:    p.RegularPrice.CurrencySymbol,
	}
}

// ListState is the view state of the product list: one section per product.
type ListState struct {
	Items []viewstate.Item
}

// ViewState builds the list view state for l. A nil list is empty.
func ViewState(l *List) ListState {
	if l == nil {
		return ListState{}
	}
	items := make([]viewstate.Item, len(l.Products))
	for i, p := range l.Products {
		items[i] = NewItem(p)
	}
	return ListState{Items: items}
}

func (s ListState) Sections() []viewstate.Item { return s.Items }
