package products

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/matzehuels/tempo/pkg/cache"
	"github.com/matzehuels/tempo/pkg/integrations"
)

// DefaultURL is the deals endpoint used when no feed URL is configured.
const DefaultURL = "https://api.target.com/mobile_case_study_deals/v1/deals"

// Price is the regular price of a product.
type Price struct {
	AmountInCents  int    `json:"amount_in_cents"`
	CurrencySymbol string `json:"currency_symbol"`
	DisplayString  string `json:"display_string"`
}

// Product is one entry of the deals feed.
type Product struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	RegularPrice Price  `json:"regular_price"`
}

// List is the decoded deals feed.
type List struct {
	Products []Product `json:"products"`
}

// Client fetches the deals feed.
type Client struct {
	*integrations.Client
}

// NewClient returns a client caching feed responses in backend for ttl.
// A nil backend disables caching.
func NewClient(backend cache.Cache, ttl time.Duration) *Client {
	return &Client{Client: integrations.NewClient(backend, "products", ttl, map[string]string{
		"Accept": "application/json",
	})}
}

// FetchList downloads the feed at url. If refresh is true the cache is
// bypassed.
func (c *Client) FetchList(ctx context.Context, url string, refresh bool) (*List, error) {
	if err := integrations.ValidateFeedURL(url); err != nil {
		return nil, fmt.Errorf("feed %q: %w", url, err)
	}
	var list List
	err := c.Cached(ctx, url, refresh, &list, func() error {
		return c.Get(ctx, url, &list)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return &list, nil
}

// LoadFile reads a feed document from a local file.
func LoadFile(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", integrations.ErrInvalidData, path, err)
	}
	return &list, nil
}
