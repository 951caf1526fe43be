package upstream

import (
	"context"
	"net/http"
)

// CatalogItem 商品目录 API 中的一条商品
type CatalogItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

// CatalogClient fakestoreapi.com 客户端
type CatalogClient struct {
	url    string
	client *http.Client
}

func NewCatalogClient(url string, client *http.Client) *CatalogClient {
	return &CatalogClient{url: url, client: client}
}

// FetchProducts 返回上游顺序的全部商品
func (c *CatalogClient) FetchProducts(ctx context.Context) ([]CatalogItem, error) {
	var items []CatalogItem
	if err := getJSON(ctx, c.client, c.url, &items); err != nil {
		return nil, err
	}
	return items, nil
}
