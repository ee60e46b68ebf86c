package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/storefront/internal/model"
)

// listResponse mirrors the body returned by the catalog endpoint
type listResponse struct {
	Items *[]wireItem `json:"items"`
}

type wireItem struct {
	ID           flexibleID  `json:"id"`
	Name         *string     `json:"name"`
	Photos       []wirePhoto `json:"photos"`
	CurrentPrice []wirePrice `json:"current_price"`
}

type wirePhoto struct {
	URL string `json:"url"`
}

type wirePrice struct {
	USD *flexiblePrice `json:"USD"`
}

// flexibleID accepts both JSON strings and numbers
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", data)
	}
	*id = flexibleID(n.String())
	return nil
}

// flexiblePrice accepts a number or an array whose first element is a number
type flexiblePrice float64

func (p *flexiblePrice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = flexiblePrice(f)
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil || len(list) == 0 {
		return fmt.Errorf("USD price must be a number, got %s", data)
	}
	first := bytes.TrimSpace(list[0])
	if bytes.Equal(first, []byte("null")) {
		return fmt.Errorf("USD price must be a number, got %s", first)
	}
	if err := json.Unmarshal(first, &f); err != nil {
		return fmt.Errorf("USD price must be a number, got %s", list[0])
	}
	*p = flexiblePrice(f)
	return nil
}

// decodeItems converts a response body into domain items
func decodeItems(body []byte) ([]model.Item, error) {
	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.Items == nil {
		return nil, ErrMissingItems
	}

	items := make([]model.Item, 0, len(*resp.Items))
	for i, w := range *resp.Items {
		item, err := w.toItem()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (w wireItem) toItem() (model.Item, error) {
	id := strings.TrimSpace(string(w.ID))
	if id == "" {
		return model.Item{}, errors.New(`missing "id"`)
	}
	if w.Name == nil {
		return model.Item{}, fmt.Errorf(`item %s: missing "name"`, id)
	}
	if len(w.CurrentPrice) == 0 || w.CurrentPrice[0].USD == nil {
		return model.Item{}, fmt.Errorf(`item %s: missing "current_price[0].USD"`, id)
	}

	item := model.Item{
		ID:       id,
		Name:     *w.Name,
		PriceUSD: float64(*w.CurrentPrice[0].USD),
	}
	if len(w.Photos) > 0 {
		item.PhotoPath = w.Photos[0].URL
	}
	return item, nil
}
