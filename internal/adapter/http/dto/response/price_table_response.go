package response

import (
	"granite_estimator/internal/domain/entities"
	"time"
)

type PriceTableResponse struct {
	Schema   string                   `json:"schema"`
	LoadedAt time.Time                `json:"loaded_at"`
	Count    int                      `json:"count"`
	Items    []entities.PriceListItem `json:"items"`
	Warnings []string                 `json:"warnings,omitempty"`
}

func FromPriceList(p *entities.PriceList) PriceTableResponse {
	if p == nil {
		return PriceTableResponse{Items: []entities.PriceListItem{}}
	}
	return PriceTableResponse{
		Schema:   string(p.Schema),
		LoadedAt: p.LoadedAt,
		Count:    p.Len(),
		Items:    p.Items,
		Warnings: p.Warnings,
	}
}

type ChatResponse struct {
	Response string `json:"response"`
}
