package dto

import (
	"beauteefool/internal/domains/catalog/model"

	"github.com/shopspring/decimal"
)

type ServiceResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"category_label"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Duration      int             `json:"duration"`
	DurationLabel string          `json:"duration_label"`
	Image         string          `json:"image"`
	Popular       bool            `json:"popular"`
}

func (r *ServiceResponse) FromModel(service model.Service) {
	r.ID = service.ID
	r.Name = service.Name
	r.Category = string(service.Category)
	r.CategoryLabel = service.Category.Label()
	r.Description = service.Description
	r.Price = service.Price
	r.Duration = service.Duration
	r.DurationLabel = model.FormatDuration(service.Duration)
	r.Image = service.Image
	r.Popular = service.Popular
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(services []model.Service) {
	r.TotalData = len(services)

	r.Services = make([]ServiceResponse, len(services))
	for i, service := range services {
		r.Services[i].FromModel(service)
	}
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type TotalsResponse struct {
	Price         decimal.Decimal `json:"price"`
	Duration      int             `json:"duration"`
	DurationLabel string          `json:"duration_label"`
}

func (r *TotalsResponse) FromModel(totals model.Totals) {
	r.Price = totals.Price
	r.Duration = totals.Duration
	r.DurationLabel = model.FormatDuration(totals.Duration)
}
