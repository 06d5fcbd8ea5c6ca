package dto

import (
	"net/http"

	"beauteefool/internal/domains/booking/model"
	catalogModel "beauteefool/internal/domains/catalog/model"
	catalogDto "beauteefool/internal/domains/catalog/model/dto"
	customerModel "beauteefool/internal/domains/customer/model"
	customerDto "beauteefool/internal/domains/customer/model/dto"
	"beauteefool/shared"
	"beauteefool/shared/constant"
	gDto "beauteefool/shared/dto"

	"github.com/shopspring/decimal"
)

type ServiceLineResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Duration      int             `json:"duration"`
	DurationLabel string          `json:"duration_label"`
}

type BookingResponse struct {
	ID                 string                       `json:"id"`
	ConfirmationNumber string                       `json:"confirmation_number"`
	Services           []ServiceLineResponse        `json:"services"`
	AppointmentDate    string                       `json:"appointment_date"`
	StartTime          string                       `json:"start_time"`
	EndTime            string                       `json:"end_time"`
	Customer           customerDto.CustomerResponse `json:"customer"`
	Totals             catalogDto.TotalsResponse    `json:"totals"`
	Status             string                       `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.ConfirmationNumber = booking.ConfirmationNumber
	r.AppointmentDate = booking.AppointmentDate.Format(constant.DayFormat)
	r.StartTime = booking.StartTime
	r.EndTime = booking.EndTime
	r.Status = string(booking.Status)

	r.Services = make([]ServiceLineResponse, len(booking.Services))
	for i, line := range booking.Services {
		r.Services[i] = ServiceLineResponse{
			ID:            line.ID,
			Name:          line.Name,
			Category:      line.Category,
			Price:         line.Price,
			Duration:      line.Duration,
			DurationLabel: catalogModel.FormatDuration(line.Duration),
		}
	}

	r.Customer.FromModel(customerModel.CustomerInfo{
		FullName:        booking.CustomerName,
		Email:           booking.CustomerEmail,
		Phone:           booking.CustomerPhone,
		SpecialRequests: booking.SpecialRequests,
	})
	r.Totals.FromModel(catalogModel.Totals{Price: booking.TotalPrice, Duration: booking.TotalDuration})
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

const (
	queryParamFrom = "from"
	queryParamTo   = "to"
)

type UpdateStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=confirmed cancelled"`
}

// FilterFromRequest builds the admin list filter from the status, appointment_date,
// from, to and customer_email query parameters. Empty parameters are ignored.
func FilterFromRequest(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	filterGroup := gDto.NewFilterGroup(gDto.FilterGroupOperatorAnd)

	filterGroup.AddIfPresent(gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldStatus),
		Table:    model.TableName,
	})
	filterGroup.AddIfPresent(gDto.Filter{
		Field:    model.FieldAppointmentDate,
		Operator: gDto.FilterOperatorEq,
		Value:    query.Get(model.FieldAppointmentDate),
		Table:    model.TableName,
	})
	filterGroup.AddIfPresent(gDto.Filter{
		ArgName:  queryParamFrom,
		Field:    model.FieldAppointmentDate,
		Operator: gDto.FilterOperatorGreaterEq,
		Value:    query.Get(queryParamFrom),
		Table:    model.TableName,
	})
	filterGroup.AddIfPresent(gDto.Filter{
		ArgName:  queryParamTo,
		Field:    model.FieldAppointmentDate,
		Operator: gDto.FilterOperatorLessEq,
		Value:    query.Get(queryParamTo),
		Table:    model.TableName,
	})
	filterGroup.AddIfPresent(gDto.Filter{
		Field:    model.FieldCustomerEmail,
		Operator: gDto.FilterOperatorLike,
		Value:    query.Get(model.FieldCustomerEmail),
		Table:    model.TableName,
	})

	return filterGroup
}
