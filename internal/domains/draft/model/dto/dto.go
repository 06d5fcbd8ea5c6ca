package dto

import (
	catalogModel "beauteefool/internal/domains/catalog/model"
	catalogDto "beauteefool/internal/domains/catalog/model/dto"
	customerDto "beauteefool/internal/domains/customer/model/dto"
	"beauteefool/internal/domains/draft/model"
	"beauteefool/shared/constant"
	"beauteefool/shared/timezone"
)

type ScheduleRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,clock12"`
}

type DraftResponse struct {
	ID                 string                        `json:"id"`
	SelectedServiceIDs []string                      `json:"selected_service_ids"`
	SelectedServices   []catalogDto.ServiceResponse  `json:"selected_services"`
	SelectedDate       string                        `json:"selected_date,omitempty"`
	SelectedTime       string                        `json:"selected_time,omitempty"`
	EndTime            string                        `json:"end_time,omitempty"`
	CustomerInfo       *customerDto.CustomerResponse `json:"customer_info,omitempty"`
	Totals             catalogDto.TotalsResponse     `json:"totals"`
	CurrentStep        int                           `json:"current_step"`
	CompletedSteps     []int                         `json:"completed_steps"`
	UpdatedAt          string                        `json:"updated_at"`
}

// FromModel fills the response from the stored draft and the services resolved for it.
func (r *DraftResponse) FromModel(draft model.BookingDraft, services []catalogModel.Service, totals catalogModel.Totals, endTime string) {
	r.ID = draft.ID
	r.SelectedServiceIDs = append([]string{}, draft.SelectedServiceIDs...)
	r.SelectedDate = draft.SelectedDate
	r.SelectedTime = draft.SelectedTime
	r.EndTime = endTime
	r.CurrentStep = int(draft.CurrentStep)
	r.UpdatedAt = timezone.Format(draft.UpdatedAt, constant.DateFormat)

	r.SelectedServices = make([]catalogDto.ServiceResponse, len(services))
	for i, service := range services {
		r.SelectedServices[i].FromModel(service)
	}

	r.CompletedSteps = make([]int, len(draft.CompletedSteps))
	for i, step := range draft.CompletedSteps {
		r.CompletedSteps[i] = int(step)
	}

	if draft.CustomerInfo != nil {
		r.CustomerInfo = &customerDto.CustomerResponse{}
		r.CustomerInfo.FromModel(*draft.CustomerInfo)
	}

	r.Totals.FromModel(totals)
}
