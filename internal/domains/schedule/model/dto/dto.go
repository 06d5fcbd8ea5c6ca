package dto

import (
	catalogDto "beauteefool/internal/domains/catalog/model/dto"
	"beauteefool/internal/domains/schedule/model"
)

type AvailabilityRequest struct {
	Date       string   `json:"date"     validate:"required,datetime=2006-01-02"`
	ServiceIDs []string `json:"services" validate:"omitempty,max=5,dive,required"`
	Duration   *int     `json:"duration" validate:"omitempty,gte=0"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date          string                    `json:"date"`
	Totals        catalogDto.TotalsResponse `json:"totals"`
	Slots         []SlotResponse            `json:"slots"`
	OpenSlotCount int                       `json:"open_slot_count"`
}

func (r *AvailabilityResponse) FromSlots(slots []model.TimeSlot, duration int) {
	r.Slots = make([]SlotResponse, len(slots))
	r.OpenSlotCount = 0

	for i, slot := range slots {
		r.Slots[i] = SlotResponse{
			Time:      slot.Time,
			EndTime:   slot.Start().Add(duration).Label(),
			Available: slot.Available,
		}

		if slot.Available {
			r.OpenSlotCount++
		}
	}
}
