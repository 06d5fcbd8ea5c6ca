package model

import (
	"slices"
	"time"

	customerModel "beauteefool/internal/domains/customer/model"
)

const EntityName = "draft"

type Step int

const (
	StepServices Step = iota + 1
	StepSchedule
	StepCustomer
	StepReview
)

func (s Step) Valid() bool {
	return s >= StepServices && s <= StepReview
}

// BookingDraft is an in-progress booking. Totals are never stored on it.
type BookingDraft struct {
	ID                 string                      `json:"id"`
	SelectedServiceIDs []string                    `json:"selected_service_ids"`
	SelectedDate       string                      `json:"selected_date,omitempty"`
	SelectedTime       string                      `json:"selected_time,omitempty"`
	CustomerInfo       *customerModel.CustomerInfo `json:"customer_info,omitempty"`
	CurrentStep        Step                        `json:"current_step"`
	CompletedSteps     []Step                      `json:"completed_steps"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

func New(id string, now time.Time) BookingDraft {
	return BookingDraft{
		ID:                 id,
		SelectedServiceIDs: []string{},
		CurrentStep:        StepServices,
		CompletedSteps:     []Step{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Toggle removes serviceID when it is selected and appends it otherwise.
// It reports whether the service is selected afterwards.
func (d *BookingDraft) Toggle(serviceID string) bool {
	if idx := slices.Index(d.SelectedServiceIDs, serviceID); idx >= 0 {
		d.SelectedServiceIDs = slices.Delete(d.SelectedServiceIDs, idx, idx+1)

		return false
	}

	d.SelectedServiceIDs = append(d.SelectedServiceIDs, serviceID)

	return true
}

func (d *BookingDraft) IsCompleted(step Step) bool {
	return slices.Contains(d.CompletedSteps, step)
}

func (d *BookingDraft) Complete(step Step) {
	if d.IsCompleted(step) {
		return
	}

	d.CompletedSteps = append(d.CompletedSteps, step)
	slices.Sort(d.CompletedSteps)
}

// Advance completes the current step and moves forward, stopping at the review step.
func (d *BookingDraft) Advance() {
	d.Complete(d.CurrentStep)

	if d.CurrentStep < StepReview {
		d.CurrentStep++
	}
}

func (d *BookingDraft) Retreat() {
	if d.CurrentStep > StepServices {
		d.CurrentStep--
	}
}

// CanGoTo allows jumping to a completed step or any step before the current one.
func (d *BookingDraft) CanGoTo(step Step) bool {
	return step.Valid() && (d.IsCompleted(step) || step < d.CurrentStep)
}
