package model

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"beauteefool/shared/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldDraftID            = "draft_id"
	FieldConfirmationNumber = "confirmation_number"
	FieldAppointmentDate    = "appointment_date"
	FieldCustomerEmail      = "customer_email"
	FieldStatus             = "status"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// CanBecome reports whether the salon may move a booking from s to next.
// Only pending bookings change; the terminal states are final.
func (s Status) CanBecome(next Status) bool {
	return s == StatusPending && (next == StatusConfirmed || next == StatusCancelled)
}

// ConfirmationNumber renders id as "<prefix>-<32 uppercase hex digits>".
func ConfirmationNumber(prefix string, id uuid.UUID) string {
	return prefix + "-" + strings.ToUpper(hex.EncodeToString(id[:]))
}

// ServiceLine is the frozen copy of a catalog service at confirmation time.
type ServiceLine struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Duration int             `json:"duration"`
}

// ServiceLines is stored as a jsonb column.
type ServiceLines []ServiceLine

func (l ServiceLines) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}

	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode service lines: %w", err)
	}

	return b, nil
}

func (l *ServiceLines) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*l = ServiceLines{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for service lines")
	}

	if err := json.Unmarshal(raw, l); err != nil {
		return fmt.Errorf("failed to decode service lines: %w", err)
	}

	return nil
}

type Booking struct {
	ID                 string          `db:"id"`
	DraftID            string          `db:"draft_id"`
	ConfirmationNumber string          `db:"confirmation_number"`
	ServiceIDs         pq.StringArray  `db:"service_ids"`
	Services           ServiceLines    `db:"services"`
	AppointmentDate    time.Time       `db:"appointment_date"`
	StartTime          string          `db:"start_time"`
	EndTime            string          `db:"end_time"`
	CustomerName       string          `db:"customer_name"`
	CustomerEmail      string          `db:"customer_email"`
	CustomerPhone      string          `db:"customer_phone"`
	SpecialRequests    string          `db:"special_requests"`
	TotalPrice         decimal.Decimal `db:"total_price"`
	TotalDuration      int             `db:"total_duration"`
	Status             Status          `db:"status"`
	model.Metadata
}

// BookingCreated is published once a booking is persisted.
type BookingCreated struct {
	ID                 string          `json:"id"`
	ConfirmationNumber string          `json:"confirmation_number"`
	ServiceIDs         []string        `json:"service_ids"`
	AppointmentDate    string          `json:"appointment_date"`
	StartTime          string          `json:"start_time"`
	EndTime            string          `json:"end_time"`
	CustomerEmail      string          `json:"customer_email"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	TotalDuration      int             `json:"total_duration"`
	CreatedAt          time.Time       `json:"created_at"`
}
