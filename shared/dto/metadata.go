package dto

import (
	"beauteefool/shared/constant"
	"beauteefool/shared/model"
	"beauteefool/shared/timezone"
)

// Metadata is the audit trail rendered on bookings and gallery images. The
// modified pair is only present once the record changed after creation.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	m.CreatedAt = timezone.Format(source.CreatedAt, constant.DateFormat)
	m.CreatedBy = source.CreatedBy

	if source.ModifiedAt.After(source.CreatedAt) {
		m.ModifiedAt = timezone.Format(source.ModifiedAt, constant.DateFormat)
		m.ModifiedBy = source.ModifiedBy
	}
}
