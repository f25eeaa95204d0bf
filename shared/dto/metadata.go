package dto

import (
	"nomad/shared/constant"
	"nomad/shared/model"
	"nomad/shared/timezone"
)

// Metadata is the audit block embedded in every response, timestamps rendered in the app timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedAt string `json:"modified_at"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(src model.Metadata) {
	*m = Metadata{
		CreatedAt:  timezone.Format(src.CreatedAt, constant.DateFormat),
		CreatedBy:  src.CreatedBy,
		ModifiedAt: timezone.Format(src.ModifiedAt, constant.DateFormat),
		ModifiedBy: src.ModifiedBy,
	}
}
