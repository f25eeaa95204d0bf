package model

import "nomad/shared/model"

const (
	TableName  = "cities"
	EntityName = "city"

	FieldID   = "id"
	FieldCity = "city"
)

type City struct {
	ID   int    `db:"id"`
	City string `db:"city"`
	model.Metadata
}
