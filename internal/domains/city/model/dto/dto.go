package dto

import "nomad/internal/domains/city/model"

type CityResponse struct {
	ID   int    `json:"id"`
	City string `json:"city"`
}

func (r *CityResponse) FromModel(model model.City) {
	r.ID = model.ID
	r.City = model.City
}

type GetCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}

func (r *GetCitiesResponse) FromModels(models []model.City) {
	r.Cities = make([]CityResponse, len(models))
	for i, mod := range models {
		r.Cities[i].FromModel(mod)
	}
}
