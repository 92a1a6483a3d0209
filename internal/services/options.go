package services

import (
	"redline-garage/pitwall/internal/maintenance"
	"redline-garage/pitwall/internal/models/dtos"
)

// ServiceOptions returns the category, title, brand and location choices
// offered when logging a service.
func ServiceOptions() dtos.OptionsResponse {
	categories := make([]dtos.CategoryOption, 0, len(maintenance.Categories))
	for _, c := range maintenance.Categories {
		opts := maintenance.Options[c]
		categories = append(categories, dtos.CategoryOption{
			Value:  string(c),
			Label:  opts.Label,
			Titles: append([]string(nil), opts.Titles...),
			Brands: append([]string(nil), opts.Brands...),
		})
	}

	return dtos.OptionsResponse{
		Categories: categories,
		Locations:  append([]string(nil), maintenance.ServiceLocations...),
	}
}
