package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type address struct {
	City string `json:"city" validate:"required"`
}

type listing struct {
	Title       string  `json:"title" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	EnergyClass string  `json:"energy_class" validate:"energyclass"`
	Location    address `json:"location"`
}

func TestValidate_OK(t *testing.T) {
	errs := Validate(listing{Title: "Studio", Price: 650, EnergyClass: "D", Location: address{City: "Montpellier"}})
	assert.Nil(t, errs)
}

func TestValidate_ReportsJSONPaths(t *testing.T) {
	errs := Validate(listing{Price: 0, EnergyClass: "H"})
	assert.Equal(t, map[string]string{
		"title":         "required",
		"price":         "gt",
		"energy_class":  "energyclass",
		"location.city": "required",
	}, errs)
}

func TestValidate_EmptyEnergyClassAllowed(t *testing.T) {
	errs := Validate(listing{Title: "Maison", Price: 1, Location: address{City: "Toulouse"}})
	assert.Nil(t, errs)
}
