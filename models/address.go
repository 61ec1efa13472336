package models

// Address of a charging site. Country is an ISO 3166-1 alpha-3 code or the
// literal "unknown"; Language is the ISO 639-1 tag derived from the country
// and applies to the Country and City display values.
type Address struct {
	Country    string `json:"country" validate:"required"`
	City       string `json:"city" validate:"required,max=50"`
	Street     string `json:"street" validate:"required,max=100"`
	PostalCode string `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	HouseNum   string `json:"house_num,omitempty" validate:"omitempty,max=10"`
	Floor      string `json:"floor,omitempty" validate:"omitempty,max=5"`
	Region     string `json:"region,omitempty" validate:"omitempty,max=50"`
	TimeZone   string `json:"time_zone,omitempty" validate:"omitempty,max=50"`
	Language   string `json:"language,omitempty" validate:"omitempty,max=2"`
}
