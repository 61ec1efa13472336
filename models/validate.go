package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

func (r *ChargePointRecord) Validate() error {
	return validate.Struct(r)
}

func (s *ChargePointStatus) Validate() error {
	return validate.Struct(s)
}

func (a *Address) Validate() error {
	return validate.Struct(a)
}
