package handlers

import "github.com/go-playground/validator/v10"

// Shared request validator, driven by the validate tags on the DTOs.
var validate = validator.New()
