package api

import (
	"errors"

	"butce/config"
	"butce/service"

	"github.com/gin-gonic/gin"
)

// SafeErrorMessage hides internal error detail from clients in release
// mode.
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// serviceError maps business errors to localized client responses.
// Anything unrecognized is treated as a persistence failure.
func serviceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		BadRequest(c, "Tutar sıfırdan büyük olmalı")
	case errors.Is(err, service.ErrInvalidFund):
		BadRequest(c, "Geçersiz fon seçimi")
	case errors.Is(err, service.ErrSameFund):
		BadRequest(c, "Kaynak ve hedef fon aynı olamaz")
	case errors.Is(err, service.ErrInsufficientFunds):
		BadRequest(c, "Yetersiz fon bakiyesi")
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, "Kayıt bulunamadı")
	default:
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}
