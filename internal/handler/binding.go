package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// horaPattern admits only zero-padded HH:MM:SS strings. Stored times are
// compared lexicographically, so an unpadded hour like "8:00:00" must never
// reach the services.
var horaPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)

// init registers the "hora" payload validator used by time-of-day fields.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hora", func(fl validator.FieldLevel) bool {
			return horaPattern.MatchString(fl.Field().String())
		})
	}
}
