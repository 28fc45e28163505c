package handlers

import (
	"errors"
	"sync"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/middleware"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the storefront's binding tags to gin's validator:
// rental_period (hourly, daily, monthly), workspace_type (seats,
// office_rooms, meeting_rooms) and the viewer_id header tag.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		if err := v.RegisterValidation("rental_period", func(fl validator.FieldLevel) bool {
			return domain.RentalPeriod(fl.Field().String()).Valid()
		}); err != nil {
			registerErr = err
			return
		}
		if err := v.RegisterValidation("workspace_type", func(fl validator.FieldLevel) bool {
			return domain.WorkspaceType(fl.Field().String()).Valid()
		}); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation(middleware.ViewerIDTag, middleware.IsViewerID)
	})
	return registerErr
}
