package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mishasvintus/merge_request_service/internal/domain"
)

var registerOnce sync.Once

// RegisterValidations adds the branchname rule to gin's binding validator and
// makes it report json field names.
func RegisterValidations() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected binding validator engine")
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err = v.RegisterValidation("branchname", func(fl validator.FieldLevel) bool {
			return domain.ValidBranchName(fl.Field().String())
		})
	})
	return err
}

// bindError reports a binding failure, naming the field when validation failed.
func bindError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		ValidationFailed(c, fe.Field(), fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
		return
	}
	BadRequest(c, "invalid request body")
}
