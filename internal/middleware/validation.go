package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/pkg/validation"
)

var registerOnce sync.Once

// RegisterValidators installs the placement enum and password rules on gin's
// validator and makes it report JSON field names. Safe to call repeatedly.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)

		rules := map[string]func(string) bool{
			"branch":     func(s string) bool { return models.ParseBranch(s).Valid() },
			"jobtype":    func(s string) bool { return models.JobType(s).Valid() },
			"jobstatus":  func(s string) bool { return models.JobStatus(s).Valid() },
			"audience":   func(s string) bool { return models.Audience(s).Valid() },
			"password":   validation.IsStrongPassword,
			"personname": validation.IsValidName,
		}
		for tag, fn := range rules {
			fn := fn
			_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return fn(fl.Field().String())
			})
		}
	})
}

// fieldName prefers the json tag, then the form tag, then the Go name
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		RespondError(c, http.StatusUnprocessableEntity, dto.HandleValidationError(err))
		return
	}
	RespondError(c, http.StatusBadRequest, dto.HandleValidationError(err))
}

// BindJSON decodes and validates the body into obj. On failure it writes the
// error envelope (422 for rule violations, 400 for malformed input) and
// returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

// BindQuery is BindJSON for query strings
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}
