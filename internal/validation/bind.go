package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// BindAndValidate binds the JSON body into `out` and runs validation.
// On failure it writes the service's standard 400 envelope and returns
// an error so the handler can short-circuit.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": firstValidationMessage(err),
		})
		return err
	}
	return nil
}

func firstValidationMessage(err error) string {
	if ve, ok := err.(validatorv10.ValidationErrors); ok && len(ve) > 0 {
		fe := ve[0]
		switch fe.Tag() {
		case "required":
			return "Missing required field: " + fe.Field()
		case "email":
			return "Invalid email address"
		}
		return "Invalid value for field: " + fe.Field()
	}
	return "Invalid request"
}
