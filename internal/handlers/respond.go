package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Every response is the same envelope: {success, message?, data?, errors?}.

func respondData(c *gin.Context, code int, message string, data any) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// respondInternal hides the failure from the caller and logs it server-side.
func respondInternal(c *gin.Context, err error, message string) {
	logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	respondError(c, 500, message)
}

// FieldError is one failed validation check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondBinding converts a gin binding failure into a 400 with an errors
// array, one entry per failed field.
func respondBinding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: fieldMessage(fe),
			})
		}
		c.JSON(400, gin.H{"success": false, "errors": out})
		return
	}
	// Decode failures carry Go type/offset detail; never echo that back.
	logrus.WithError(err).Debug("request body rejected")
	respondError(c, 400, "Invalid request body")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
