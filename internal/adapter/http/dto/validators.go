package dto

import (
	"net/url"

	"webhook-gateway/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("topic_name", validateTopicName)
		_ = v.RegisterValidation("safe_url", validateSafeURL)
	}
}

// validateTopicName enforces the dotted lowercase topic format, e.g.
// "order.created".
func validateTopicName(fl validator.FieldLevel) bool {
	return domain.TopicNameRE.MatchString(fl.Field().String())
}

// validateSafeURL accepts only absolute http/https URLs.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
