package content

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pawarnirmal/portfolio/internal/domain"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	yearPattern = regexp.MustCompile(`^[0-9]{4}$`)
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("year", func(fl validator.FieldLevel) bool {
			return yearPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("link", func(fl validator.FieldLevel) bool {
			return IsLink(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// IsLink reports whether s is usable as a card or button target: an in-page anchor,
// a site-relative path, or an absolute http(s)/mailto URL.
func IsLink(s string) bool {
	if strings.HasPrefix(s, "#") || (strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//")) {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	}
	return false
}

// Validate checks required fields, link shapes, slug uniqueness and year format.
// The returned error wraps domain.ErrInvalidContent.
func (p *Portfolio) Validate() error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidContent, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Portfolio.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "unique":
		return field + " has duplicate entries"
	case "year":
		return fmt.Sprintf("%s must be a 4 digit year, got %q", field, fe.Value())
	case "link", "url":
		return fmt.Sprintf("%s is not a valid link: %q", field, fe.Value())
	case "slug":
		return fmt.Sprintf("%s is not a valid slug: %q", field, fe.Value())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
