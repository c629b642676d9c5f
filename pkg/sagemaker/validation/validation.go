// Package validation evaluates the length and pattern constraints recorded in
// the validate tags of shapes and envelopes. Validation is opt-in; enum fields
// are never checked so values unknown to this client still go through.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
)

var patterns = map[string]*regexp.Regexp{
	"sm_name":         regexp.MustCompile(`^[a-zA-Z0-9](-*[a-zA-Z0-9])*$`),
	"sm_arn":          regexp.MustCompile(`^arn:aws[a-z\-]*:sagemaker:[a-z0-9\-]*:[0-9]{12}:.+$`),
	"sm_image_arn":    regexp.MustCompile(`^arn:aws(-[\w]+)*:sagemaker:.+:[0-9]{12}:image/[a-z0-9]([-.]?[a-z0-9])*$`),
	"sm_role_arn":     regexp.MustCompile(`^arn:aws[a-z\-]*:iam::\d{12}:role/?[a-zA-Z_0-9+=,.@\-_/]+$`),
	"sm_s3_uri":       regexp.MustCompile(`^(https|s3)://([^/]+)/?(.*)$`),
	"sm_resource_id":  regexp.MustCompile(`^[-0-9a-zA-Z]+$`),
	"sm_channel_name": regexp.MustCompile(`^[A-Za-z0-9\.\-_]+$`),
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, re := range patterns {
		if err := v.RegisterValidation(tag, matches(re)); err != nil {
			panic(fmt.Sprintf("failed to register validation %s: %s", tag, err.Error()))
		}
	}

	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Validate checks the constraints of a shape or envelope and all shapes nested
// within it. Failures wrap errors.ErrInvalidRequest and name every offending
// field.
func Validate(shape any) error {
	err := validate.Struct(shape)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %s", smerrors.ErrInvalidRequest, err.Error())
	}

	msgs := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", smerrors.ErrInvalidRequest, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.SplitN(fe.Namespace(), ".", 2)
	name := field[len(field)-1]

	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must have a minimum length or value of %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have a maximum length or value of %s", name, fe.Param())
	}

	if _, ok := patterns[fe.Tag()]; ok {
		return fmt.Sprintf("%s does not match the pattern %s", name, patterns[fe.Tag()].String())
	}

	return fmt.Sprintf("%s failed the %s constraint", name, fe.Tag())
}
