// Package validation checks lead payloads and reports every problem found,
// in form field order, as client-facing messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/kioracare/kiora-backend/internal/utils"
)

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// fieldOrder is the order messages are reported in
var fieldOrder = []string{
	"fullName", "phoneNumber", "emailAddress", "agreeToContact", "formType",
	"userType", "gender", "city", "state", "pincode", "address", "mapLocation",
	"message", "selectedPlan", "scheduleDate", "scheduleTime",
}

// Validator validates contact and schedule-test requests against the intake policy
type Validator struct {
	validate *validator.Validate
	policy   models.IntakeConfig
	now      func() time.Time
}

// Option customizes a Validator
type Option func(*Validator)

// WithClock overrides the clock used by the past-date rule
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New builds a Validator for the given intake policy
func New(policy models.IntakeConfig, opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(),
		policy:   policy,
		now:      models.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.validate.RegisterValidation("schedule_slot", v.scheduleSlot)
	_ = v.validate.RegisterValidation("in_mobile", inMobile)
	_ = v.validate.RegisterValidation("pincode", pincode)
	_ = v.validate.RegisterValidation("serviced_city", v.servicedCity)
	_ = v.validate.RegisterValidation("not_past", v.notPast)

	return v
}

// Strict reports whether India-specific format rules are enforced
func (v *Validator) Strict() bool {
	return v.policy.StrictValidation
}

// Validate returns nil when req is acceptable, otherwise a *models.ValidationError
// listing every violation. req must already be normalized.
func (v *Validator) Validate(req *models.ContactRequest) error {
	problems := make(map[string][]string)

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate request: %w", err)
		}
		for _, fe := range fieldErrs {
			problems[fe.Field()] = append(problems[fe.Field()], v.message(fe.Field(), fe.Tag(), fe.Param()))
		}
	}

	if v.policy.StrictValidation {
		for _, rule := range v.strictRules(req) {
			if rule.value == "" || len(problems[rule.field]) > 0 {
				continue
			}
			if err := v.validate.Var(rule.value, rule.tag); err != nil {
				problems[rule.field] = append(problems[rule.field], v.message(rule.field, rule.tag, ""))
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}

	details := make([]string, 0, len(problems))
	for _, field := range fieldOrder {
		details = append(details, problems[field]...)
	}
	return &models.ValidationError{Details: details}
}

type strictRule struct {
	field string
	value string
	tag   string
}

func (v *Validator) strictRules(req *models.ContactRequest) []strictRule {
	rules := []strictRule{
		{field: "phoneNumber", value: req.PhoneNumber, tag: "in_mobile"},
		{field: "emailAddress", value: req.EmailAddress, tag: "email"},
		{field: "pincode", value: req.Pincode, tag: "pincode"},
		{field: "scheduleDate", value: req.ScheduleDate, tag: "not_past"},
	}
	if len(v.policy.AllowedCities) > 0 {
		rules = append(rules, strictRule{field: "city", value: req.City, tag: "serviced_city"})
	}
	return rules
}

func (v *Validator) message(field, tag, param string) string {
	switch tag {
	case "required":
		if field == "agreeToContact" {
			return "agreeToContact must be true"
		}
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(param), ", "))
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "schedule_slot":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(v.policy.ScheduleSlots, ", "))
	case "in_mobile":
		return field + " must be a valid 10-digit mobile number"
	case "pincode":
		return field + " must be a 6-digit number"
	case "email":
		return field + " must be a valid email address"
	case "serviced_city":
		return field + " must be one of the serviced cities"
	case "not_past":
		return field + " must not be in the past"
	default:
		return field + " is invalid"
	}
}

func (v *Validator) scheduleSlot(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, slot := range v.policy.ScheduleSlots {
		if value == slot {
			return true
		}
	}
	return false
}

func (v *Validator) servicedCity(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, city := range v.policy.AllowedCities {
		if strings.EqualFold(value, city) {
			return true
		}
	}
	return false
}

// notPast accepts today and later. Unparseable dates are left to the datetime rule.
func (v *Validator) notPast(fl validator.FieldLevel) bool {
	date, err := models.ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	now := v.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !date.Before(today)
}

func inMobile(fl validator.FieldLevel) bool {
	return utils.ValidIndianMobile(fl.Field().String())
}

func pincode(fl validator.FieldLevel) bool {
	return pincodePattern.MatchString(fl.Field().String())
}
