package models

import (
	"encoding/json"
	"strings"
	"time"
)

// FormType discriminates the lead forms of the website
type FormType string

const (
	FormTypeContact      FormType = "contact"
	FormTypeScheduleTest FormType = "schedule-test"
)

// Valid reports whether f is a known form type
func (f FormType) Valid() bool {
	return f == FormTypeContact || f == FormTypeScheduleTest
}

// User types and test plans offered on the forms
const (
	UserTypeDoctor  = "doctor"
	UserTypePatient = "patient"

	PlanOneTime    = "one-time"
	PlanNinetyDays = "90-days"
)

// Submission is one persisted form event. It is never updated after insert.
type Submission struct {
	ID             int64     `json:"id" db:"id"`
	FormType       FormType  `json:"form_type" db:"form_type"`
	UserType       *string   `json:"user_type" db:"user_type"`
	FullName       string    `json:"full_name" db:"full_name"`
	EmailAddress   string    `json:"email_address" db:"email_address"`
	PhoneNumber    string    `json:"phone_number" db:"phone_number"`
	Gender         *string   `json:"gender" db:"gender"`
	Address        *string   `json:"address" db:"address"`
	City           *string   `json:"city" db:"city"`
	State          *string   `json:"state" db:"state"`
	Pincode        *string   `json:"pincode" db:"pincode"`
	MapLocation    *string   `json:"map_location" db:"map_location"`
	Message        *string   `json:"message" db:"message"`
	SelectedPlan   *string   `json:"selected_plan" db:"selected_plan"`
	ScheduledDate  *string   `json:"scheduled_date" db:"scheduled_date"`
	ScheduledTime  *string   `json:"scheduled_time" db:"scheduled_time"`
	AgreeToContact bool      `json:"agree_to_contact" db:"agree_to_contact"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ContactRequest is the JSON payload posted by the contact and schedule-test forms.
// Field order is the order validation problems are reported in.
type ContactRequest struct {
	FullName       string `json:"fullName" validate:"required"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	EmailAddress   string `json:"emailAddress" validate:"required"`
	AgreeToContact bool   `json:"agreeToContact" validate:"required"`
	FormType       string `json:"formType" validate:"oneof=contact schedule-test"`
	UserType       string `json:"userType" validate:"omitempty,oneof=doctor patient"`
	Gender         string `json:"gender"`
	City           string `json:"city"`
	State          string `json:"state"`
	Pincode        string `json:"pincode"`
	Address        string `json:"address"`
	MapLocation    string `json:"mapLocation"`
	Message        string `json:"message"`
	SelectedPlan   string `json:"selectedPlan" validate:"omitempty,oneof=one-time 90-days"`
	ScheduleDate   string `json:"scheduleDate" validate:"omitempty,datetime=2006-01-02"`
	ScheduleTime   string `json:"scheduleTime" validate:"omitempty,schedule_slot"`
}

// UnmarshalJSON decodes the form payload leniently. A field sent with the
// wrong JSON type is left empty so validation reports it like a missing one.
// The form type is read from formType, or form_type when formType is absent.
func (r *ContactRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = ContactRequest{}
	for key, dst := range r.textFields() {
		decodeLoose(raw[key], dst)
	}
	if r.FormType == "" {
		decodeLoose(raw["form_type"], &r.FormType)
	}
	decodeLoose(raw["agreeToContact"], &r.AgreeToContact)
	return nil
}

func (r *ContactRequest) textFields() map[string]*string {
	return map[string]*string{
		"fullName":     &r.FullName,
		"phoneNumber":  &r.PhoneNumber,
		"emailAddress": &r.EmailAddress,
		"formType":     &r.FormType,
		"userType":     &r.UserType,
		"gender":       &r.Gender,
		"city":         &r.City,
		"state":        &r.State,
		"pincode":      &r.Pincode,
		"address":      &r.Address,
		"mapLocation":  &r.MapLocation,
		"message":      &r.Message,
		"selectedPlan": &r.SelectedPlan,
		"scheduleDate": &r.ScheduleDate,
		"scheduleTime": &r.ScheduleTime,
	}
}

// decodeLoose leaves dst untouched when value is absent or of another type
func decodeLoose(value json.RawMessage, dst interface{}) {
	if len(value) == 0 {
		return
	}
	_ = json.Unmarshal(value, dst)
}

// Normalize trims every text field and defaults the form type to contact
func (r *ContactRequest) Normalize() {
	for _, f := range []*string{
		&r.FullName, &r.PhoneNumber, &r.EmailAddress, &r.FormType, &r.UserType,
		&r.Gender, &r.City, &r.State, &r.Pincode, &r.Address, &r.MapLocation,
		&r.Message, &r.SelectedPlan, &r.ScheduleDate, &r.ScheduleTime,
	} {
		*f = strings.TrimSpace(*f)
	}
	if r.FormType == "" {
		r.FormType = string(FormTypeContact)
	}
}

// ToSubmission maps a normalized request to a new, unsaved submission
func (r *ContactRequest) ToSubmission() *Submission {
	return &Submission{
		FormType:       FormType(r.FormType),
		UserType:       optional(r.UserType),
		FullName:       r.FullName,
		EmailAddress:   r.EmailAddress,
		PhoneNumber:    r.PhoneNumber,
		Gender:         optional(r.Gender),
		Address:        optional(r.Address),
		City:           optional(r.City),
		State:          optional(r.State),
		Pincode:        optional(r.Pincode),
		MapLocation:    optional(r.MapLocation),
		Message:        optional(r.Message),
		SelectedPlan:   optional(r.SelectedPlan),
		ScheduledDate:  optional(r.ScheduleDate),
		ScheduledTime:  optional(r.ScheduleTime),
		AgreeToContact: r.AgreeToContact,
	}
}

// SubmissionQuery filters the admin submission listing
type SubmissionQuery struct {
	FormType FormType
	Limit    int
	Offset   int
}

// SubmissionList is the admin listing response body
type SubmissionList struct {
	Data []*Submission `json:"data"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Value dereferences an optional field, returning "" when unset
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
