package usecase

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/kioracare/kiora-backend/internal/pkg/models"
)

//go:embed templates/notification.html
var templateFS embed.FS

var notificationTemplate = template.Must(template.ParseFS(templateFS, "templates/notification.html"))

const notProvided = "Not provided"

type notificationField struct {
	Label string
	Value string
}

type notificationView struct {
	Title          string
	Fields         []notificationField
	MessageLines   []string
	AgreeToContact bool
}

// RenderNotification builds the HTML email body for a submission. All user
// text is escaped by html/template.
func RenderNotification(sub *models.Submission) (string, error) {
	view := notificationView{
		Title:          "New Contact Form Submission",
		AgreeToContact: sub.AgreeToContact,
	}

	view.Fields = []notificationField{
		{"User Type", userTypeLabel(sub.UserType)},
		{"Full Name", sub.FullName},
		{"Phone Number", sub.PhoneNumber},
		{"Email Address", sub.EmailAddress},
	}

	if sub.FormType == models.FormTypeScheduleTest {
		view.Title = "New Test Booking Request"
		view.Fields = append(view.Fields,
			notificationField{"Gender", orNotProvided(sub.Gender)},
			notificationField{"Address", orNotProvided(sub.Address)},
			notificationField{"City", orNotProvided(sub.City)},
			notificationField{"State", orNotProvided(sub.State)},
			notificationField{"Pincode", orNotProvided(sub.Pincode)},
			notificationField{"Map Location", orNotProvided(sub.MapLocation)},
			notificationField{"Selected Plan", planLabel(sub.SelectedPlan)},
			notificationField{"Preferred Date", orNotProvided(sub.ScheduledDate)},
			notificationField{"Preferred Time", orNotProvided(sub.ScheduledTime)},
		)
	} else {
		view.Fields = append(view.Fields,
			notificationField{"City", orNotProvided(sub.City)},
			notificationField{"Pincode", orNotProvided(sub.Pincode)},
		)
	}

	if msg := models.Value(sub.Message); msg != "" {
		view.MessageLines = strings.Split(strings.ReplaceAll(msg, "\r\n", "\n"), "\n")
	}

	var buf bytes.Buffer
	if err := notificationTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render notification: %w", err)
	}
	return buf.String(), nil
}

func userTypeLabel(userType *string) string {
	switch models.Value(userType) {
	case models.UserTypeDoctor:
		return "Doctor"
	case models.UserTypePatient:
		return "Patient"
	default:
		return "Not specified"
	}
}

func planLabel(plan *string) string {
	switch models.Value(plan) {
	case models.PlanOneTime:
		return "One-time test"
	case models.PlanNinetyDays:
		return "90-day monitoring plan"
	default:
		return notProvided
	}
}

func orNotProvided(s *string) string {
	if v := models.Value(s); v != "" {
		return v
	}
	return notProvided
}
