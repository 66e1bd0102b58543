package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/kioracare/kiora-backend/internal/pkg/validation"
	leadmocks "github.com/kioracare/kiora-backend/services/leads/mocks"
	leadUsecase "github.com/kioracare/kiora-backend/services/leads/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySubmissionRepo keeps submissions in insertion order
type memorySubmissionRepo struct {
	mu   sync.Mutex
	rows []*models.Submission
}

func (r *memorySubmissionRepo) Create(_ context.Context, sub *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *sub
	stored.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, &stored)
	sub.ID = stored.ID
	return nil
}

func (r *memorySubmissionRepo) List(_ context.Context, query models.SubmissionQuery) ([]*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*models.Submission
	for _, row := range r.rows {
		if row.FormType == query.FormType {
			copied := *row
			matched = append(matched, &copied)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	if query.Offset >= len(matched) {
		return []*models.Submission{}, nil
	}
	matched = matched[query.Offset:]
	if len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

func (r *memorySubmissionRepo) GetByID(_ context.Context, id int64) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, models.ErrSubmissionNotFound
}

func TestSubmitThenList_ReturnsSameFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &memorySubmissionRepo{}
	mockLeadGW := leadmocks.NewMockLeadGW(ctrl)
	mockLeadGW.EXPECT().SendNotification(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(nil)

	cfg := testConfig()
	cfg.Intake.ScheduleSlots = []string{"09:00-11:00"}
	leadUC := leadUsecase.NewLeadUC(repo, mockLeadGW, validation.New(cfg.Intake), cfg)
	adminUC, err := NewAdminUC(nil, repo, cfg)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = leadUC.Submit(ctx, &models.ContactRequest{
		FullName:       "Ravi Kumar",
		PhoneNumber:    "9123456780",
		EmailAddress:   "ravi@example.com",
		AgreeToContact: true,
		FormType:       "contact",
		UserType:       "doctor",
		City:           "Mumbai",
	})
	require.NoError(t, err)

	booked, err := leadUC.Submit(ctx, &models.ContactRequest{
		FullName:       " Asha Rao ",
		PhoneNumber:    "9876543210",
		EmailAddress:   "asha@example.com",
		AgreeToContact: true,
		FormType:       "schedule-test",
		Gender:         "female",
		Address:        "12 MG Road",
		City:           "Pune",
		State:          "Maharashtra",
		Pincode:        "411001",
		MapLocation:    "https://maps.example.com/?q=18.52,73.85",
		Message:        "Morning preferred",
		SelectedPlan:   "90-days",
		ScheduleDate:   "2030-01-15",
		ScheduleTime:   "09:00-11:00",
	})
	require.NoError(t, err)
	require.NotNil(t, booked)

	list, err := adminUC.ListSubmissions(ctx, models.SubmissionQuery{FormType: models.FormTypeScheduleTest})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)

	got := list.Data[0]
	assert.Equal(t, booked.ID, got.ID)
	assert.Equal(t, models.FormTypeScheduleTest, got.FormType)
	assert.Equal(t, "Asha Rao", got.FullName)
	assert.Equal(t, "9876543210", got.PhoneNumber)
	assert.Equal(t, "asha@example.com", got.EmailAddress)
	assert.Nil(t, got.UserType)
	assert.Equal(t, "female", models.Value(got.Gender))
	assert.Equal(t, "12 MG Road", models.Value(got.Address))
	assert.Equal(t, "Pune", models.Value(got.City))
	assert.Equal(t, "Maharashtra", models.Value(got.State))
	assert.Equal(t, "411001", models.Value(got.Pincode))
	assert.Equal(t, "https://maps.example.com/?q=18.52,73.85", models.Value(got.MapLocation))
	assert.Equal(t, "Morning preferred", models.Value(got.Message))
	assert.Equal(t, "90-days", models.Value(got.SelectedPlan))
	assert.Equal(t, "2030-01-15", models.Value(got.ScheduledDate))
	assert.Equal(t, "09:00-11:00", models.Value(got.ScheduledTime))
	assert.True(t, got.AgreeToContact)
	assert.Equal(t, booked.CreatedAt, got.CreatedAt)

	contacts, err := adminUC.ListSubmissions(ctx, models.SubmissionQuery{FormType: models.FormTypeContact})
	require.NoError(t, err)
	require.Len(t, contacts.Data, 1)
	assert.Equal(t, "Ravi Kumar", contacts.Data[0].FullName)
	assert.Equal(t, "doctor", models.Value(contacts.Data[0].UserType))
}
