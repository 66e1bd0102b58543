package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	leadmocks "github.com/kioracare/kiora-backend/services/leads/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSubmissions(t *testing.T) {
	testCases := []struct {
		name     string
		query    models.SubmissionQuery
		expected models.SubmissionQuery
	}{
		{
			name:     "defaults page size",
			query:    models.SubmissionQuery{FormType: models.FormTypeContact},
			expected: models.SubmissionQuery{FormType: models.FormTypeContact, Limit: 50},
		},
		{
			name:     "caps page size",
			query:    models.SubmissionQuery{FormType: models.FormTypeScheduleTest, Limit: 1000, Offset: -3},
			expected: models.SubmissionQuery{FormType: models.FormTypeScheduleTest, Limit: 200},
		},
		{
			name:     "keeps explicit paging",
			query:    models.SubmissionQuery{FormType: models.FormTypeContact, Limit: 10, Offset: 20},
			expected: models.SubmissionQuery{FormType: models.FormTypeContact, Limit: 10, Offset: 20},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSubmissionRepo := leadmocks.NewMockSubmissionRepo(ctrl)
			uc, err := NewAdminUC(nil, mockSubmissionRepo, testConfig())
			require.NoError(t, err)

			rows := []*models.Submission{{ID: 2}, {ID: 1}}
			mockSubmissionRepo.EXPECT().List(gomock.Any(), tc.expected).Return(rows, nil)

			list, err := uc.ListSubmissions(context.Background(), tc.query)

			require.NoError(t, err)
			assert.Equal(t, rows, list.Data)
		})
	}
}

func TestListSubmissions_PersistenceDisabled(t *testing.T) {
	uc, err := NewAdminUC(nil, nil, testConfig())
	require.NoError(t, err)

	_, err = uc.ListSubmissions(context.Background(), models.SubmissionQuery{FormType: models.FormTypeContact})
	assert.ErrorIs(t, err, models.ErrPersistenceDisabled)
}

func TestListSubmissions_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSubmissionRepo := leadmocks.NewMockSubmissionRepo(ctrl)
	uc, err := NewAdminUC(nil, mockSubmissionRepo, testConfig())
	require.NoError(t, err)

	mockSubmissionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err = uc.ListSubmissions(context.Background(), models.SubmissionQuery{FormType: models.FormTypeContact})
	assert.ErrorIs(t, err, models.ErrPersistence)
}
