package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Jeffry-N/Beiruti-Fade/internal/audit"
	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/account"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
)

// MockAccountRepository is a mock implementation of the account repository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Insert(ctx context.Context, kind domain.Kind, acc domain.NewAccount) (uint, error) {
	args := m.Called(ctx, kind, acc)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, kind domain.Kind, id uint) (*domain.Profile, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockAccountRepository) ListBarbers(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockAccountRepository) ApplyUpdate(ctx context.Context, plan *domain.UpdatePlan) (int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) Authenticate(ctx context.Context, kind domain.Kind, username, password string) (*domain.Profile, error) {
	args := m.Called(ctx, kind, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name      string
		input     SignupInput
		setupMock func(*MockAccountRepository)
		wantID    uint
		wantCode  string
	}{
		{
			name: "successful customer signup",
			input: SignupInput{
				Kind:     domain.KindCustomer,
				FullName: "Jane Doe",
				Username: "jane",
				Email:    "j@x.com",
				Password: "p1",
			},
			setupMock: func(m *MockAccountRepository) {
				m.On("Insert", mock.Anything, domain.KindCustomer, domain.NewAccount{
					FullName: "Jane Doe",
					Username: "jane",
					Email:    "j@x.com",
					Password: "p1",
				}).Return(uint(5), nil)
			},
			wantID: 5,
		},
		{
			name: "missing required fields",
			input: SignupInput{
				Kind:     domain.KindCustomer,
				Username: "jane",
			},
			setupMock: func(m *MockAccountRepository) {},
			wantCode:  "missing_required_fields",
		},
		{
			name: "rejects malformed username",
			input: SignupInput{
				Kind:     domain.KindBarber,
				FullName: "Z",
				Username: "z z",
				Password: "p",
			},
			setupMock: func(m *MockAccountRepository) {},
			wantCode:  "invalid_username",
		},
		{
			name: "duplicate username surfaces as conflict",
			input: SignupInput{
				Kind:     domain.KindCustomer,
				FullName: "Jane Doe",
				Username: "jane",
				Password: "p1",
			},
			setupMock: func(m *MockAccountRepository) {
				m.On("Insert", mock.Anything, domain.KindCustomer, mock.Anything).
					Return(uint(0), httperr.ErrBusiness("username_taken"))
			},
			wantCode: "username_taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAccountRepository)
			tt.setupMock(mockRepo)

			uc := NewSignup(mockRepo, testDispatcher())
			id, err := uc.Execute(context.Background(), tt.input)

			if tt.wantCode != "" {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSignupThenLogin(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockRepo.On("Insert", mock.Anything, domain.KindCustomer, mock.Anything).Return(uint(9), nil)
	mockRepo.On("Authenticate", mock.Anything, domain.KindCustomer, "jane", "p1").
		Return(&domain.Profile{ID: 9, Kind: domain.KindCustomer, FullName: "Jane Doe"}, nil)

	signup := NewSignup(mockRepo, testDispatcher())
	id, err := signup.Execute(context.Background(), SignupInput{
		Kind:     domain.KindCustomer,
		FullName: "Jane Doe",
		Username: "jane",
		Email:    "j@x.com",
		Password: "p1",
	})
	assert.NoError(t, err)

	login := NewLogin(mockRepo)
	profile, err := login.Execute(context.Background(), domain.KindCustomer, "jane", "p1")
	assert.NoError(t, err)
	assert.Equal(t, id, profile.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockRepo.On("Authenticate", mock.Anything, domain.KindBarber, "jane", "wrong").
		Return(nil, httperr.ErrBusiness("invalid_credentials"))

	uc := NewLogin(mockRepo)
	profile, err := uc.Execute(context.Background(), domain.KindBarber, "jane", "wrong")

	assert.Nil(t, profile)
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestLogin_EmptyCredentialsSkipStore(t *testing.T) {
	mockRepo := new(MockAccountRepository)

	uc := NewLogin(mockRepo)
	_, err := uc.Execute(context.Background(), domain.KindCustomer, "", "")

	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
	mockRepo.AssertNotCalled(t, "Authenticate")
}

func TestUpdateProfile_NoFieldsNeverHitsRepository(t *testing.T) {
	mockRepo := new(MockAccountRepository)

	uc := NewUpdateProfile(mockRepo, testDispatcher())
	err := uc.Execute(context.Background(), domain.KindCustomer, 1, map[string]string{
		"fullName": "",
		"email":    "",
	})

	assert.True(t, httperr.IsBusiness(err, "no_fields_provided"))
	mockRepo.AssertNotCalled(t, "ApplyUpdate")
}

func TestUpdateProfile_NotFound(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockRepo.On("ApplyUpdate", mock.Anything, mock.Anything).Return(int64(0), nil)

	uc := NewUpdateProfile(mockRepo, testDispatcher())
	err := uc.Execute(context.Background(), domain.KindCustomer, 99, map[string]string{
		"email": "new@x.com",
	})

	assert.True(t, httperr.IsBusiness(err, "account_not_found"))
}

func TestUpdateProfile_BarberImageOnly(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockRepo.On("ApplyUpdate", mock.Anything, mock.MatchedBy(func(plan *domain.UpdatePlan) bool {
		return plan.SQL() == "UPDATE barbers SET image_url = ? WHERE id = ?" &&
			assert.ObjectsAreEqual(plan.Args(), []any{"http://x/y.png", uint(2)})
	})).Return(int64(1), nil)

	uc := NewUpdateProfile(mockRepo, testDispatcher())
	err := uc.Execute(context.Background(), domain.KindBarber, 2, map[string]string{
		"bio":          "",
		"profileImage": "http://x/y.png",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateProfile_RepeatedUpdateIsStable(t *testing.T) {
	payload := map[string]string{"email": "new@x.com", "fullName": "Jane D"}

	t.Run("existing row updates twice with the same statement", func(t *testing.T) {
		var plans []*domain.UpdatePlan
		mockRepo := new(MockAccountRepository)
		mockRepo.On("ApplyUpdate", mock.Anything, mock.MatchedBy(func(plan *domain.UpdatePlan) bool {
			plans = append(plans, plan)
			return true
		})).Return(int64(1), nil).Twice()

		uc := NewUpdateProfile(mockRepo, testDispatcher())
		assert.NoError(t, uc.Execute(context.Background(), domain.KindCustomer, 1, payload))
		assert.NoError(t, uc.Execute(context.Background(), domain.KindCustomer, 1, payload))

		assert.Len(t, plans, 2)
		assert.Equal(t, plans[0].SQL(), plans[1].SQL())
		assert.Equal(t, plans[0].Args(), plans[1].Args())
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing row reports not found on every attempt", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockRepo.On("ApplyUpdate", mock.Anything, mock.Anything).Return(int64(0), nil).Twice()

		uc := NewUpdateProfile(mockRepo, testDispatcher())
		err1 := uc.Execute(context.Background(), domain.KindCustomer, 99, payload)
		err2 := uc.Execute(context.Background(), domain.KindCustomer, 99, payload)

		assert.True(t, httperr.IsBusiness(err1, "account_not_found"))
		assert.True(t, httperr.IsBusiness(err2, "account_not_found"))
		mockRepo.AssertExpectations(t)
	})
}

func TestGetProfile_NotFound(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	mockRepo.On("FindByID", mock.Anything, domain.KindCustomer, uint(404)).
		Return(nil, httperr.ErrBusiness("account_not_found"))

	uc := NewGetProfile(mockRepo)
	profile, err := uc.Execute(context.Background(), domain.KindCustomer, 404)

	assert.Nil(t, profile)
	assert.True(t, httperr.IsBusiness(err, "account_not_found"))
}
