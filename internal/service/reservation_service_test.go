package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "kainan/internal/errors"
	"kainan/internal/model"
)

func ptrInt(v int) *int       { return &v }
func ptrStr(v string) *string { return &v }

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func adoboUlam() *model.Ulam {
	return &model.Ulam{
		ID:            2,
		Name:          "Chicken Adobo",
		Stall:         1,
		UlamOnlyPrice: dec(50),
		WithRicePrice: dec(65),
	}
}

func anaUser() *model.User {
	return &model.User{ID: 1, FirstName: "Ana", LastName: "Cruz", Email: "ana@cvsu.edu.ph"}
}

func TestReservationService_Reserve(t *testing.T) {
	tests := []struct {
		name       string
		req        ReserveRequest
		setupMocks func(*MockUserRepository, *MockUlamRepository, *MockReservationRepository)
		wantErr    error
		wantValErr bool
		wantPrice  int64
	}{
		{
			name: "with rice resolves withRicePrice",
			req:  ReserveRequest{Stall: ptrInt(1), UlamID: ptrStr("2"), WithRice: true, UserEmail: "ana@cvsu.edu.ph"},
			setupMocks: func(users *MockUserRepository, ulams *MockUlamRepository, reservations *MockReservationRepository) {
				users.On("FindByEmail", mock.Anything, "ana@cvsu.edu.ph").Return(anaUser(), nil)
				ulams.On("FindByID", mock.Anything, "2").Return(adoboUlam(), nil)
				reservations.On("Create", mock.Anything, mock.AnythingOfType("*model.Reservation")).Return(nil)
			},
			wantPrice: 65,
		},
		{
			name: "without rice resolves ulamOnlyPrice",
			req:  ReserveRequest{Stall: ptrInt(1), UlamID: ptrStr("2"), WithRice: false, UserEmail: "ana@cvsu.edu.ph"},
			setupMocks: func(users *MockUserRepository, ulams *MockUlamRepository, reservations *MockReservationRepository) {
				users.On("FindByEmail", mock.Anything, "ana@cvsu.edu.ph").Return(anaUser(), nil)
				ulams.On("FindByID", mock.Anything, "2").Return(adoboUlam(), nil)
				reservations.On("Create", mock.Anything, mock.AnythingOfType("*model.Reservation")).Return(nil)
			},
			wantPrice: 50,
		},
		{
			name: "stall zero is present, not missing",
			req:  ReserveRequest{Stall: ptrInt(0), UlamID: ptrStr("2"), UserEmail: "ana@cvsu.edu.ph"},
			setupMocks: func(users *MockUserRepository, ulams *MockUlamRepository, reservations *MockReservationRepository) {
				users.On("FindByEmail", mock.Anything, "ana@cvsu.edu.ph").Return(anaUser(), nil)
				ulams.On("FindByID", mock.Anything, "2").Return(adoboUlam(), nil)
				reservations.On("Create", mock.Anything, mock.AnythingOfType("*model.Reservation")).Return(nil)
			},
			wantPrice: 50,
		},
		{
			name:       "missing stall",
			req:        ReserveRequest{UlamID: ptrStr("2"), UserEmail: "ana@cvsu.edu.ph"},
			setupMocks: func(*MockUserRepository, *MockUlamRepository, *MockReservationRepository) {},
			wantValErr: true,
		},
		{
			name:       "missing ulam id",
			req:        ReserveRequest{Stall: ptrInt(1), UserEmail: "ana@cvsu.edu.ph"},
			setupMocks: func(*MockUserRepository, *MockUlamRepository, *MockReservationRepository) {},
			wantValErr: true,
		},
		{
			name:       "missing user email",
			req:        ReserveRequest{Stall: ptrInt(1), UlamID: ptrStr("2")},
			setupMocks: func(*MockUserRepository, *MockUlamRepository, *MockReservationRepository) {},
			wantValErr: true,
		},
		{
			name: "unknown user is an auth failure",
			req:  ReserveRequest{Stall: ptrInt(1), UlamID: ptrStr("2"), UserEmail: "ghost@cvsu.edu.ph"},
			setupMocks: func(users *MockUserRepository, ulams *MockUlamRepository, reservations *MockReservationRepository) {
				users.On("FindByEmail", mock.Anything, "ghost@cvsu.edu.ph").Return(nil, apperrors.ErrUserNotFound)
			},
			wantErr: apperrors.ErrUnknownUser,
		},
		{
			name: "unknown ulam",
			req:  ReserveRequest{Stall: ptrInt(1), UlamID: ptrStr("99"), UserEmail: "ana@cvsu.edu.ph"},
			setupMocks: func(users *MockUserRepository, ulams *MockUlamRepository, reservations *MockReservationRepository) {
				users.On("FindByEmail", mock.Anything, "ana@cvsu.edu.ph").Return(anaUser(), nil)
				ulams.On("FindByID", mock.Anything, "99").Return(nil, apperrors.ErrUlamNotFound)
			},
			wantErr: apperrors.ErrUlamNotFound,
		},
		{
			name: "ulam without any price",
			req:  ReserveRequest{Stall: ptrInt(1), UlamID: ptrStr("3"), UserEmail: "ana@cvsu.edu.ph"},
			setupMocks: func(users *MockUserRepository, ulams *MockUlamRepository, reservations *MockReservationRepository) {
				users.On("FindByEmail", mock.Anything, "ana@cvsu.edu.ph").Return(anaUser(), nil)
				ulams.On("FindByID", mock.Anything, "3").Return(&model.Ulam{ID: 3, Name: "Mystery Meat"}, nil)
			},
			wantErr: apperrors.ErrNoPriceConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			ulams := new(MockUlamRepository)
			reservations := new(MockReservationRepository)
			tt.setupMocks(users, ulams, reservations)

			svc := NewReservationService(users, ulams, reservations)
			reservation, err := svc.Reserve(context.Background(), tt.req)

			switch {
			case tt.wantValErr:
				var ve *apperrors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Nil(t, reservation)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, reservation)
			default:
				require.NoError(t, err)
				require.NotNil(t, reservation)
				assert.True(t, reservation.Price.Equal(decimal.NewFromInt(tt.wantPrice)),
					"price %s, want %d", reservation.Price, tt.wantPrice)
				assert.Equal(t, *tt.req.Stall, reservation.Stall)
				assert.Equal(t, int64(2), reservation.UlamID)
				assert.Equal(t, "Chicken Adobo", reservation.UlamName)
				assert.Equal(t, "Ana Cruz", reservation.UserName)
				assert.Equal(t, tt.req.UserEmail, reservation.UserEmail)
				assert.NotZero(t, reservation.ID)
			}

			users.AssertExpectations(t)
			ulams.AssertExpectations(t)
			reservations.AssertExpectations(t)
		})
	}
}

func TestReservationService_History(t *testing.T) {
	reservations := new(MockReservationRepository)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	reservations.On("ListByEmail", mock.Anything, "ana@cvsu.edu.ph").Return([]model.Reservation{
		{ID: 2, CreatedAt: base.Add(time.Minute)},
		{ID: 1, CreatedAt: base},
	}, nil)

	svc := NewReservationService(new(MockUserRepository), new(MockUlamRepository), reservations)

	got, err := svc.History(context.Background(), "ana@cvsu.edu.ph")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)

	_, err = svc.History(context.Background(), "")
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
}
