package maintenance_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	hotelDto "hotel/internal/domains/hotel/model/dto"
	hotelMocks "hotel/internal/domains/hotel/service/mocks"
	"hotel/internal/domains/maintenance/model/dto"
	maintenanceMocks "hotel/internal/domains/maintenance/service/mocks"
	"hotel/internal/handlers/maintenance"
	"hotel/shared/failure"
	"hotel/transport/console/terminal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var companies = []dto.CompanyResponse{
	{CompanyID: 3, Name: "FixIt", Address: "1 Main St", IsCertified: true},
	{CompanyID: 4, Name: "Handy", Address: "2 Side St"},
}

func TestHandler_PlaceRepairRequest(t *testing.T) {
	req := dto.RepairRequest{CompanyID: 3, HotelID: 1, RoomNumber: 101}

	tests := []struct {
		name       string
		companies  []dto.CompanyResponse
		input      string
		mockSetup  func(mockService *maintenanceMocks.MockMaintenance)
		wantErr    error
		wantOutput string
	}{
		{
			name:      "placed",
			companies: companies,
			input:     "1\n101\n3\n",
			mockSetup: func(mockService *maintenanceMocks.MockMaintenance) {
				mockService.EXPECT().PlaceRepairRequest(gomock.Any(), req).Return(dto.RepairResponse{
					RequestNumber: 8,
					RepairID:      8,
					RepairDate:    time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
				}, nil)
			},
			wantOutput: "Repair request 8 placed for 06/03/2024.",
		},
		{
			name:      "duplicate",
			companies: companies,
			input:     "1\n101\n3\n",
			mockSetup: func(mockService *maintenanceMocks.MockMaintenance) {
				mockService.EXPECT().PlaceRepairRequest(gomock.Any(), req).Return(dto.RepairResponse{}, failure.DuplicateRepair)
			},
			wantErr: failure.DuplicateRepair,
		},
		{
			name:       "no companies",
			companies:  []dto.CompanyResponse{},
			input:      "1\n101\n",
			mockSetup:  func(_ *maintenanceMocks.MockMaintenance) {},
			wantOutput: "No maintenance companies are registered.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := maintenanceMocks.NewMockMaintenance(ctrl)
			mockHotels := hotelMocks.NewMockHotel(ctrl)

			handler := maintenance.New(mockService, mockHotels, mocks.NewOtel())

			mockHotels.EXPECT().HotelsManagedBy(gomock.Any()).Return([]hotelDto.HotelResponse{{HotelID: 1, Name: "Origin Inn"}}, nil)
			mockService.EXPECT().Companies(gomock.Any()).Return(tt.companies, nil)
			tt.mockSetup(mockService)

			var out bytes.Buffer
			err := handler.PlaceRepairRequest(context.Background(), terminal.New(strings.NewReader(tt.input), &out))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.wantOutput)
		})
	}
}

func TestHandler_RepairHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := maintenanceMocks.NewMockMaintenance(ctrl)

	handler := maintenance.New(mockService, hotelMocks.NewMockHotel(ctrl), mocks.NewOtel())

	mockService.EXPECT().RepairHistory(gomock.Any()).Return([]dto.RepairHistoryResponse{
		{RequestNumber: 8, CompanyName: "FixIt", HotelID: 1, RoomNumber: 101, RepairDate: time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)},
	}, nil)

	var out bytes.Buffer
	err := handler.RepairHistory(context.Background(), terminal.New(strings.NewReader(""), &out))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "FixIt")
	assert.Contains(t, out.String(), "06/03/2024")
}
