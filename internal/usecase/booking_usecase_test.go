package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hauling_pros/internal/domain/entities"
	mock_interfaces "hauling_pros/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validSubmission() entities.BookingSubmission {
	return entities.BookingSubmission{
		Name:          " Dana ",
		Email:         "dana@example.com",
		Phone:         "555-0100",
		Address:       "1 Main St",
		ServiceType:   entities.ServiceTypeFurniturePickup,
		PreferredDate: time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC),
		PreferredTime: "morning",
		PaymentMethod: entities.PaymentMethodCash,
	}
}

func passthroughCustomers(repo *mock_interfaces.MockICustomerRepository) {
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
		func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
	)
}

func TestBookingUseCase_SubmitBooking(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		oversized := "data:image/jpeg;base64," + strings.Repeat("A", entities.MaxImagePayloadBytes)
		cases := map[string]func(s *entities.BookingSubmission){
			"missing name":     func(s *entities.BookingSubmission) { s.Name = "  " },
			"missing email":    func(s *entities.BookingSubmission) { s.Email = "" },
			"bad service":      func(s *entities.BookingSubmission) { s.ServiceType = "GARDENING" },
			"missing date":     func(s *entities.BookingSubmission) { s.PreferredDate = time.Time{} },
			"bad time":         func(s *entities.BookingSubmission) { s.PreferredTime = "midnight" },
			"bad payment":      func(s *entities.BookingSubmission) { s.PaymentMethod = "CHEQUE" },
			"missing phone":    func(s *entities.BookingSubmission) { s.Phone = "" },
			"missing street":   func(s *entities.BookingSubmission) { s.Address = "" },
			"bad image":        func(s *entities.BookingSubmission) { s.Images = []string{"https://cdn.example.com/a.png"} },
			"images too large": func(s *entities.BookingSubmission) { s.Images = []string{oversized} },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				uc := NewBookingUseCase(nil, nil, nil, nil, nil)
				sub := validSubmission()
				mutate(&sub)
				_, err := uc.SubmitBooking(context.Background(), sub)
				if !errors.Is(err, ErrInvalidBooking) {
					t.Fatalf("expected ErrInvalidBooking, got %v", err)
				}
			})
		}
	})

	t.Run("no description stays pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		assistant := mock_interfaces.NewMockIEstimateAssistant(ctrl)
		notifier := mock_interfaces.NewMockINotificationSender(ctrl)
		store := newMemoryEstimates()
		uc := NewBookingUseCase(customers, store, assistant, notifier, nil)

		passthroughCustomers(customers)

		receipt, err := uc.SubmitBooking(context.Background(), validSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.EstimateID == "" || receipt.CustomerID == "" || receipt.ConfirmationToken == "" {
			t.Fatalf("expected ids in receipt, got %+v", receipt)
		}
		if receipt.Message != bookingMessageReceived {
			t.Fatalf("unexpected message %q", receipt.Message)
		}

		got, _ := store.GetByID(context.Background(), receipt.EstimateID)
		if got.Status != entities.EstimateStatusPending || got.EstimatedAmount != nil {
			t.Fatalf("expected PENDING without amount, got %+v", got)
		}
		if got.Name != "Dana" || got.PreferredTime != "MORNING" || got.CustomerID != receipt.CustomerID {
			t.Fatalf("expected normalized snapshot, got %+v", got)
		}
		if !got.PreferredDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected date at midnight, got %s", got.PreferredDate)
		}
	})

	t.Run("assistant success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		assistant := mock_interfaces.NewMockIEstimateAssistant(ctrl)
		notifier := mock_interfaces.NewMockINotificationSender(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		store := newMemoryEstimates()
		uc := NewBookingUseCase(customers, store, assistant, notifier, events)

		passthroughCustomers(customers)
		assistant.EXPECT().Analyze(gomock.Any(), "FURNITURE_PICKUP: old couch and two chairs").Return(entities.AssistantEstimate{
			Analysis:        "Quarter truck",
			EstimatedAmount: 175,
			Breakdown:       entities.EstimateBreakdown{LoadSize: "1/4 Truck Load", BasePrice: 175, Total: 175},
		}, nil)
		notifier.EXPECT().SendAdminNewEstimate(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		events.EXPECT().Publish(gomock.Any())

		sub := validSubmission()
		sub.AdditionalInfo = " old couch and two chairs "
		receipt, err := uc.SubmitBooking(context.Background(), sub)
		if err != nil {
			t.Fatalf("admin notification failure must be soft, got %v", err)
		}
		if receipt.Message != bookingMessageAdminReview {
			t.Fatalf("unexpected message %q", receipt.Message)
		}

		got, _ := store.GetByID(context.Background(), receipt.EstimateID)
		if got.Status != entities.EstimateStatusPendingAdminReview {
			t.Fatalf("expected PENDING_ADMIN_REVIEW, got %s", got.Status)
		}
		if got.EstimatedAmount == nil || *got.EstimatedAmount != 175 {
			t.Fatalf("expected amount 175, got %v", got.EstimatedAmount)
		}
		if got.Analysis == nil || *got.Analysis != "Quarter truck" || got.Breakdown == nil {
			t.Fatalf("expected analysis and breakdown, got %+v", got)
		}
	})

	t.Run("assistant failure degrades", func(t *testing.T) {
		failures := map[string]func(a *mock_interfaces.MockIEstimateAssistant){
			"error": func(a *mock_interfaces.MockIEstimateAssistant) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(entities.AssistantEstimate{}, errors.New("timeout"))
			},
			"zero amount": func(a *mock_interfaces.MockIEstimateAssistant) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(entities.AssistantEstimate{Analysis: "hm"}, nil)
			},
			"empty analysis": func(a *mock_interfaces.MockIEstimateAssistant) {
				a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(entities.AssistantEstimate{EstimatedAmount: 80}, nil)
			},
		}
		for name, setup := range failures {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				customers := mock_interfaces.NewMockICustomerRepository(ctrl)
				assistant := mock_interfaces.NewMockIEstimateAssistant(ctrl)
				notifier := mock_interfaces.NewMockINotificationSender(ctrl)
				store := newMemoryEstimates()
				uc := NewBookingUseCase(customers, store, assistant, notifier, nil)

				passthroughCustomers(customers)
				setup(assistant)

				sub := validSubmission()
				sub.AdditionalInfo = "garage full of boxes"
				receipt, err := uc.SubmitBooking(context.Background(), sub)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if receipt.EstimateID == "" || receipt.Message != AssistantFallbackAnalysis {
					t.Fatalf("unexpected receipt %+v", receipt)
				}
				got, _ := store.GetByID(context.Background(), receipt.EstimateID)
				if got.Status != entities.EstimateStatusPendingAdminReview || got.EstimatedAmount != nil {
					t.Fatalf("expected review without amount, got %+v", got)
				}
				if got.Analysis == nil || *got.Analysis != AssistantFallbackAnalysis {
					t.Fatalf("expected fallback analysis, got %v", got.Analysis)
				}
			})
		}
	})

	t.Run("nil assistant degrades", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		store := newMemoryEstimates()
		uc := NewBookingUseCase(customers, store, nil, nil, nil)

		passthroughCustomers(customers)

		sub := validSubmission()
		sub.AdditionalInfo = "mattress"
		receipt, err := uc.SubmitBooking(context.Background(), sub)
		if err != nil || receipt.Message != AssistantFallbackAnalysis {
			t.Fatalf("unexpected receipt %+v err=%v", receipt, err)
		}
	})

	t.Run("customer store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewBookingUseCase(customers, nil, nil, nil, nil)

		customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("db"))

		_, err := uc.SubmitBooking(context.Background(), validSubmission())
		if !errors.Is(err, ErrBookingCreationFailed) {
			t.Fatalf("expected ErrBookingCreationFailed, got %v", err)
		}
	})

	t.Run("estimate store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewBookingUseCase(customers, estimates, nil, nil, nil)

		passthroughCustomers(customers)
		estimates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.SubmitBooking(context.Background(), validSubmission())
		if !errors.Is(err, ErrBookingCreationFailed) {
			t.Fatalf("expected ErrBookingCreationFailed, got %v", err)
		}
	})
}

func TestBookingUseCase_AnalyzeDescription(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, nil, nil)
		_, err := uc.AnalyzeDescription(context.Background(), " ")
		if !errors.Is(err, ErrInvalidDescription) {
			t.Fatalf("expected ErrInvalidDescription, got %v", err)
		}
	})

	t.Run("assistant error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mock_interfaces.NewMockIEstimateAssistant(ctrl)
		uc := NewBookingUseCase(nil, nil, assistant, nil, nil)

		assistant.EXPECT().Analyze(gomock.Any(), "a fridge").Return(entities.AssistantEstimate{}, errors.New("bad json"))

		_, err := uc.AnalyzeDescription(context.Background(), "a fridge")
		if !errors.Is(err, ErrAssistantUnavailable) {
			t.Fatalf("expected ErrAssistantUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mock_interfaces.NewMockIEstimateAssistant(ctrl)
		uc := NewBookingUseCase(nil, nil, assistant, nil, nil)

		assistant.EXPECT().Analyze(gomock.Any(), "a fridge").Return(entities.AssistantEstimate{Analysis: "min load + appliance", EstimatedAmount: 150}, nil)

		res, err := uc.AnalyzeDescription(context.Background(), "a fridge")
		if err != nil || res.EstimatedAmount != 150 {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})
}
