package response

import (
	"encoding/json"
	"testing"
	"time"

	"hauling_pros/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	amount := 120.0
	e := entities.Estimate{
		ID:                "est-1",
		CustomerID:        "cust-1",
		ServiceType:       entities.ServiceTypeFurniturePickup,
		PreferredDate:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		PreferredTime:     "MORNING",
		Status:            entities.EstimateStatusEstimated,
		EstimatedAmount:   &amount,
		ConfirmationToken: "tok",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.CustomerID != "cust-1" || res.Status != "ESTIMATED" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.PreferredDate != "2024-06-10" {
		t.Fatalf("unexpected date %q", res.PreferredDate)
	}
	if res.Images == nil {
		t.Fatalf("expected empty images slice")
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	b, _ := json.Marshal(FromEstimate(entities.Estimate{ID: "x"}))
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if v, ok := body["estimatedAmount"]; !ok || v != nil {
		t.Fatalf("expected explicit null amount, got %s", b)
	}
}

func TestFromEstimatePublic(t *testing.T) {
	e := entities.Estimate{ID: "est-1", Email: "dana@example.com", Phone: "555", ConfirmationToken: "tok", Status: entities.EstimateStatusEstimateSent}
	b, _ := json.Marshal(FromEstimatePublic(e))
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	for _, hidden := range []string{"email", "phone", "confirmationToken", "customerId"} {
		if _, ok := body[hidden]; ok {
			t.Fatalf("public view leaked %q: %s", hidden, b)
		}
	}
	if body["status"] != "ESTIMATE_SENT" {
		t.Fatalf("unexpected body %s", b)
	}
}

func TestFromAppointmentEvents(t *testing.T) {
	loc := time.FixedZone("EDT", -4*3600)
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, loc)
	out := FromAppointmentEvents([]entities.AppointmentEvent{{ID: "a", Title: "JUNK_REMOVAL", Start: start, End: start.Add(time.Hour)}})
	if len(out) != 1 || out[0].Start != "2024-06-01T09:00:00-04:00" || out[0].End != "2024-06-01T10:00:00-04:00" {
		t.Fatalf("unexpected events %+v", out)
	}
	if got := FromAppointmentEvents(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice")
	}
}

func TestFromReceiptAndAnalysis(t *testing.T) {
	r := FromReceipt(entities.BookingReceipt{EstimateID: "e", CustomerID: "c", ConfirmationToken: "t", Message: "m"})
	if r.EstimateID != "e" || r.Message != "m" {
		t.Fatalf("unexpected receipt %+v", r)
	}
	a := FromAssistantEstimate(entities.AssistantEstimate{Analysis: "x", EstimatedAmount: 90, Breakdown: entities.EstimateBreakdown{LoadSize: "Minimum Load"}})
	if a.EstimatedAmount != 90 || a.Breakdown.LoadSize != "Minimum Load" {
		t.Fatalf("unexpected analysis %+v", a)
	}
}
