package entities

// AssistantEstimate is the validated output of the estimate assistant.
type AssistantEstimate struct {
	Analysis        string            `json:"analysis"`
	EstimatedAmount float64           `json:"estimatedAmount"`
	Breakdown       EstimateBreakdown `json:"breakdown"`
}

// EstimateBreakdown explains how an amount was reached.
type EstimateBreakdown struct {
	LoadSize       string          `json:"loadSize"`
	BasePrice      float64         `json:"basePrice"`
	AdditionalFees []AdditionalFee `json:"additionalFees"`
	Total          float64         `json:"total"`
}

type AdditionalFee struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}
