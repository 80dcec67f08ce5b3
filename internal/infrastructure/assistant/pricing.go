package assistant

import (
	"fmt"
	"strings"
)

type pricingTier struct {
	Name        string
	Min, Max    int
	Description string
	Examples    []string
}

type extraFee struct {
	Name        string
	Fee         int
	Description string
}

var pricingTiers = []pricingTier{
	{"Minimum Load", 75, 125, "Small items or single items", []string{"Single furniture item", "Small appliance", "Box of smaller items"}},
	{"1/4 Truck Load", 125, 225, "About the size of a standard bathtub", []string{"Couch + small table", "Refrigerator + boxes", "Several bags and small items"}},
	{"1/2 Truck Load", 250, 375, "Roughly equivalent to a 5x5 storage unit", []string{"Apartment bedroom set", "Garage clean-up", "Small basement cleanout"}},
	{"Full Truck Load", 500, 600, "About the size of a standard one-car garage", []string{"Complete apartment cleanout", "Large basement or garage", "Multiple rooms of furniture"}},
}

var extraFees = []extraFee{
	{"Appliance Removal", 75, "Per large appliance (refrigerators, washers, dryers, etc.)"},
	{"Stairs Fee", 50, "For items that need to be carried up/down multiple flights of stairs"},
	{"Same-Day Service", 50, "For urgent removal needs with short notice"},
}

var systemPrompt = buildSystemPrompt()

func buildSystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are an expert in junk removal and hauling services. Analyze the customer's description and provide a detailed estimate based on the following pricing model:\n\nPricing Tiers:\n")
	for _, t := range pricingTiers {
		fmt.Fprintf(&b, "- %s ($%d - $%d)\n  Description: %s\n  Examples: %s\n", t.Name, t.Min, t.Max, t.Description, strings.Join(t.Examples, ", "))
	}
	b.WriteString("\nAdditional Fees:\n")
	for _, f := range extraFees {
		fmt.Fprintf(&b, "- %s: +$%d\n  %s\n", f.Name, f.Fee, f.Description)
	}
	b.WriteString(`
Analysis Instructions:
1. Determine the appropriate load size based on the description and examples.
2. Identify any additional fees that apply (appliances, stairs, urgency, special handling).
3. Start with the base price for the load size, add applicable fees and adjust for special circumstances.

Respond with a single JSON object:
{
  "description": "Detailed explanation of the estimate calculation",
  "estimatedAmount": number,
  "breakdown": {
    "loadSize": "Selected load size tier",
    "basePrice": number,
    "additionalFees": [{"name": "Fee name", "amount": number, "reason": "Why this fee applies"}],
    "total": number
  }
}`)
	return b.String()
}
