package services

import "testing"

func TestClassify_GenerateIntent(t *testing.T) {
	classifier := NewIntentClassifier()

	tests := []struct {
		name    string
		message string
		days    int
	}{
		{name: "full request", message: "Create a 5-day itinerary for Virac", days: 5},
		{name: "terse", message: "3-day plan", days: 3},
		{name: "spaced day count", message: "plan a trip for 4 days", days: 4},
		{name: "singular day", message: "1 day itinerary please", days: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classifier.Classify(tc.message)
			if got.Kind != IntentGenerateItinerary {
				t.Fatalf("Classify(%q).Kind = %v, want generate", tc.message, got.Kind)
			}
			if got.Days != tc.days {
				t.Fatalf("Classify(%q).Days = %d, want %d", tc.message, got.Days, tc.days)
			}
		})
	}
}

func TestClassify_GeneralIntent(t *testing.T) {
	classifier := NewIntentClassifier()

	tests := []struct {
		name    string
		message string
		inquiry bool
	}{
		{name: "question about a place", message: "What is Binurong Point?", inquiry: true},
		{name: "where question", message: "Where can I surf?", inquiry: true},
		{name: "show me", message: "Show me the best beaches", inquiry: true},
		{name: "vague trip wish without days", message: "I want a trip", inquiry: false},
		{name: "action verb without itinerary vocab", message: "create something fun", inquiry: false},
		{name: "days without itinerary vocab", message: "I have 3 days here", inquiry: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classifier.Classify(tc.message)
			if got.Kind != IntentGeneralQuery {
				t.Fatalf("Classify(%q).Kind = %v, want general", tc.message, got.Kind)
			}
			if got.Inquiry != tc.inquiry {
				t.Fatalf("Classify(%q).Inquiry = %v, want %v", tc.message, got.Inquiry, tc.inquiry)
			}
		})
	}
}
