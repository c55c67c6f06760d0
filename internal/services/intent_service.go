package services

import (
	"regexp"
	"strconv"
	"strings"
)

type IntentKind int

const (
	IntentGeneralQuery IntentKind = iota
	IntentGenerateItinerary
)

// Intent is the result of classifying one chat message. Days is only set for
// IntentGenerateItinerary. Inquiry marks messages that open with a lookup
// phrase ("where is", "tell me more"), which makes a returned place eligible
// for a camera pan.
type Intent struct {
	Kind    IntentKind
	Days    int
	Inquiry bool
}

type IntentClassifierInterface interface {
	Classify(message string) Intent
}

type IntentClassifier struct{}

func NewIntentClassifier() IntentClassifierInterface {
	return &IntentClassifier{}
}

var (
	daysPattern      = regexp.MustCompile(`(?i)(\d+)\s*-?(?:days?|day)`)
	itineraryPattern = regexp.MustCompile(`(?i)itinerary|trip|plan|schedule`)
	actionPattern    = regexp.MustCompile(`(?i)create|generate|make|plan|build|prepare|design|suggest|want|need`)
	inquiryPattern   = regexp.MustCompile(`(?i)^(where|tell me more|show me|what is|where is|where can|can you show)`)
)

// Classify decides whether a message asks for itinerary generation or is a
// general question. This is a permissive keyword heuristic, not real intent
// detection: generation needs itinerary vocabulary plus an explicit day
// count, action verbs alone are never enough.
func (c *IntentClassifier) Classify(message string) Intent {
	hasItineraryKeyword := itineraryPattern.MatchString(message)
	hasActionKeyword := actionPattern.MatchString(message)
	daysMatch := daysPattern.FindStringSubmatch(message)

	generate := (hasItineraryKeyword && (hasActionKeyword || daysMatch != nil)) ||
		(hasItineraryKeyword && daysMatch != nil)

	if generate && daysMatch != nil {
		days, err := strconv.Atoi(daysMatch[1])
		if err == nil && days > 0 {
			return Intent{Kind: IntentGenerateItinerary, Days: days}
		}
	}

	return Intent{
		Kind:    IntentGeneralQuery,
		Inquiry: inquiryPattern.MatchString(strings.TrimSpace(message)),
	}
}
