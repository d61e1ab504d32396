package intent

// Classifier assigns an Intent to a user message and picks matching quick replies.
type Classifier interface {
	Classify(message, role string, hints map[string]any) Intent
	QuickReplies(message, role string, in Intent) []string
}

// RuleClassifier is a deterministic keyword classifier over immutable Tables.
type RuleClassifier struct {
	tables *Tables
}

var _ Classifier = (*RuleClassifier)(nil)

// New creates a RuleClassifier. tables must come from one of the Load functions.
func New(tables *Tables) *RuleClassifier {
	return &RuleClassifier{tables: tables}
}
