package contract

// ConfidenceLevel is the tier reported to common-query arbitration.
type ConfidenceLevel string

const (
	ConfidenceExact    ConfidenceLevel = "exact"
	ConfidenceCategory ConfidenceLevel = "category"
	ConfidenceGeneral  ConfidenceLevel = "general"
)

// QueryMatch is what a skill offers to the arbitration layer.
type QueryMatch struct {
	Query  string          `json:"query"`
	Level  ConfidenceLevel `json:"level"`
	Answer string          `json:"answer"`
}

// LookupResult is the payload returned by the lookup tool.
type LookupResult struct {
	Query  string `json:"query"`
	Answer string `json:"answer,omitempty"`
	Found  bool   `json:"found"`
	Error  string `json:"error,omitempty"`
}
