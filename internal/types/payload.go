package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SegmentInput accepts either alias for the name and revenue fields. The
// primary key ("name", "revenue_pct") wins when both are present.
type SegmentInput struct {
	Name                  string  `json:"name"`
	SegmentName           string  `json:"segment_name"`
	RevenuePct            *int    `json:"revenue_pct"`
	RevenuePercentage     *int    `json:"revenue_percentage"`
	UniqueCharacteristics *string `json:"unique_characteristics"`
	PainPoints            *string `json:"pain_points"`
	BuyingTriggers        *string `json:"buying_triggers"`
}

// ResolvedName returns the segment name after alias fallback. Empty means the
// entry carries no name under either key and must be skipped.
func (s SegmentInput) ResolvedName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.SegmentName
}

func (s SegmentInput) ResolvedRevenuePct() *int {
	if s.RevenuePct != nil {
		return s.RevenuePct
	}
	return s.RevenuePercentage
}

type PersonaInput struct {
	JobTitle         string  `json:"job_title"`
	PrimarySegment   *string `json:"primary_segment"`
	SeniorityLevel   *string `json:"seniority_level"`
	PainBeforeBuying *string `json:"pain_before_buying"`
	AhaMoment        *string `json:"aha_moment"`
	Objections       *string `json:"objections"`
	DecisionCriteria *string `json:"decision_criteria"`
}

// SubmissionRequest is the full onboarding form payload. Unknown JSON fields
// are dropped during decoding and never persisted.
type SubmissionRequest struct {
	ClientID string `json:"client_id"`

	// Section 1: Foundation
	CompanyName   *string `json:"company_name"`
	Website       *string `json:"website"`
	ContactName   *string `json:"contact_name"`
	ContactEmail  *string `json:"contact_email"`
	EmployeeCount *string `json:"employee_count"`
	FundingStage  *string `json:"funding_stage"`
	HQLocation    *string `json:"hq_location"`

	// Section 2: Offering
	CoreProduct      *string `json:"core_product"`
	TargetCustomer   *string `json:"target_customer"`
	AnnualRevenue    *string `json:"annual_revenue"`
	ACV              *string `json:"acv"`
	SalesCycleLength *string `json:"sales_cycle_length"`
	// Forms send this as either a number or a string.
	SelfServePct any `json:"self_serve_pct"`

	// Section 3: Market Signals
	Signals       []string       `json:"signals"`
	SignalDetails map[string]any `json:"signal_details"`
	CustomSignals []string       `json:"custom_signals"`

	// Section 4: Audience
	Segments  []SegmentInput `json:"segments"`
	Personas  []PersonaInput `json:"personas"`
	JobTitles []string       `json:"job_titles"`

	// Section 5: Process
	OutboundTools      []string `json:"outbound_tools"`
	OutboundToolsOther *string  `json:"outbound_tools_other"`
	CRM                *string  `json:"crm"`
	LeadSources        []string `json:"lead_sources"`
	OtherChannels      []string `json:"other_channels"`

	// Section 6: Messaging
	CustomerVoice          *string          `json:"customer_voice"`
	ROIResults             *string          `json:"roi_results"`
	CaseStudiesDescription *string          `json:"case_studies_description"`
	CaseStudies            []map[string]any `json:"case_studies"`
	ToneStyle              *string          `json:"tone_style"`
	MessagingNotes         *string          `json:"messaging_notes"`
	KeyDifferentiators     []string         `json:"key_differentiators"`
	Competitors            []string         `json:"competitors"`

	// Section 7: Goals
	PrimaryGTMObjective      *string  `json:"primary_gtm_objective"`
	PrimaryGTMObjectiveOther *string  `json:"primary_gtm_objective_other"`
	SuccessMetrics           []string `json:"success_metrics"`
	SuccessDefinition        *string  `json:"success_definition"`
	TimelineUrgency          *string  `json:"timeline_urgency"`
	MonthlyBudget            *string  `json:"monthly_budget"`
}

type SubmissionResponse struct {
	Success      bool    `json:"success"`
	SubmissionID *string `json:"submission_id"`
	Message      *string `json:"message"`
}

// NormalizeSelfServePct coerces the number-or-string field to its stored text
// form: numbers become their decimal representation, strings pass through,
// absent stays nil.
func NormalizeSelfServePct(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return &t
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s
	case json.Number:
		s := t.String()
		return &s
	default:
		s := fmt.Sprint(t)
		return &s
	}
}
