package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const SubmissionStatusSubmitted = "submitted"

// OnboardingSubmission is one onboarding form instance. Rows are write-once:
// there is no update endpoint and submission_status never changes.
type OnboardingSubmission struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID          uuid.UUID `gorm:"type:uuid;not null;index;column:client_id" json:"client_id"`
	SubmissionVersion int       `gorm:"not null;default:1;column:submission_version" json:"submission_version"`

	// Section 1: Foundation
	CompanyName   *string `gorm:"column:company_name" json:"company_name"`
	Website       *string `gorm:"column:website" json:"website"`
	ContactName   *string `gorm:"column:contact_name" json:"contact_name"`
	ContactEmail  *string `gorm:"column:contact_email" json:"contact_email"`
	EmployeeCount *string `gorm:"column:employee_count" json:"employee_count"`
	FundingStage  *string `gorm:"column:funding_stage" json:"funding_stage"`
	HQLocation    *string `gorm:"column:hq_location" json:"hq_location"`

	// Section 2: Offering
	CoreProduct      *string `gorm:"column:core_product" json:"core_product"`
	TargetCustomer   *string `gorm:"column:target_customer" json:"target_customer"`
	AnnualRevenue    *string `gorm:"column:annual_revenue" json:"annual_revenue"`
	ACV              *string `gorm:"column:acv" json:"acv"`
	SalesCycleLength *string `gorm:"column:sales_cycle_length" json:"sales_cycle_length"`
	SelfServePct     *string `gorm:"column:self_serve_pct" json:"self_serve_pct"`

	// Section 3: Market Signals
	Signals       pq.StringArray `gorm:"type:text[];column:signals" json:"signals"`
	SignalDetails datatypes.JSON `gorm:"type:jsonb;column:signal_details" json:"signal_details"`
	CustomSignals pq.StringArray `gorm:"type:text[];column:custom_signals" json:"custom_signals"`

	// Section 4: Audience
	JobTitles pq.StringArray `gorm:"type:text[];column:job_titles" json:"job_titles"`

	// Section 5: Process
	OutboundTools      pq.StringArray `gorm:"type:text[];column:outbound_tools" json:"outbound_tools"`
	OutboundToolsOther *string        `gorm:"column:outbound_tools_other" json:"outbound_tools_other"`
	CRM                *string        `gorm:"column:crm" json:"crm"`
	LeadSources        pq.StringArray `gorm:"type:text[];column:lead_sources" json:"lead_sources"`
	OtherChannels      pq.StringArray `gorm:"type:text[];column:other_channels" json:"other_channels"`

	// Section 6: Messaging
	CustomerVoice          *string        `gorm:"column:customer_voice" json:"customer_voice"`
	ROIResults             *string        `gorm:"column:roi_results" json:"roi_results"`
	CaseStudiesDescription *string        `gorm:"column:case_studies_description" json:"case_studies_description"`
	CaseStudies            datatypes.JSON `gorm:"type:jsonb;column:case_studies" json:"case_studies"`
	ToneStyle              *string        `gorm:"column:tone_style" json:"tone_style"`
	MessagingNotes         *string        `gorm:"column:messaging_notes" json:"messaging_notes"`
	KeyDifferentiators     pq.StringArray `gorm:"type:text[];column:key_differentiators" json:"key_differentiators"`
	Competitors            pq.StringArray `gorm:"type:text[];column:competitors" json:"competitors"`

	// Section 7: Goals
	PrimaryGTMObjective      *string        `gorm:"column:primary_gtm_objective" json:"primary_gtm_objective"`
	PrimaryGTMObjectiveOther *string        `gorm:"column:primary_gtm_objective_other" json:"primary_gtm_objective_other"`
	SuccessMetrics           pq.StringArray `gorm:"type:text[];column:success_metrics" json:"success_metrics"`
	SuccessDefinition        *string        `gorm:"column:success_definition" json:"success_definition"`
	TimelineUrgency          *string        `gorm:"column:timeline_urgency" json:"timeline_urgency"`
	MonthlyBudget            *string        `gorm:"column:monthly_budget" json:"monthly_budget"`

	SubmissionStatus string    `gorm:"not null;default:'submitted';column:submission_status" json:"submission_status"`
	SubmittedAt      time.Time `gorm:"not null;column:submitted_at" json:"submitted_at"`
	CreatedAt        time.Time `gorm:"not null;default:now();column:created_at" json:"created_at"`
}

func (OnboardingSubmission) TableName() string {
	return "client_onboarding_submissions"
}

// SubmissionDetail is the read-back shape: the parent row merged with its
// ordered children.
type SubmissionDetail struct {
	OnboardingSubmission
	Segments []*ClientSegment `json:"segments"`
	Personas []*ClientPersona `json:"personas"`
}
