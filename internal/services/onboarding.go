package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hirecharm/onboarding-backend/internal/logger"
	"github.com/hirecharm/onboarding-backend/internal/repos"
	"github.com/hirecharm/onboarding-backend/internal/types"
)

var (
	ErrMissingClientIdentity = errors.New("either client_id or company_name is required")
	ErrSubmissionNotFound    = errors.New("submission not found")
)

type OnboardingService interface {
	// Submit persists the full form inside one transaction: client resolution,
	// the parent row, then the ordered children. All rows or none.
	Submit(ctx context.Context, req *types.SubmissionRequest) (uuid.UUID, error)
	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*types.SubmissionDetail, error)
}

type onboardingService struct {
	db             *gorm.DB
	log            *logger.Logger
	clientRepo     repos.ClientRepo
	submissionRepo repos.SubmissionRepo
	segmentRepo    repos.SegmentRepo
	personaRepo    repos.PersonaRepo
}

func NewOnboardingService(
	db *gorm.DB,
	log *logger.Logger,
	clientRepo repos.ClientRepo,
	submissionRepo repos.SubmissionRepo,
	segmentRepo repos.SegmentRepo,
	personaRepo repos.PersonaRepo,
) OnboardingService {
	serviceLog := log.With("service", "OnboardingService")
	return &onboardingService{
		db:             db,
		log:            serviceLog,
		clientRepo:     clientRepo,
		submissionRepo: submissionRepo,
		segmentRepo:    segmentRepo,
		personaRepo:    personaRepo,
	}
}

func (obs *onboardingService) Submit(ctx context.Context, req *types.SubmissionRequest) (uuid.UUID, error) {
	submissionID := uuid.New()
	now := time.Now().UTC()

	if err := obs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		clientID, err := obs.resolveClient(ctx, tx, req, now)
		if err != nil {
			return err
		}

		submission, err := buildSubmissionRow(submissionID, clientID, req, now)
		if err != nil {
			return err
		}
		if err := obs.submissionRepo.Create(ctx, tx, submission); err != nil {
			return err
		}

		if err := obs.segmentRepo.Create(ctx, tx, buildSegmentRows(submissionID, req.Segments, now)); err != nil {
			return err
		}
		if err := obs.personaRepo.Create(ctx, tx, buildPersonaRows(submissionID, req.Personas, now)); err != nil {
			return err
		}
		return nil
	}); err != nil {
		return uuid.Nil, err
	}

	obs.log.Info("Onboarding submission saved", "submission_id", submissionID)
	return submissionID, nil
}

// resolveClient implements the lookup-or-create rule: an explicit client_id is
// used verbatim with no existence check; otherwise the company name is matched
// exactly against existing clients and a new row inserted on miss.
func (obs *onboardingService) resolveClient(ctx context.Context, tx *gorm.DB, req *types.SubmissionRequest, now time.Time) (uuid.UUID, error) {
	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid client_id %q: %w", req.ClientID, err)
		}
		return clientID, nil
	}

	companyName := ""
	if req.CompanyName != nil {
		companyName = *req.CompanyName
	}
	if companyName == "" {
		return uuid.Nil, ErrMissingClientIdentity
	}

	existing, err := obs.clientRepo.GetByName(ctx, tx, companyName)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	client := &types.Client{
		ID:        uuid.New(),
		Name:      companyName,
		CreatedAt: now,
	}
	if err := obs.clientRepo.Create(ctx, tx, client); err != nil {
		return uuid.Nil, err
	}
	obs.log.Info("Created new client", "name", companyName, "client_id", client.ID)
	return client.ID, nil
}

func (obs *onboardingService) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*types.SubmissionDetail, error) {
	submission, err := obs.submissionRepo.GetByID(ctx, nil, submissionID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}

	segments, err := obs.segmentRepo.ListBySubmissionID(ctx, nil, submissionID)
	if err != nil {
		return nil, err
	}
	personas, err := obs.personaRepo.ListBySubmissionID(ctx, nil, submissionID)
	if err != nil {
		return nil, err
	}

	return &types.SubmissionDetail{
		OnboardingSubmission: *submission,
		Segments:             segments,
		Personas:             personas,
	}, nil
}

// buildSubmissionRow maps the payload onto the parent row: version pinned to 1,
// status pinned to "submitted", array fields never null, nested objects
// serialized only when non-empty.
func buildSubmissionRow(submissionID, clientID uuid.UUID, req *types.SubmissionRequest, now time.Time) (*types.OnboardingSubmission, error) {
	signalDetails, err := marshalNonEmpty(req.SignalDetails, len(req.SignalDetails) > 0)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize signal_details: %w", err)
	}
	caseStudies, err := marshalNonEmpty(req.CaseStudies, len(req.CaseStudies) > 0)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize case_studies: %w", err)
	}

	return &types.OnboardingSubmission{
		ID:                submissionID,
		ClientID:          clientID,
		SubmissionVersion: 1,

		CompanyName:   req.CompanyName,
		Website:       req.Website,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		EmployeeCount: req.EmployeeCount,
		FundingStage:  req.FundingStage,
		HQLocation:    req.HQLocation,

		CoreProduct:      req.CoreProduct,
		TargetCustomer:   req.TargetCustomer,
		AnnualRevenue:    req.AnnualRevenue,
		ACV:              req.ACV,
		SalesCycleLength: req.SalesCycleLength,
		SelfServePct:     types.NormalizeSelfServePct(req.SelfServePct),

		Signals:       textArray(req.Signals),
		SignalDetails: signalDetails,
		CustomSignals: textArray(req.CustomSignals),

		JobTitles: textArray(req.JobTitles),

		OutboundTools:      textArray(req.OutboundTools),
		OutboundToolsOther: req.OutboundToolsOther,
		CRM:                req.CRM,
		LeadSources:        textArray(req.LeadSources),
		OtherChannels:      textArray(req.OtherChannels),

		CustomerVoice:          req.CustomerVoice,
		ROIResults:             req.ROIResults,
		CaseStudiesDescription: req.CaseStudiesDescription,
		CaseStudies:            caseStudies,
		ToneStyle:              req.ToneStyle,
		MessagingNotes:         req.MessagingNotes,
		KeyDifferentiators:     textArray(req.KeyDifferentiators),
		Competitors:            textArray(req.Competitors),

		PrimaryGTMObjective:      req.PrimaryGTMObjective,
		PrimaryGTMObjectiveOther: req.PrimaryGTMObjectiveOther,
		SuccessMetrics:           textArray(req.SuccessMetrics),
		SuccessDefinition:        req.SuccessDefinition,
		TimelineUrgency:          req.TimelineUrgency,
		MonthlyBudget:            req.MonthlyBudget,

		SubmissionStatus: types.SubmissionStatusSubmitted,
		SubmittedAt:      now,
		CreatedAt:        now,
	}, nil
}

// buildSegmentRows drops entries with no name under either alias. The order
// index is the position in the input array, taken before the skip check, so
// indices after a skipped entry stay non-contiguous.
func buildSegmentRows(submissionID uuid.UUID, segments []types.SegmentInput, now time.Time) []*types.ClientSegment {
	rows := []*types.ClientSegment{}
	for idx, seg := range segments {
		name := seg.ResolvedName()
		if name == "" {
			continue
		}
		rows = append(rows, &types.ClientSegment{
			ID:                    uuid.New(),
			SubmissionID:          submissionID,
			SegmentOrder:          idx,
			SegmentName:           name,
			RevenuePercentage:     seg.ResolvedRevenuePct(),
			UniqueCharacteristics: seg.UniqueCharacteristics,
			PainPoints:            seg.PainPoints,
			BuyingTriggers:        seg.BuyingTriggers,
			CreatedAt:             now,
		})
	}
	return rows
}

// buildPersonaRows drops entries without a job title, keeping original
// positions as the order index.
func buildPersonaRows(submissionID uuid.UUID, personas []types.PersonaInput, now time.Time) []*types.ClientPersona {
	rows := []*types.ClientPersona{}
	for idx, persona := range personas {
		if persona.JobTitle == "" {
			continue
		}
		rows = append(rows, &types.ClientPersona{
			ID:               uuid.New(),
			SubmissionID:     submissionID,
			PersonaOrder:     idx,
			JobTitle:         persona.JobTitle,
			PrimarySegment:   persona.PrimarySegment,
			SeniorityLevel:   persona.SeniorityLevel,
			PainBeforeBuying: persona.PainBeforeBuying,
			AhaMoment:        persona.AhaMoment,
			Objections:       persona.Objections,
			DecisionCriteria: persona.DecisionCriteria,
			CreatedAt:        now,
		})
	}
	return rows
}

func textArray(in []string) pq.StringArray {
	if in == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(in)
}

func marshalNonEmpty(v any, nonEmpty bool) (datatypes.JSON, error) {
	if !nonEmpty {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
