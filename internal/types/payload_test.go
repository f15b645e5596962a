package types

import (
	"encoding/json"
	"testing"
)

func TestSegmentInput_ResolvedName_PrimaryAliasWins(t *testing.T) {
	seg := SegmentInput{Name: "SMB", SegmentName: "Mid-Market"}
	if got := seg.ResolvedName(); got != "SMB" {
		t.Fatalf("expected primary alias to win, got %q", got)
	}
}

func TestSegmentInput_ResolvedName_FallsBackToSegmentName(t *testing.T) {
	seg := SegmentInput{SegmentName: "Enterprise"}
	if got := seg.ResolvedName(); got != "Enterprise" {
		t.Fatalf("expected fallback alias, got %q", got)
	}
}

func TestSegmentInput_ResolvedName_EmptyWhenBothMissing(t *testing.T) {
	if got := (SegmentInput{}).ResolvedName(); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}

func TestSegmentInput_ResolvedRevenuePct(t *testing.T) {
	primary := 40
	fallback := 60

	seg := SegmentInput{RevenuePct: &primary, RevenuePercentage: &fallback}
	if got := seg.ResolvedRevenuePct(); got == nil || *got != 40 {
		t.Fatalf("expected primary alias 40, got %v", got)
	}

	seg = SegmentInput{RevenuePercentage: &fallback}
	if got := seg.ResolvedRevenuePct(); got == nil || *got != 60 {
		t.Fatalf("expected fallback alias 60, got %v", got)
	}

	if got := (SegmentInput{}).ResolvedRevenuePct(); got != nil {
		t.Fatalf("expected nil revenue, got %v", got)
	}
}

func TestNormalizeSelfServePct_Number(t *testing.T) {
	// encoding/json decodes JSON numbers into float64.
	got := NormalizeSelfServePct(float64(40))
	if got == nil || *got != "40" {
		t.Fatalf("expected \"40\", got %v", got)
	}
}

func TestNormalizeSelfServePct_String(t *testing.T) {
	got := NormalizeSelfServePct("about half")
	if got == nil || *got != "about half" {
		t.Fatalf("expected pass-through, got %v", got)
	}
}

func TestNormalizeSelfServePct_Absent(t *testing.T) {
	if got := NormalizeSelfServePct(nil); got != nil {
		t.Fatalf("expected nil, got %q", *got)
	}
}

func TestSubmissionRequest_IgnoresUnknownFields(t *testing.T) {
	raw := []byte(`{
		"company_name": "Acme",
		"utm_source": "newsletter",
		"segments": [{"segment_name": "SMB", "revenue_percentage": 40, "hubspot_id": "x"}]
	}`)

	var req SubmissionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if req.CompanyName == nil || *req.CompanyName != "Acme" {
		t.Fatalf("expected company_name Acme, got %v", req.CompanyName)
	}
	if len(req.Segments) != 1 || req.Segments[0].ResolvedName() != "SMB" {
		t.Fatalf("unexpected segments: %+v", req.Segments)
	}
	if pct := req.Segments[0].ResolvedRevenuePct(); pct == nil || *pct != 40 {
		t.Fatalf("expected revenue 40, got %v", pct)
	}
}
