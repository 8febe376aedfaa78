package request

import (
	"encoding/json"
	"testing"

	"granite_estimator/internal/domain/estimator"
)

func TestEstimateRequest_DecodesWidgetPayload(t *testing.T) {
	body := `{
		"totalSqFt": "55.5",
		"vendor": "MSI",
		"color": "Calacatta Laza",
		"demo": "yes",
		"materialType": " Quartzite and Marble ",
		"sinkQty": 2,
		"cooktopQty": "1",
		"sinkType": "Premium",
		"cooktopType": "standard",
		"backsplash": "no",
		"edgeDetail": "Custom",
		"jobType": "Slab Only",
		"customerName": "Pat"
	}`

	var r EstimateRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := r.ToProjectRequest()

	want := estimator.ProjectRequest{
		TotalAreaSqFt: 55.5,
		MaterialKey:   "Quartzite and Marble",
		DemoRequired:  true,
		SinkCount:     2,
		SinkTier:      estimator.TierPremium,
		CooktopCount:  1,
		CooktopTier:   estimator.TierStandard,
		EdgeDetail:    estimator.EdgeCustom,
		JobType:       estimator.JobSlabOnly,
		CustomerName:  "Pat",
		Vendor:        "MSI",
		Color:         "Calacatta Laza",
	}
	if got != want {
		t.Fatalf("unexpected project request:\n got %+v\nwant %+v", got, want)
	}
}

func TestEstimateRequest_RejectsNonNumericArea(t *testing.T) {
	var r EstimateRequest
	if err := json.Unmarshal([]byte(`{"totalSqFt":"lots"}`), &r); err == nil {
		t.Fatalf("expected error for non-numeric area")
	}
}

func TestEstimateRequest_RejectsUnknownYesNo(t *testing.T) {
	var r EstimateRequest
	if err := json.Unmarshal([]byte(`{"totalSqFt":10,"demo":"maybe"}`), &r); err == nil {
		t.Fatalf("expected error for unknown yes/no value")
	}
}

func TestFlexBool_Values(t *testing.T) {
	cases := map[string]bool{
		`true`:  true,
		`false`: false,
		`"Yes"`: true,
		`"no"`:  false,
		`"on"`:  true,
		`""`:    false,
		`1`:     true,
		`0`:     false,
		`null`:  false,
	}
	for in, want := range cases {
		var b FlexBool
		if err := json.Unmarshal([]byte(in), &b); err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if bool(b) != want {
			t.Fatalf("%s: expected %v, got %v", in, want, b)
		}
	}
}

func TestFlexFloat_EmptyIsZero(t *testing.T) {
	var f FlexFloat
	if err := json.Unmarshal([]byte(`" "`), &f); err != nil || f != 0 {
		t.Fatalf("expected zero, got %v err=%v", f, err)
	}
}

func TestEstimateRequest_ResolveMaterialKey(t *testing.T) {
	cases := []struct {
		r    EstimateRequest
		want string
	}{
		{EstimateRequest{MaterialKey: " granite ", MaterialType: "quartz", Color: "white"}, "granite"},
		{EstimateRequest{MaterialKey: "  ", MaterialType: "quartz", Color: "white"}, "quartz"},
		{EstimateRequest{Color: "Frost White"}, "Frost White"},
		{EstimateRequest{}, ""},
	}
	for _, tc := range cases {
		if got := tc.r.ResolveMaterialKey(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestChatRequest_ResolveMessage(t *testing.T) {
	if got := (ChatRequest{Message: " hi ", UserMessage: "old"}).ResolveMessage(); got != "hi" {
		t.Fatalf("expected hi, got %q", got)
	}
	if got := (ChatRequest{UserMessage: " old "}).ResolveMessage(); got != "old" {
		t.Fatalf("expected old, got %q", got)
	}
}
