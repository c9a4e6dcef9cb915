package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/creasty/defaults"
)

func TestScreeningRequestDefaults(t *testing.T) {
	req := &ScreeningRequest{}
	if err := defaults.Set(req); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if !req.MA112Enabled {
		t.Errorf("ma112 should default to enabled")
	}
	if req.MA60Min != 95 || req.MA60Max != 105 {
		t.Errorf("unexpected ma60 defaults: %d..%d", req.MA60Min, req.MA60Max)
	}
	if req.BBPeriod != 20 || req.BBMultiplier != 2.0 || req.BBPosition != "all" {
		t.Errorf("unexpected bb defaults: %d %v %s", req.BBPeriod, req.BBMultiplier, req.BBPosition)
	}
	if req.PriceChangeMin != -100.0 || req.PriceChangeMax != 100.0 {
		t.Errorf("unexpected price change defaults: %v..%v", req.PriceChangeMin, req.PriceChangeMax)
	}
	if !req.ExcludeETF || !req.ExcludeETN || req.ExcludeManagement {
		t.Errorf("unexpected exclusion defaults")
	}
	if req.MarketCapMax != 1000000000000 {
		t.Errorf("unexpected market cap max: %d", req.MarketCapMax)
	}
	if req.PERMax != 30.0 {
		t.Errorf("unexpected per max: %v", req.PERMax)
	}
}

func TestScreeningRequestRoundTrip(t *testing.T) {
	in := &ScreeningRequest{
		AppKey:         "key",
		AppSecret:      "secret",
		MA60Enabled:    true,
		MA60Min:        90,
		MA60Max:        110,
		BBEnabled:      true,
		BBPeriod:       30,
		BBMultiplier:   1.5,
		BBPosition:     "upper",
		VolumeEnabled:  true,
		VolumeMultiple: 2.5,
		TargetCodes:    []string{"005930", "000660"},
	}

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &ScreeningRequest{}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip changed the request:\n in=%+v\nout=%+v", in, out)
	}
}

func TestNormalizeTargetCodes(t *testing.T) {
	req := &ScreeningRequest{}
	req.NormalizeTargetCodes()
	if req.TargetCodes == nil || len(req.TargetCodes) != 0 {
		t.Fatalf("nil target codes must become an empty slice")
	}

	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"targetCodes":[]`) {
		t.Fatalf("expected empty array, got %s", b)
	}

	// already-set codes are left alone
	req.TargetCodes = []string{"005930"}
	req.NormalizeTargetCodes()
	if len(req.TargetCodes) != 1 {
		t.Fatalf("normalize must not touch populated codes")
	}
}
