package extract

import (
	"testing"

	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
)

func TestExtractRevenue(t *testing.T) {
	rec := Extract("Total Revenue: 1,250,000 INR")
	if rec.Revenue == nil {
		t.Fatal("revenue not extracted")
	}
	if *rec.Revenue != 1_250_000 {
		t.Errorf("got %f, want 1250000", *rec.Revenue)
	}
}

func TestExtractKeywordPriority(t *testing.T) {
	// "turnover" appears first in the text, but "revenue" comes first in the
	// keyword list — the list order governs, not text position.
	rec := Extract("turnover: 500 ... revenue: 300")
	if rec.Revenue == nil {
		t.Fatal("revenue not extracted")
	}
	if *rec.Revenue != 300 {
		t.Errorf("got %f, want 300 (keyword priority should win)", *rec.Revenue)
	}
}

func TestExtractSynonymFallback(t *testing.T) {
	rec := Extract("annual turnover was 42,000 this year")
	if rec.Revenue == nil || *rec.Revenue != 42_000 {
		t.Errorf("turnover synonym not matched: %+v", rec.Revenue)
	}
}

func TestExtractIntegerTruncation(t *testing.T) {
	rec := Extract("employees: 42.9 across three sites")
	if rec.Employees == nil {
		t.Fatal("employees not extracted")
	}
	if *rec.Employees != 42 {
		t.Errorf("got %d, want 42 (truncated, not rounded)", *rec.Employees)
	}
}

func TestExtractAllFields(t *testing.T) {
	text := `Sustainability disclosure
Revenue: 10,000,000
Employees: 250
Energy consumed: 500,000 kWh
Renewable generation: 50,000 kWh
Waste generated: 1,200 kg
Recycled: 800 kg
Sector: Manufacturing`

	rec := Extract(text)
	if rec.Revenue == nil || *rec.Revenue != 10_000_000 {
		t.Errorf("revenue: %+v", rec.Revenue)
	}
	if rec.Employees == nil || *rec.Employees != 250 {
		t.Errorf("employees: %+v", rec.Employees)
	}
	if rec.EnergyKWh == nil || *rec.EnergyKWh != 500_000 {
		t.Errorf("energy: %+v", rec.EnergyKWh)
	}
	if rec.RenewableKWh == nil || *rec.RenewableKWh != 50_000 {
		t.Errorf("renewable: %+v", rec.RenewableKWh)
	}
	if rec.WasteGeneratedKg == nil || *rec.WasteGeneratedKg != 1200 {
		t.Errorf("waste generated: %+v", rec.WasteGeneratedKg)
	}
	if rec.WasteRecycledKg == nil || *rec.WasteRecycledKg != 800 {
		t.Errorf("waste recycled: %+v", rec.WasteRecycledKg)
	}
	if rec.Industry == nil || *rec.Industry != esg.IndustryManufacturing {
		t.Errorf("industry: %+v", rec.Industry)
	}
}

func TestExtractAbsentFieldsStayNil(t *testing.T) {
	rec := Extract("nothing quantitative in this paragraph")
	if rec.Revenue != nil || rec.Employees != nil || rec.EnergyKWh != nil ||
		rec.RenewableKWh != nil || rec.WasteGeneratedKg != nil || rec.WasteRecycledKg != nil {
		t.Errorf("expected all metric fields nil, got %+v", rec)
	}
	// Industry always resolves, defaulting to the lowest-intensity class.
	if rec.Industry == nil || *rec.Industry != esg.IndustryITServices {
		t.Errorf("industry default: %+v", rec.Industry)
	}
}

func TestExtractNumberOnSameLineOnly(t *testing.T) {
	// The keyword pattern does not cross line boundaries.
	rec := Extract("revenue\n1,000")
	if rec.Revenue != nil {
		t.Errorf("expected nil revenue across newline, got %f", *rec.Revenue)
	}
}

func TestInferIndustry(t *testing.T) {
	tests := []struct {
		text string
		want esg.Industry
	}{
		{"leading cement producer", esg.IndustryCementSteel},
		{"integrated steel mill", esg.IndustryCementSteel},
		{"pharma company", esg.IndustryPharma},
		{"retail chain", esg.IndustryRetail},
		{"manufacturing plant", esg.IndustryManufacturing},
		{"software consultancy", esg.IndustryITServices},
		// Priority: cement/steel outranks later classes.
		{"steel for the retail sector", esg.IndustryCementSteel},
		{"pharma packaging manufacturing", esg.IndustryPharma},
	}
	for _, tt := range tests {
		rec := Extract(tt.text)
		if rec.Industry == nil || *rec.Industry != tt.want {
			t.Errorf("%q: got %v, want %s", tt.text, rec.Industry, tt.want)
		}
	}
}

func TestMergeLaterWins(t *testing.T) {
	d1 := Extract("revenue: 100")
	d2 := Extract("revenue: 200")

	var merged PartialRecord
	merged.Merge(d1)
	merged.Merge(d2)

	if merged.Revenue == nil || *merged.Revenue != 200 {
		t.Errorf("got %+v, want 200 (later document wins)", merged.Revenue)
	}
}

func TestMergeKeepsEarlierWhenAbsent(t *testing.T) {
	d1 := Extract("revenue: 100 at our manufacturing site")
	d2 := Extract("employees: 40")

	var merged PartialRecord
	merged.Merge(d1)
	merged.Merge(d2)

	if merged.Revenue == nil || *merged.Revenue != 100 {
		t.Errorf("revenue lost in merge: %+v", merged.Revenue)
	}
	if merged.Employees == nil || *merged.Employees != 40 {
		t.Errorf("employees: %+v", merged.Employees)
	}
	// d2 inferred the default industry and industry is always present, so the
	// later document's classification wins.
	if merged.Industry == nil || *merged.Industry != esg.IndustryITServices {
		t.Errorf("industry: %+v", merged.Industry)
	}
}

func TestRecordFillsDefaults(t *testing.T) {
	var p PartialRecord
	rec := p.Record()

	if rec.Profile.Industry != esg.IndustryITServices {
		t.Errorf("default industry: got %s", rec.Profile.Industry)
	}
	if rec.Profile.AnnualRevenue != 0 || rec.Profile.TotalEmployees != 0 {
		t.Errorf("expected zero profile defaults: %+v", rec.Profile)
	}
	if rec.Governance.PoliciesImplemented == nil {
		t.Error("policies should default to an empty list, not nil")
	}
}

func TestRecordCarriesExtractedValues(t *testing.T) {
	p := Extract("Revenue: 5,000,000. Workforce: 120. Energy: 90,000 kWh. A steel company.")
	rec := p.Record()

	if rec.Profile.AnnualRevenue != 5_000_000 {
		t.Errorf("revenue: got %f", rec.Profile.AnnualRevenue)
	}
	if rec.Profile.TotalEmployees != 120 {
		t.Errorf("employees: got %d", rec.Profile.TotalEmployees)
	}
	if rec.Environmental.TotalEnergyKWh != 90_000 {
		t.Errorf("energy: got %f", rec.Environmental.TotalEnergyKWh)
	}
	if rec.Profile.Industry != esg.IndustryCementSteel {
		t.Errorf("industry: got %s", rec.Profile.Industry)
	}
}
