package extract

import (
	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
)

// PartialRecord is the extractor's output: the subset of the metric schema it
// managed to locate in a document. Nil means the field was absent from the
// text — distinct from an extracted zero.
type PartialRecord struct {
	Revenue          *float64      `json:"annual_revenue,omitempty"`
	Employees        *int          `json:"total_employees,omitempty"`
	EnergyKWh        *float64      `json:"total_energy_consumption_kwh,omitempty"`
	RenewableKWh     *float64      `json:"renewable_energy_kwh,omitempty"`
	WasteGeneratedKg *float64      `json:"waste_generated_kg,omitempty"`
	WasteRecycledKg  *float64      `json:"waste_recycled_kg,omitempty"`
	Industry         *esg.Industry `json:"industry,omitempty"`
}

// Merge overlays other onto p: any field present in other wins, including
// overwriting an earlier extracted value. No reconciliation or averaging.
func (p *PartialRecord) Merge(other PartialRecord) {
	if other.Revenue != nil {
		p.Revenue = other.Revenue
	}
	if other.Employees != nil {
		p.Employees = other.Employees
	}
	if other.EnergyKWh != nil {
		p.EnergyKWh = other.EnergyKWh
	}
	if other.RenewableKWh != nil {
		p.RenewableKWh = other.RenewableKWh
	}
	if other.WasteGeneratedKg != nil {
		p.WasteGeneratedKg = other.WasteGeneratedKg
	}
	if other.WasteRecycledKg != nil {
		p.WasteRecycledKg = other.WasteRecycledKg
	}
	if other.Industry != nil {
		p.Industry = other.Industry
	}
}

// Record fills absent fields with domain defaults (zero amounts, default
// industry) and assembles a complete scoring record. Social and governance
// metrics never come from documents, so they default in full.
func (p PartialRecord) Record() esg.Record {
	rec := esg.Record{
		Profile: esg.CompanyProfile{Industry: esg.IndustryITServices},
		Governance: esg.GovernanceMetrics{
			PoliciesImplemented: []string{},
		},
	}
	if p.Industry != nil {
		rec.Profile.Industry = *p.Industry
	}
	if p.Revenue != nil {
		rec.Profile.AnnualRevenue = *p.Revenue
	}
	if p.Employees != nil {
		rec.Profile.TotalEmployees = *p.Employees
	}
	if p.EnergyKWh != nil {
		rec.Environmental.TotalEnergyKWh = *p.EnergyKWh
	}
	if p.RenewableKWh != nil {
		rec.Environmental.RenewableEnergyKWh = *p.RenewableKWh
	}
	if p.WasteGeneratedKg != nil {
		rec.Environmental.WasteGeneratedKg = *p.WasteGeneratedKg
	}
	if p.WasteRecycledKg != nil {
		rec.Environmental.WasteRecycledKg = *p.WasteRecycledKg
	}
	return rec
}
