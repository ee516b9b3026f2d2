// Package extract heuristically recovers metric values from decoded document
// text. It is best-effort by design: fields it cannot locate stay absent, and
// nothing in here ever fails a request.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
)

// fieldRule binds one metric field to its keyword synonyms, in priority
// order. The first keyword whose pattern matches anywhere in the text wins,
// even if a lower-priority keyword occurs earlier in the document.
type fieldRule struct {
	keywords []string
	integer  bool
	assign   func(*PartialRecord, float64)
}

// fieldRules is the extraction table. Order within each keyword list matters;
// keep it data-driven rather than scattered through conditionals.
var fieldRules = []fieldRule{
	{
		keywords: []string{"revenue", "turnover"},
		assign:   func(p *PartialRecord, v float64) { p.Revenue = &v },
	},
	{
		keywords: []string{"employees", "workforce"},
		integer:  true,
		assign:   func(p *PartialRecord, v float64) { n := int(v); p.Employees = &n },
	},
	{
		keywords: []string{"energy", "electricity"},
		assign:   func(p *PartialRecord, v float64) { p.EnergyKWh = &v },
	},
	{
		keywords: []string{"renewable", "solar"},
		assign:   func(p *PartialRecord, v float64) { p.RenewableKWh = &v },
	},
	{
		keywords: []string{"waste generated"},
		assign:   func(p *PartialRecord, v float64) { p.WasteGeneratedKg = &v },
	},
	{
		keywords: []string{"recycled"},
		assign:   func(p *PartialRecord, v float64) { p.WasteRecycledKg = &v },
	},
}

// industryRules classify the document by substring presence, first match
// wins. Absent any hit the default is the lowest-intensity class.
var industryRules = []struct {
	substrings []string
	industry   esg.Industry
}{
	{[]string{"cement", "steel"}, esg.IndustryCementSteel},
	{[]string{"pharma"}, esg.IndustryPharma},
	{[]string{"retail"}, esg.IndustryRetail},
	{[]string{"manufacturing"}, esg.IndustryManufacturing},
}

// keywordPatterns caches one compiled pattern per keyword: the keyword, any
// run of characters on the same line, then digits with optional thousands
// separators and a decimal point.
var keywordPatterns = buildPatterns()

func buildPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, rule := range fieldRules {
		for _, k := range rule.keywords {
			patterns[k] = regexp.MustCompile(regexp.QuoteMeta(k) + `.*?(\d[\d,.]*)`)
		}
	}
	return patterns
}

// Extract locates metric values near domain keywords in text and infers the
// industry. Fields with no keyword hit remain nil; the industry is always
// set. Matching is case-insensitive via a single lowercasing pass.
func Extract(text string) PartialRecord {
	lower := strings.ToLower(text)

	var rec PartialRecord
	for _, rule := range fieldRules {
		v, ok := findValue(lower, rule.keywords)
		if !ok {
			continue
		}
		if rule.integer {
			v = math.Trunc(v)
		}
		rule.assign(&rec, v)
	}

	industry := inferIndustry(lower)
	rec.Industry = &industry
	return rec
}

// findValue tries each keyword in priority order and returns the first
// parseable number found after one. A captured token that fails to parse
// (e.g. "1.250.000") falls through to the next keyword.
func findValue(text string, keywords []string) (float64, bool) {
	for _, k := range keywords {
		m := keywordPatterns[k].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

func inferIndustry(text string) esg.Industry {
	for _, rule := range industryRules {
		for _, s := range rule.substrings {
			if strings.Contains(text, s) {
				return rule.industry
			}
		}
	}
	return esg.IndustryITServices
}
