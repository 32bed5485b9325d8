package rule

import (
	"sort"
	"time"

	"github.com/hypnotizedent/printshop-os-sub011/internal/domain/pricing"
)

// ApplicableRules filters a rule set down to the enabled, in-window rules
// whose conditions match the input, sorted by descending priority. The
// sort is stable: rules of equal priority keep their incoming order, so a
// fixed repository ordering yields a deterministic result.
func ApplicableRules(rules []*PricingRule, input *pricing.PricingInput, now time.Time) []*PricingRule {
	matched := make([]*PricingRule, 0, len(rules))
	for _, r := range rules {
		if !r.ActiveAt(now) {
			continue
		}
		if !r.Conditions.Matches(input) {
			continue
		}
		matched = append(matched, r)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})

	return matched
}
