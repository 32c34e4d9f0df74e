// internal/engine/rules.go
package engine

import (
	"regexp"
	"strings"

	"edilia-assistant/internal/models"
)

// fieldRule attempts to extract one typed value from a message. The rules
// for a field run in declared order and the first match wins, so more
// specific patterns must be listed before permissive fallbacks.
type fieldRule func(text string) (models.SlotValue, bool)

type fieldSpec struct {
	name  string
	rules []fieldRule
}

// ruleSet holds the ordered extraction rules of one intent plus an optional
// derivation pass that runs after all fields have been attempted.
type ruleSet struct {
	fields []fieldSpec
	derive func(slots models.SlotMap)
}

var ruleSets = map[models.IntentType]*ruleSet{
	models.IntentFeasibility:        feasibilityRules(),
	models.IntentBusinessPlan:       businessPlanRules(),
	models.IntentMarketIntelligence: marketRules(),
	models.IntentDesign:             designRules(),
}

// capture builds a rule from a regex with a single capture group and a
// converter for the captured text.
func capture(expr string, conv func(string) (models.SlotValue, bool)) fieldRule {
	re := regexp.MustCompile(expr)
	return func(text string) (models.SlotValue, bool) {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			return models.SlotValue{}, false
		}
		return conv(strings.TrimSpace(m[1]))
	}
}

// captureText captures a free-text fragment as-is.
func captureText(expr string) fieldRule {
	return capture(expr, func(s string) (models.SlotValue, bool) {
		if s == "" {
			return models.SlotValue{}, false
		}
		return models.TextValue(s), true
	})
}

// captureInt captures an integer token, honoring thousands separators.
func captureInt(expr string) fieldRule {
	return capture(expr, func(s string) (models.SlotValue, bool) {
		n, ok := parseIntToken(s)
		if !ok || n <= 0 {
			return models.SlotValue{}, false
		}
		return models.IntValue(n), true
	})
}

// captureMoney builds a rule from a regex with two groups, amount and an
// optional scale word (mila, k, mln, milioni).
func captureMoney(expr string) fieldRule {
	re := regexp.MustCompile(expr)
	return func(text string) (models.SlotValue, bool) {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			return models.SlotValue{}, false
		}
		scale := ""
		if len(m) > 2 {
			scale = m[2]
		}
		v, ok := parseMoneyToken(m[1], scale)
		if !ok || v <= 0 {
			return models.SlotValue{}, false
		}
		return models.MoneyValue(v), true
	}
}

// enumPair maps a regex fragment to the canonical enum value it stands for.
// Fragments are matched with a leading word boundary, case-insensitively.
type enumPair struct {
	pattern string
	value   string
}

// enumMatch returns the canonical value of the first pair whose pattern
// appears in the text. Pair order is the tie-break.
func enumMatch(pairs []enumPair) fieldRule {
	type compiled struct {
		re    *regexp.Regexp
		value string
	}
	table := make([]compiled, 0, len(pairs))
	for _, p := range pairs {
		table = append(table, compiled{
			re:    regexp.MustCompile(`(?i)\b(?:` + p.pattern + `)`),
			value: p.value,
		})
	}
	return func(text string) (models.SlotValue, bool) {
		for _, c := range table {
			if c.re.MatchString(text) {
				return models.EnumValue(c.value), true
			}
		}
		return models.SlotValue{}, false
	}
}

// collectList gathers every matching pair into a list value, deduplicated
// and ordered by pair declaration.
func collectList(pairs []enumPair) fieldRule {
	type compiled struct {
		re    *regexp.Regexp
		value string
	}
	table := make([]compiled, 0, len(pairs))
	for _, p := range pairs {
		table = append(table, compiled{
			re:    regexp.MustCompile(`(?i)\b(?:` + p.pattern + `)`),
			value: p.value,
		})
	}
	return func(text string) (models.SlotValue, bool) {
		seen := map[string]bool{}
		var items []string
		for _, c := range table {
			if c.re.MatchString(text) && !seen[c.value] {
				seen[c.value] = true
				items = append(items, c.value)
			}
		}
		if len(items) == 0 {
			return models.SlotValue{}, false
		}
		return models.ListValue(items), true
	}
}

// fixedValue always matches; used as the last rule of fields with a default.
func fixedValue(v models.SlotValue) fieldRule {
	return func(string) (models.SlotValue, bool) { return v, true }
}

// knownCities is the canonical city list checked before the generic
// preposition capture. Order matters only for messages naming two cities.
var knownCities = []string{
	"Milano", "Roma", "Torino", "Napoli", "Bologna", "Firenze", "Venezia",
	"Verona", "Genova", "Palermo", "Bari", "Catania", "Cagliari", "Padova",
	"Brescia", "Bergamo", "Trieste", "Parma", "Modena", "Rimini", "Como",
	"Monza", "Trento", "Bolzano", "Pescara", "Lecce", "Salerno",
}

// cityRule canonicalizes any known city mentioned in the text.
func cityRule() fieldRule {
	type compiled struct {
		re   *regexp.Regexp
		city string
	}
	table := make([]compiled, 0, len(knownCities))
	for _, c := range knownCities {
		table = append(table, compiled{
			re:   regexp.MustCompile(`(?i)\b` + c + `\b`),
			city: c,
		})
	}
	return func(text string) (models.SlotValue, bool) {
		for _, c := range table {
			if c.re.MatchString(text) {
				return models.TextValue(c.city), true
			}
		}
		return models.SlotValue{}, false
	}
}

// locationRules: canonical cities first, then neighborhood phrases, then a
// permissive capitalized-word capture after a place preposition.
func locationRules() []fieldRule {
	return []fieldRule{
		cityRule(),
		captureText(`(?i)(?:zona|quartiere)\s+([a-zA-Zà-ù]+(?:\s+[a-zA-Zà-ù]+)?)`),
		captureText(`(?:^|\s)(?:a|in|ad)\s+([A-ZÀÈÌÒÙ][a-zà-ùèéìòù]+(?:\s+[A-ZÀÈÌÒÙ][a-zà-ùèéìòù]+)?)`),
	}
}

// areaRules: explicit area phrasing first, plain "N mq" as the permissive
// fallback.
func areaRules() []fieldRule {
	return []fieldRule{
		captureInt(`(?i)(?:area|superficie)\s+(?:di\s+|totale\s+(?:di\s+)?)?([\d.]+)\s*(?:mq|m2|metri quadri|metri quadrati)`),
		captureInt(`(?i)([\d.]+)\s*(?:mq|m2|metri quadri|metri quadrati)`),
	}
}

// budgetRules: labelled amounts, currency-marked amounts, then the
// deliberately permissive bare-digits fallback.
func budgetRules() []fieldRule {
	const scale = `\s*(mila|k|mln|milioni|milione)?`
	return []fieldRule{
		captureMoney(`(?i)(?:budget|investimento|capitale|spesa)\s*(?:di|:)?\s*€?\s*([\d.,]+)` + scale),
		captureMoney(`€\s*([\d.,]+)` + scale),
		captureMoney(`(?i)([\d.,]+)` + scale + `\s*(?:euro|eur\b)`),
		captureMoney(`\b(\d{5,9})()\b`),
	}
}

// timelineRules keep the unit in the stored text; the materializer converts
// to months.
func timelineRules() []fieldRule {
	return []fieldRule{
		capture(`(?i)(\d+)\s*mes[ei]`, func(s string) (models.SlotValue, bool) {
			return models.TextValue(s + " mesi"), true
		}),
		capture(`(?i)(\d+)\s*ann[oi]`, func(s string) (models.SlotValue, bool) {
			return models.TextValue(s + " anni"), true
		}),
	}
}

var propertyTypePairs = []enumPair{
	{`residenzial\w*|abitativ\w*|appartament\w*|condomini\w*`, "residenziale"},
	{`commercial\w*|negoz\w*`, "commerciale"},
	{`direzional\w*|uffic\w*`, "direzionale"},
	{`industrial\w*|logistic\w*|capannon\w*`, "industriale"},
	{`ricettiv\w*|turistic\w*|alberghier\w*`, "ricettivo"},
	{`agricol\w*`, "agricolo"},
	{`misto`, "misto"},
}

// projectNameRules: quoted names first, then an explicit naming phrase.
func projectNameRules() []fieldRule {
	return []fieldRule{
		captureText(`"([^"]{3,60})"`),
		captureText(`«([^»]{3,60})»`),
		captureText(`(?i)(?:chiamalo|chiamato|denominato|dal nome|col nome)\s+([^,.;]{3,40})`),
	}
}
