package deco

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ParsePlan parses the "D:T,D:T,…" surface dialect into a stop list.
// Non-parseable pairs are dropped silently (logged at debug); empty input
// parses to an empty sequence.
func ParsePlan(s string) []Stop {
	var stops []Stop
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		parts := strings.Split(token, ":")
		if len(parts) != 2 {
			logrus.Debugf("deco: dropping malformed plan token %q", token)
			continue
		}
		depth, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		minutes, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil || depth <= 0 || minutes <= 0 {
			logrus.Debugf("deco: dropping malformed plan token %q", token)
			continue
		}
		stops = append(stops, Stop{Depth: float64(depth), Time: minutes})
	}
	return stops
}

// FormatPlan is the inverse of ParsePlan.
func FormatPlan(stops []Stop) string {
	tokens := make([]string, 0, len(stops))
	for _, s := range stops {
		tokens = append(tokens, fmt.Sprintf("%d:%d", int(s.Depth), s.Time))
	}
	return strings.Join(tokens, ",")
}

// PlanState is the persistent key/value surface state for one plan:
// whole-percent gas fractions and integer gradient factors.
type PlanState struct {
	Plan      []Stop
	Algorithm string
	O2        int
	He        int
	GFLow     int
	GFHigh    int
	Descent   int
	Ascent    int
}

// stateKeys is the emission order of the single-mode dialect.
var stateKeys = []string{"plan", "algo", "o2", "he", "gfl", "gfh", "descent", "ascent"}

func (s PlanState) pairs(suffix string) []string {
	values := []string{
		FormatPlan(s.Plan),
		s.Algorithm,
		strconv.Itoa(s.O2),
		strconv.Itoa(s.He),
		strconv.Itoa(s.GFLow),
		strconv.Itoa(s.GFHigh),
		strconv.Itoa(s.Descent),
		strconv.Itoa(s.Ascent),
	}
	out := make([]string, 0, len(stateKeys))
	for i, k := range stateKeys {
		out = append(out, k+suffix+"="+values[i])
	}
	return out
}

// Encode renders the single-mode key/value dialect.
func (s PlanState) Encode() string {
	return strings.Join(s.pairs(""), "&")
}

// EncodeCompare renders the comparison-mode dialect: every key suffixed A/B
// plus mode=compare.
func EncodeCompare(a, b PlanState) string {
	pairs := append(a.pairs("A"), b.pairs("B")...)
	pairs = append(pairs, "mode=compare")
	return strings.Join(pairs, "&")
}

func applyStateKey(s *PlanState, key, value string) {
	switch key {
	case "plan":
		s.Plan = ParsePlan(value)
	case "algo":
		s.Algorithm = value
	case "o2":
		s.O2, _ = strconv.Atoi(value)
	case "he":
		s.He, _ = strconv.Atoi(value)
	case "gfl":
		s.GFLow, _ = strconv.Atoi(value)
	case "gfh":
		s.GFHigh, _ = strconv.Atoi(value)
	case "descent":
		s.Descent, _ = strconv.Atoi(value)
	case "ascent":
		s.Ascent, _ = strconv.Atoi(value)
	}
}

// DecodeState parses either dialect. compare is true when mode=compare was
// present, in which case a and b carry the suffixed states and single is
// zero-valued.
func DecodeState(encoded string) (single, a, b PlanState, compare bool) {
	type kv struct{ key, value string }
	var entries []kv
	for _, token := range strings.Split(encoded, "&") {
		if token == "" {
			continue
		}
		parts := strings.SplitN(token, "=", 2)
		if len(parts) != 2 {
			continue
		}
		if parts[0] == "mode" && parts[1] == "compare" {
			compare = true
			continue
		}
		entries = append(entries, kv{parts[0], parts[1]})
	}
	for _, e := range entries {
		if compare {
			if strings.HasSuffix(e.key, "A") {
				applyStateKey(&a, strings.TrimSuffix(e.key, "A"), e.value)
			} else if strings.HasSuffix(e.key, "B") {
				applyStateKey(&b, strings.TrimSuffix(e.key, "B"), e.value)
			}
		} else {
			applyStateKey(&single, e.key, e.value)
		}
	}
	return single, a, b, compare
}
