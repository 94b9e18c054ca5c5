package search

import (
	"regexp"

	"github.com/isim/sbsearch/internal/model"
)

// levelRule pairs a pattern with an extractor for the level token.
// Rules are tried in order and the first match wins; ordering encodes
// precedence between incompatible emitter conventions, not exclusivity.
type levelRule struct {
	re      *regexp.Regexp
	extract func(match []string) string
}

var levelRules = []levelRule{
	// key=value convention: level=info
	{
		re:      regexp.MustCompile(`level=([^\s]+)`),
		extract: func(m []string) string { return m[1] },
	},
	// structured/JSON convention: "level":"warn"
	{
		re:      regexp.MustCompile(`"level":"([^"]+)"`),
		extract: func(m []string) string { return m[1] },
	},
	// bare err= marker (klog-style wrapped errors)
	{
		re:      regexp.MustCompile(`err=`),
		extract: func([]string) string { return "error" },
	},
	// bracketed marker: [error], [ERROR]
	{
		re:      regexp.MustCompile(`(?i)\[error\]`),
		extract: func([]string) string { return "error" },
	},
}

// classifyLevel infers a severity label from a raw log line.
// Lines matching no rule classify as model.LevelUnknown.
func classifyLevel(line string) string {
	for _, rule := range levelRules {
		if m := rule.re.FindStringSubmatch(line); m != nil {
			return rule.extract(m)
		}
	}
	return model.LevelUnknown
}
