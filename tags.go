package acceptor

import (
	"strings"

	"github.com/bdd-infra/bdd-acceptor/events"
	"github.com/bdd-infra/bdd-acceptor/types"
)

// extractLabels builds the report labels from a scenario's tags. A tag
// matches a category when it contains the configured prefix anywhere;
// the label value is everything after the prefix occurrence, so
// "@TMS:9901" with prefix "TMS:" yields "9901". When several tags match
// the same category the last one in input order wins. Severity values
// outside the fixed set are ignored.
func extractLabels(tags []events.Tag, tmsPrefix, issuePrefix, severityPrefix string) types.Labels {
	var labels types.Labels
	for _, tag := range tags {
		if v, ok := tagValue(tag.Name, tmsPrefix); ok {
			labels.TestID = v
		}
		if v, ok := tagValue(tag.Name, issuePrefix); ok {
			labels.Issue = v
		}
		if v, ok := tagValue(tag.Name, severityPrefix); ok {
			if sev, valid := types.ParseSeverity(v); valid {
				labels.Severity = sev
			}
		}
	}
	return labels
}

// tagValue returns the remainder of tag after the first occurrence of
// prefix, and whether the prefix occurred at all.
func tagValue(tag, prefix string) (string, bool) {
	idx := strings.Index(tag, prefix)
	if idx < 0 {
		return "", false
	}
	return tag[idx+len(prefix):], true
}
