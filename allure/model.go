package allure

import "github.com/bdd-infra/bdd-acceptor/types"

// The artifact schema is kept to the handful of fields report viewers
// actually need; timestamps are unix milliseconds.

type testResult struct {
	UUID          string         `json:"uuid"`
	Name          string         `json:"name"`
	Status        string         `json:"status"`
	StatusDetails *statusDetails `json:"statusDetails,omitempty"`
	Labels        []label        `json:"labels,omitempty"`
	Steps         []*stepResult  `json:"steps,omitempty"`
	Attachments   []attachment   `json:"attachments,omitempty"`
	Start         int64          `json:"start"`
	Stop          int64          `json:"stop"`
}

type stepResult struct {
	Name        string       `json:"name"`
	Status      string       `json:"status"`
	Attachments []attachment `json:"attachments,omitempty"`
	Start       int64        `json:"start"`
	Stop        int64        `json:"stop"`
}

type containerResult struct {
	UUID     string   `json:"uuid"`
	Name     string   `json:"name"`
	Children []string `json:"children"`
	Start    int64    `json:"start"`
	Stop     int64    `json:"stop"`
}

type statusDetails struct {
	Message string `json:"message"`
}

type attachment struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Type   string `json:"type,omitempty"`
}

type label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// buildLabels flattens the correlator's label mapping into the artifact
// label list, skipping unset entries.
func buildLabels(suite string, l types.Labels) []label {
	var out []label
	add := func(name, value string) {
		if value != "" {
			out = append(out, label{Name: name, Value: value})
		}
	}
	add("suite", suite)
	add("feature", l.Feature)
	add("story", l.Story)
	add("severity", string(l.Severity))
	add("testId", l.TestID)
	add("issue", l.Issue)
	return out
}
