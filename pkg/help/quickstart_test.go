package help

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestQuickstartYAMLParses(t *testing.T) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(QuickstartYAML), &doc); err != nil {
		t.Fatalf("QuickstartYAML is not valid YAML: %v", err)
	}
	for _, key := range []string{"commands", "exit_codes", "badges"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing section %q", key)
		}
	}
}

func TestQuickstartDescribesScriptOnlyTags(t *testing.T) {
	var doc struct {
		JSOnlyTags string `yaml:"js_only_tags"`
	}
	if err := yaml.Unmarshal([]byte(QuickstartYAML), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(doc.JSOnlyTags, "missing from the raw HTML") {
		t.Errorf("js_only_tags = %q, want it to describe tags missing from the raw HTML", doc.JSOnlyTags)
	}
	if strings.Contains(doc.JSOnlyTags, "different") {
		t.Errorf("js_only_tags = %q, differing values are not flagged", doc.JSOnlyTags)
	}
}
