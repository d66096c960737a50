// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns raw page text into partial structured records. Each
// source kind has an ordered table of (field, pattern) rules evaluated
// first-match-wins: the first pattern that matches a field is used and the
// remaining candidates for that field are skipped. Extractors never fail;
// a field no rule matched is simply left empty.
package extract

import (
	"fmt"
	"os"
	"regexp"

	"go.yaml.in/yaml/v3"
)

// Rule is one candidate pattern for one field. Rules are configuration
// data, not inline branching, so each can be tested on its own.
type Rule struct {
	// Field names the record field this rule fills (e.g. "title").
	Field string `yaml:"field"`

	// Pattern is the regular expression tried against the raw content.
	Pattern string `yaml:"pattern"`

	// Group selects the submatch holding the value: 0 means the first
	// capture group when one exists, -1 forces the whole match (used by
	// year and DOI scans whose groups are incidental), and a positive
	// value names a group explicitly.
	Group int `yaml:"group"`

	re *regexp.Regexp
}

// RuleSet is an ordered rule table for one source kind.
type RuleSet []Rule

// mustRules compiles a builtin rule table, panicking on a bad pattern.
func mustRules(rules []Rule) RuleSet {
	for i := range rules {
		rules[i].re = regexp.MustCompile(rules[i].Pattern)
	}
	return rules
}

// Compile prepares a loaded rule table for use.
func (rs RuleSet) Compile() error {
	for i := range rs {
		re, err := regexp.Compile(rs[i].Pattern)
		if err != nil {
			return fmt.Errorf("rule %d (%s): %w", i, rs[i].Field, err)
		}
		rs[i].re = re
	}
	return nil
}

// Apply evaluates the table against raw content and returns the extracted
// fields. For each field the first matching rule wins; matched fragments
// are stripped of markup before storage.
func (rs RuleSet) Apply(content string) map[string]string {
	fields := make(map[string]string)
	for i := range rs {
		r := &rs[i]
		if _, done := fields[r.Field]; done {
			continue
		}
		m := r.re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		g := 0
		switch {
		case r.Group > 0 && r.Group < len(m):
			g = r.Group
		case r.Group == 0 && len(m) > 1:
			g = 1
		}
		if v := StripTags(m[g]); v != "" {
			fields[r.Field] = v
		}
	}
	return fields
}

// RulesFile is the on-disk form of custom rule tables, keyed by source
// kind name.
type RulesFile struct {
	Tables map[string]RuleSet `yaml:"tables"`
}

// LoadRules reads and compiles rule tables from a YAML file, letting
// deployments override the builtin pattern chains without a rebuild.
func LoadRules(path string) (*RulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var rf RulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	for name, rs := range rf.Tables {
		if err := rs.Compile(); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		rf.Tables[name] = rs
	}
	return &rf, nil
}
