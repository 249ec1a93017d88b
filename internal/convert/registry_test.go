// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLastRegistrationWins(t *testing.T) {
	reg := NewRegistry()
	first := &fakeConverter{content: "first"}
	second := &fakeConverter{content: "second"}

	reg.Register(".txt", ".pdf", first)
	reg.Register(".txt", ".pdf", second)

	got, ok := reg.Lookup(".txt", ".pdf")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestRegistryLookupMiss(t *testing.T) {
	reg := NewRegistry()
	reg.Register(".txt", ".pdf", &fakeConverter{})

	_, ok := reg.Lookup(".txt", ".html")
	assert.False(t, ok)
	_, ok = reg.Lookup(".docx", ".pdf")
	assert.False(t, ok)
}

func TestRegistryRulesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(".xlsx", ".csv", &fakeConverter{})
	reg.Register(".docx", ".pdf", &fakeConverter{})
	reg.Register(".txt", ".pdf", &fakeConverter{})

	rules := reg.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, Rule{From: ".docx", To: ".pdf"}, rules[0])
	assert.Equal(t, Rule{From: ".txt", To: ".pdf"}, rules[1])
	assert.Equal(t, Rule{From: ".xlsx", To: ".csv"}, rules[2])
}

func TestDefaultRegistryPairs(t *testing.T) {
	reg := DefaultRegistry()
	for _, pair := range []Rule{
		{From: ".txt", To: ".pdf"},
		{From: ".docx", To: ".pdf"},
		{From: ".md", To: ".html"},
		{From: ".html", To: ".pdf"},
		{From: ".xlsx", To: ".csv"},
	} {
		_, ok := reg.Lookup(pair.From, pair.To)
		assert.True(t, ok, "missing default rule %v", pair)
	}
}
