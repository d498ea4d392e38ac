package main

import (
	"strings"
	"testing"

	"wphelper/internal/wpctl"
)

func TestRenderObjectsTable(t *testing.T) {
	objs := []wpctl.Object{
		{ID: "1", Name: "speakers", Volume: &wpctl.Volume{Level: "0.80"}},
		{ID: "2", Name: "headphones", Active: true, Volume: &wpctl.Volume{Level: "1.00", Muted: true}},
		{ID: "3", Name: "dac", Extra: "alsa"},
	}
	rendered := renderObjectsTable("sinks", objs, false)

	for _, want := range []string{"Sinks", "ID", "NAME", "DEFAULT", "speakers", "0.80", "yes", "alsa"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected %q in table:\n%s", want, rendered)
		}
	}
	var activeLine string
	for _, line := range strings.Split(rendered, "\n") {
		if strings.Contains(line, "headphones") {
			activeLine = line
		}
	}
	if !strings.Contains(activeLine, "*") {
		t.Fatalf("expected default marker on active row, got %q", activeLine)
	}
	if strings.Contains(rendered, "\x1b[") {
		t.Fatalf("expected uncolored output:\n%s", rendered)
	}
}

func TestRenderObjectsTableEmpty(t *testing.T) {
	rendered := renderObjectsTable("filters", nil, false)
	if !strings.Contains(rendered, "(none)") || !strings.Contains(rendered, "Filters") {
		t.Fatalf("unexpected empty table:\n%s", rendered)
	}
}

func TestCategoryTitle(t *testing.T) {
	if got := categoryTitle("sources"); got != "Sources" {
		t.Fatalf("unexpected title: %q", got)
	}
}
