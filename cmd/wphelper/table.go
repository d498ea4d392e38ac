package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wphelper/internal/wpctl"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
)

var objectHeaders = table.Row{"ID", "Name", "Default", "Volume", "Muted", "Extra"}

// renderObjectsTable renders one category as a rounded table. An empty title
// omits the caption.
func renderObjectsTable(title string, objs []wpctl.Object, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if title != "" {
		tw.SetTitle(categoryTitle(title))
	}
	tw.AppendHeader(objectHeaders)
	for _, obj := range objs {
		tw.AppendRow(objectRow(obj, colorize))
	}
	if len(objs) == 0 {
		tw.AppendRow(table.Row{"", paint("(none)", ansiDim, colorize), "", "", "", ""})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignCenter, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func objectRow(obj wpctl.Object, colorize bool) table.Row {
	marker := ""
	name := obj.Name
	if obj.Active {
		marker = paint("*", ansiGreen, colorize)
		name = paint(name, ansiGreen, colorize)
	}
	volume, muted := "", ""
	if obj.Volume != nil {
		volume = obj.Volume.Level
		muted = yesNo(obj.Volume.Muted)
		if obj.Volume.Muted {
			muted = paint(muted, ansiRed, colorize)
		}
	}
	return table.Row{obj.ID, name, marker, volume, muted, obj.Extra}
}

func categoryTitle(category string) string {
	return cases.Title(language.English).String(category)
}

func paint(value, color string, colorize bool) string {
	if !colorize || value == "" {
		return value
	}
	return color + value + ansiReset
}
