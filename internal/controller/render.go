package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/olekukonko/tablewriter"
)

const shortIDLength = 8

func newTable(buffer *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)

	return table
}

func renderStagesTable(chain m.Chain) string {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"#", "Stage", "Rules", "Source", "Destination", "Offset"})

	totalRules := 0

	for i, stage := range chain.Stages {
		totalRules += len(stage.Rules)

		if len(stage.Rules) == 0 {
			table.Append([]string{fmt.Sprintf("%d", i+1), stage.Name, "0", "-", "-", "identity"})
			continue
		}

		for j, rule := range stage.Rules {
			index, name, count := "", "", ""
			if j == 0 {
				index, name, count = fmt.Sprintf("%d", i+1), stage.Name, fmt.Sprintf("%d", len(stage.Rules))
			}

			table.Append([]string{
				index,
				name,
				count,
				m.SeedRange{Start: rule.SourceStart, End: rule.SourceEnd()}.String(),
				m.SeedRange{Start: rule.DestStart, End: rule.DestEnd()}.String(),
				formatOffset(rule),
			})
		}
	}

	table.SetFooter([]string{"", fmt.Sprintf("Stages %d", len(chain.Stages)), fmt.Sprintf("%d", totalRules), "", "", ""})
	table.Render()

	return buffer.String()
}

func renderRangesTable(ranges m.RangeSet) string {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"Start", "End", "Seeds"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, r := range ranges {
		table.Append([]string{fmt.Sprintf("%d", r.Start), fmt.Sprintf("%d", r.End), fmt.Sprintf("%d", r.Len())})
	}

	table.SetFooter([]string{fmt.Sprintf("Ranges %d", len(ranges)), "", fmt.Sprintf("%d", ranges.Size())})
	table.Render()

	return buffer.String()
}

func renderReportsTable(reports []m.Report) string {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"ID", "Created", "Input", "Mode", "Strategy", "Seeds", "Minimum", "Elapsed"})

	for _, report := range reports {
		table.Append([]string{
			shortID(report.ID),
			report.CreatedAt.Local().Format(time.DateTime),
			string(report.Input),
			report.Mode,
			string(report.Strategy),
			fmt.Sprintf("%d", report.Seeds),
			fmt.Sprintf("%d", report.Minimum),
			report.Elapsed.Round(time.Millisecond).String(),
		})
	}

	table.Render()

	return buffer.String()
}

func renderTrace(chain m.Chain, seed uint64, trail []uint64) string {
	var b strings.Builder

	category := "seed"
	if len(chain.Stages) > 0 && chain.Stages[0].Source() != "" {
		category = chain.Stages[0].Source()
	}

	fmt.Fprintf(&b, "%s %d", category, seed)

	for i, value := range trail {
		name := fmt.Sprintf("stage%d", i+1)
		if i < len(chain.Stages) {
			if destination := chain.Stages[i].Destination(); destination != "" {
				name = destination
			}
		}

		fmt.Fprintf(&b, " -> %s %d", name, value)
	}

	return b.String()
}

func formatOffset(rule m.MapRule) string {
	if rule.DestStart >= rule.SourceStart {
		return fmt.Sprintf("+%d", rule.DestStart-rule.SourceStart)
	}

	return fmt.Sprintf("-%d", rule.SourceStart-rule.DestStart)
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}

	return id[:shortIDLength]
}

// percent returns done/total in the range [0, 1].
func percent(done, total uint64) float64 {
	if total == 0 {
		return 1
	}

	if done >= total {
		return 1
	}

	return float64(done) / float64(total)
}
