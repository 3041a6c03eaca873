package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"squeeze/internal/compress"
)

type summaryData struct {
	result       compress.Result
	inputSize    int64
	targetBytes  int64
	durationSecs float64
	elapsed      time.Duration
}

func renderSummary(data summaryData) string {
	outputSize := data.inputSize
	if size, err := fileSize(data.result.OutputPath); err == nil {
		outputSize = size
	}
	ratio := 0.0
	if outputSize > 0 {
		ratio = float64(data.inputSize) / float64(outputSize)
	}
	percentOfTarget := 0.0
	if data.targetBytes > 0 {
		percentOfTarget = float64(outputSize) / float64(data.targetBytes) * 100
	}
	saved := data.inputSize - outputSize

	speedFactor := 0.0
	if data.elapsed > 0 {
		speedFactor = data.durationSecs / data.elapsed.Seconds()
	}

	rows := [][]string{
		{"Output size", fmt.Sprintf("%s (%.1f%% of target)", formatSize(outputSize), percentOfTarget)},
		{"Compression", fmt.Sprintf("%.1fx (%s saved)", ratio, formatSize(saved))},
		{"Settings", fmt.Sprintf("%dx%d @ %dfps, %s", data.result.Width, data.result.Height, data.result.FPS, formatBitrate(data.result.VideoKbps))},
		{"Audio", audioSummary(data.result.AudioKbps)},
		{"Codec", data.result.Codec.String()},
		{"Time", fmt.Sprintf("%s (%.1fx realtime)", formatDuration(data.elapsed.Seconds()), speedFactor)},
		{"Attempts", fmt.Sprintf("%d", data.result.Attempts)},
	}
	return renderTable([]string{"Result", "Value"}, rows)
}

func audioSummary(kbps int) string {
	if kbps <= 0 {
		return "disabled"
	}
	return fmt.Sprintf("aac %d kbps", kbps)
}

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
