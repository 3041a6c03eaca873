package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"squeeze/internal/config"
	"squeeze/internal/media/ffprobe"
)

func newInspectCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show media facts for a file without compressing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			inputPath, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			probe, err := ffprobe.Inspect(cmd.Context(), cfg.Tools.FFprobe, inputPath)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"File", filepath.Base(inputPath)},
				{"Container", probe.Format.FormatName},
				{"Duration", formatDuration(probe.DurationSeconds())},
				{"Size", formatSize(probe.SizeBytes())},
			}
			if rate := probe.BitRate(); rate > 0 {
				rows = append(rows, []string{"Bitrate", formatBitrate(int(rate / 1000))})
			}
			if width, height := probe.VideoDimensions(); width > 0 && height > 0 {
				rows = append(rows, []string{"Resolution", fmt.Sprintf("%dx%d", width, height)})
			}
			rows = append(rows, []string{"Audio", yesNo(probe.HasAudio())})
			for _, stream := range probe.Streams {
				label := fmt.Sprintf("Stream %d", stream.Index)
				detail := strings.TrimSpace(fmt.Sprintf("%s %s", stream.CodecType, stream.CodecName))
				if stream.CodecType == "video" && stream.Width > 0 {
					detail = fmt.Sprintf("%s %dx%d", detail, stream.Width, stream.Height)
				}
				if stream.CodecType == "audio" && stream.Channels > 0 {
					detail = fmt.Sprintf("%s %dch", detail, stream.Channels)
				}
				rows = append(rows, []string{label, detail})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}
}
