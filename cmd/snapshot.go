// Captures the game window once and writes the frame to disk, plus a small
// thumbnail for quickly eyeballing what the bot sees. Useful for collecting
// frames to replay through `detect`.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/disintegration/imaging"
	cli "github.com/spf13/cobra"
	"github.com/vcaesar/gcv"

	"gitlab.com/web-doodle/irisu-autoplay/pkg/autoplay"
)

var (
	snapshotCmd = &cli.Command{
		Use:   "snapshot",
		Short: "Capture the game window once and write the frame plus a thumbnail to the output directory.",
		Run:   Snapshot,
	}
)

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.PersistentFlags().StringP("output", "o", "./tmp/snapshots", "Path to local output directory.")
}

func Snapshot(cmd *cli.Command, args []string) {
	cfg := resolveConfig(cmd)
	outputDir, _ := cmd.Flags().GetString("output")

	window, err := autoplay.FindWindowByTitle(cfg.WindowTitle)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	frame, err := autoplay.NewCapturer().Capture(window)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalln("ERROR:", err)
	}

	framePath := fmt.Sprintf("%s/frame-%d.jpg", outputDir, currentTs)
	gcv.ImgWrite(framePath, frame)

	thumb := imaging.Resize(frame, 480, 0, imaging.Lanczos)
	thumbPath := fmt.Sprintf("%s/frame-%d-thumb.jpg", outputDir, currentTs)
	gcv.ImgWrite(thumbPath, thumb)

	log.Printf("Snapshot written to %s (thumbnail %s)", framePath, thumbPath)
}
