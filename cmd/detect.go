package main

import (
	"fmt"
	"image"
	"log"
	"os"

	cli "github.com/spf13/cobra"
	"github.com/vcaesar/imgo"
	"gocv.io/x/gocv"

	"gitlab.com/web-doodle/irisu-autoplay/pkg/autoplay"
)

var (
	detectCmd = &cli.Command{
		Use:   "detect [image file]",
		Short: "Run marker detection once, against the live window or a frame on disk, and print the candidates.",
		Args:  cli.MaximumNArgs(1),
		Run:   Detect,
	}
)

func init() {
	rootCmd.AddCommand(detectCmd)
}

func Detect(cmd *cli.Command, args []string) {
	debugMode, _ = cmd.Flags().GetBool("debug")
	cfg := resolveConfig(cmd)

	var frame image.Image
	if len(args) > 0 {
		img, _, err := imgo.DecodeFile(args[0])
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
		frame = img
	} else {
		window, err := autoplay.FindWindowByTitle(cfg.WindowTitle)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
		frame, err = autoplay.NewCapturer().Capture(window)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
	}

	mat, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	defer mat.Close()

	markers := cfg.Detector().DetectMat(mat)
	if len(markers) == 0 {
		log.Println("No markers detected")
	}
	for _, m := range markers {
		log.Printf("Detected white frame at: x=%d, y=%d, w=%d, h=%d (aspect %.2f)", m.X, m.Y, m.W, m.H, m.AspectRatio())
	}

	if debugMode {
		outDir := fmt.Sprintf("./tmp/detect-debug/%d", currentTs)
		if err := os.MkdirAll(outDir, 0755); err != nil {
			log.Fatalln("ERROR:", err)
		}
		autoplay.DrawMarkers(&mat, markers)
		outPath := fmt.Sprintf("%s/detected.jpg", outDir)
		if gocv.IMWrite(outPath, mat) {
			log.Println("Annotated frame written to", outPath)
		} else {
			log.Println("Failed to write annotated frame to", outPath)
		}
	}
}
