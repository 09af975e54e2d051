package main

import (
	"log"

	"github.com/gen2brain/beeep"
	cli "github.com/spf13/cobra"

	"gitlab.com/web-doodle/irisu-autoplay/pkg/autoplay"
)

var (
	playCmd = &cli.Command{
		Use:   "play",
		Short: "Click through the title menu, then capture and analyze the game window until 'q' is pressed. 'p' pauses.",
		Run:   Play,
	}
)

func init() {
	rootCmd.AddCommand(playCmd)
}

func Play(cmd *cli.Command, args []string) {
	cfg := resolveConfig(cmd)

	window, err := autoplay.FindWindowByTitle(cfg.WindowTitle)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	log.Printf("Found window %q, bounds %+v", window.Title, window.Bounds())

	probe := autoplay.StartHookProbe()
	defer probe.Stop()

	controller := autoplay.NewController(
		cfg,
		window,
		autoplay.NewCapturer(),
		probe,
		autoplay.NewRobotSink(),
		autoplay.NewPreview(),
	)

	if err := controller.Startup(); err != nil {
		log.Fatalln("ERROR:", err)
	}
	if err := controller.Run(); err != nil {
		log.Fatalln("ERROR:", err)
	}

	log.Println("Quit key pressed, automation finished")
	_ = beeep.Notify("irisu-autoplay", "Automation loop finished", "")
}
