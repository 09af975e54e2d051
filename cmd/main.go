/**
 * irisu-autoplay
 * Drives irisu syndrome through its title menu and watches the bright
 * rectangular selection cursor the game renders around the focused item.
 * Developed in Golang for to use robotgo
 *
 * Requires that the game window is open and on a visible display.
 * Building requires opencv4 as a dependency.
 */

package main

import (
	"log"
	"time"

	cli "github.com/spf13/cobra"

	"gitlab.com/web-doodle/irisu-autoplay/pkg/autoplay"
)

var (
	// The Root Cli Handler
	rootCmd   = &cli.Command{}
	currentTs = time.Now().Unix()
	debugMode = false
)

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Run in debug mode. Will output captured frames to tmp folder.")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a Settings.ini overriding the built-in tuning.")
	rootCmd.PersistentFlags().StringP("title", "t", "", "Target window title. Overrides the configured one.")
}

func main() {
	// Run the program
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln("ERROR:", err)
	}
}

// resolveConfig layers the persistent flags over the built-in defaults:
// Settings.ini first when given, then the --title override.
func resolveConfig(cmd *cli.Command) autoplay.Config {
	cfg := autoplay.DefaultConfig()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		loaded, err := autoplay.LoadConfig(configPath)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
		cfg = loaded
	}
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		cfg.WindowTitle = title
	}
	return cfg
}
