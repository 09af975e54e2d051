// Scratch helper: lists processes that own a window title, to find the
// exact string to put in Settings.ini. Build the real CLI from ./cmd.

package main

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

func main() {
	procs, err := robotgo.Process()
	if err != nil {
		fmt.Println("ERROR:", err)
		return
	}
	for _, p := range procs {
		if title := robotgo.GetTitle(p.Pid); title != "" {
			fmt.Printf("%d\t%s\t%q\n", p.Pid, p.Name, title)
		}
	}
}
