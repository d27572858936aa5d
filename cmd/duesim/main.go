// Command duesim runs the blink firmware against simulated SAM3X8E
// peripherals on the host.
package main

import (
	"os"

	"duecode-go/internal/log"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
