package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	err := newRootCommand().Execute()
	if err == nil {
		return
	}
	// an interrupted scan already logged its partial totals
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "cleanup-discogs:", err)
	}
	os.Exit(1)
}
