package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	cmd := newRootCmd(viper.New(), runPager)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "page: %v\n", err)
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprintf(os.Stderr, "Usage: %s\n", cmd.UseLine())
		}
	}
	os.Exit(exitCode(err))
}
