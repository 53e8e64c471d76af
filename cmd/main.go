package main

import (
	"fmt"
	"os"

	"github.com/divadao/divagov/cmd/divagov"
)

func main() {
	rootCmd := divagov.BuildDivaGovCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
