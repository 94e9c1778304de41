package main

import (
	"os"

	"bill_ledger/internal/adapter/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
