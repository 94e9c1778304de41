package main

import (
	"log"

	_ "bill_ledger/docs"
	"bill_ledger/internal/adapter/http/routes"
	"bill_ledger/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bill Ledger API
// @version         1.0
// @description     Bill ledger (issue, pay, list by website) over a pluggable world state.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
