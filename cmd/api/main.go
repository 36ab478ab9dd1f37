package main

import (
	_ "crane_fmv/docs"
	"crane_fmv/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Crane FMV API
// @version         1.0
// @description     Fair-market-value valuation reports for cranes: drafting, payment, valuation, generation and delivery.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
// @description Shared administrator token for pricing changes and deletions on behalf of any account.

func main() {
	routes.Run()
}
