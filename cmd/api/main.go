package main

import (
	_ "coldchain_pricing/docs"
	"coldchain_pricing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Coldchain Pricing API
// @version         1.0
// @description     Frozen-protein delivered pricing: reefer rate calibration, weekly price sheets, and deal resolution, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey CallerIdentity
// @in header
// @name X-User-ID
// @description Caller identity stamped by the upstream API gateway.

func main() {
	routes.Run()
}
