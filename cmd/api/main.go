package main

import (
	"log"
	_ "mecanica_projects/docs"
	"mecanica_projects/internal/adapter/http/routes"
	"mecanica_projects/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Project Service API
// @version         1.0
// @description     Custom vehicle modification projects and appointment-derived services, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.Run(cfg)
}
