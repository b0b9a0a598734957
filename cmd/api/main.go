package main

import (
	_ "checkout_xpto/docs"
	"checkout_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout XPTO API
// @version         1.0
// @description     Mercado Pago checkout gateway (Checkout Pro preferences, transparent checkout and webhooks).

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3333

// @BasePath  /

func main() {
	routes.Run()
}
