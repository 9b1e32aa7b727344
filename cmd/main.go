// cmd/main.go
package main

import (
	"go-auth-api/app"
)

// @title           User Auth API
// @version         1.0
// @description     User account and authentication service: registration, login, email verification and password reset backed by signed tokens.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
