// Command tokengen mints a bearer token for the admin endpoints, signed with
// the service's JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"smart-parking/internal/pkg/config"
	"smart-parking/internal/pkg/jwt"

	"github.com/kelseyhightower/envconfig"
)

func main() {
	subject := flag.String("subject", "", "operator identifier recorded in the token")
	role := flag.String("role", string(jwt.RoleOperator), "operator or admin")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -subject <name> [-role operator|admin]")
		os.Exit(2)
	}
	r := jwt.Role(*role)
	if !r.CanOperate() {
		slog.Error("unknown role", "role", *role)
		os.Exit(2)
	}

	// Only the JWT section is needed; the full config would demand PORT and DB settings.
	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to read JWT settings", "error", err)
		os.Exit(1)
	}

	token, err := jwt.NewService(cfg.Secret, cfg.TokenDuration).GenerateToken(*subject, r)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
