// scripts/issue-token/main.go
//
// Prints a bearer token for local testing, signed with jwt.secret_key from config.
//
// Usage:
//   go run ./scripts/issue-token <user-id>

package main

import (
	"fmt"
	"log"
	"os"

	"action-plan-assistant/config"
	"action-plan-assistant/pkg/scope"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: issue-token <user-id>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	token, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL).CreateToken(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to create token: %v", err)
	}
	fmt.Println(token)
}
