package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"woonlasten/internal/domain/auth"
	"woonlasten/internal/platform/config"
)

func main() {
	subject := flag.String("sub", "", "token subject (client name)")
	scopes := flag.String("scopes", strings.Join(auth.DefaultScopes, ","), "comma separated scopes")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to TOKEN_TTL)")
	flag.Parse()

	if strings.TrimSpace(*subject) == "" {
		log.Fatal("-sub is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	lifetime := cfg.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.GenerateToken(cfg.JWTSecret, *subject, splitScopes(*scopes), lifetime)
	if err != nil {
		log.Fatalf("generate token failed: %v", err)
	}
	fmt.Fprintln(os.Stdout, token)
}

func splitScopes(raw string) []string {
	var scopes []string
	for _, part := range strings.Split(raw, ",") {
		if scope := strings.TrimSpace(part); scope != "" {
			scopes = append(scopes, scope)
		}
	}
	return scopes
}
