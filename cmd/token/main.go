package main

import (
	"chat-relay/auth"
	"chat-relay/domain"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// token mints a bearer token signed with JWT_SECRET, for local testing.
func main() {
	_ = godotenv.Load()
	user := flag.String("user", "", "User id carried by the token")
	model := flag.String("model", string(domain.ParentModel), "parent or child")
	roles := flag.String("roles", "", "Comma separated roles, e.g. service")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	issuer := lo.CoalesceOrEmpty(os.Getenv("JWT_ISSUER"), "chat-relay")
	if *user == "" || secret == "" {
		fmt.Fprintln(os.Stderr, "-user and JWT_SECRET are required")
		os.Exit(2)
	}

	identity := domain.Identity{
		UserID: *user,
		Model:  domain.UserModel(*model),
		Roles:  lo.Compact(strings.Split(*roles, ",")),
	}
	token, err := auth.NewTokenManager(secret, issuer).GenerateToken(identity, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
