package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/commercegate/authtoken"
)

func main() {
	class := flag.String("class", string(authtoken.ClassAccess), "Token class to mint: access, refresh, or customer")
	userID := flag.Int64("user-id", 0, "User id embedded in access/refresh tokens")
	username := flag.String("username", os.Getenv("AUTH_USERNAME"), "Username used as the token subject (env AUTH_USERNAME)")
	crossApp := flag.Bool("cross-app", false, "Mark the token as cross-application authentication")
	authorities := flag.String("authorities", "", "Comma-separated authorities; omitted from the token when empty")
	customerID := flag.Int64("customer-id", 0, "Customer id for customer tokens")
	flag.Parse()

	cfg, err := authtoken.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	service, err := authtoken.New(cfg)
	if err != nil {
		log.Fatalf("create token service: %v", err)
	}

	switch authtoken.TokenClass(*class) {
	case authtoken.ClassAccess:
		requireUser(*username)
		token, err := service.GenerateAuthenticationToken(*userID, *username, *crossApp, *authorities)
		if err != nil {
			log.Fatalf("generate access token: %v", err)
		}
		fmt.Println(token)
	case authtoken.ClassRefresh:
		requireUser(*username)
		token, err := service.GenerateRefreshToken(*userID, *username, *crossApp, *authorities)
		if err != nil {
			log.Fatalf("generate refresh token: %v", err)
		}
		fmt.Println(token)
		fmt.Printf("Set-Cookie: %s\n", service.BuildRefreshTokenCookie(token).String())
	case authtoken.ClassCustomer:
		if *customerID <= 0 {
			flag.Usage()
			log.Fatal("customer-id is required for customer tokens")
		}
		token, err := service.GenerateCustomerToken(*customerID)
		if err != nil {
			log.Fatalf("generate customer token: %v", err)
		}
		fmt.Println(token)
	default:
		flag.Usage()
		log.Fatalf("unknown token class %q", *class)
	}
}

func requireUser(username string) {
	if username == "" {
		flag.Usage()
		log.Fatal("username is required (via flag or AUTH_USERNAME)")
	}
}
