package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/commercegate/authtoken"
)

func main() {
	class := flag.String("class", string(authtoken.ClassAccess), "Token class to validate against: access, refresh, or customer")
	token := flag.String("token", os.Getenv("AUTH_TOKEN"), "Token to inspect (env AUTH_TOKEN)")
	flag.Parse()

	if *token == "" {
		flag.Usage()
		log.Fatal("token is required (via flag or AUTH_TOKEN)")
	}

	cfg, err := authtoken.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	service, err := authtoken.New(cfg)
	if err != nil {
		log.Fatalf("create token service: %v", err)
	}

	switch authtoken.TokenClass(*class) {
	case authtoken.ClassAccess, authtoken.ClassRefresh:
		var user *authtoken.ApiUser
		if authtoken.TokenClass(*class) == authtoken.ClassAccess {
			user, err = service.ParseAccessToken(*token)
		} else {
			user, err = service.ParseRefreshToken(*token)
		}
		if authtoken.IsExpired(err) {
			log.Fatalf("token is expired; present a refresh token or re-authenticate: %v", err)
		}
		if err != nil {
			log.Fatalf("validation failed: %v", err)
		}
		printUser(user)
	case authtoken.ClassCustomer:
		id, err := service.ParseCustomerToken(*token)
		if err != nil {
			log.Fatalf("validation failed: %v", err)
		}
		fmt.Println("== Customer Token Verified ==")
		fmt.Printf("customer_id : %d\n", id)
	default:
		flag.Usage()
		log.Fatalf("unknown token class %q", *class)
	}
}

func printUser(user *authtoken.ApiUser) {
	fmt.Println("== Token Verified ==")
	fmt.Printf("username       : %s\n", user.Username)
	fmt.Printf("user_id        : %d\n", user.UserID)
	fmt.Printf("cross_app_auth : %t\n", user.CrossAppAuth)
	if user.Role != "" {
		fmt.Printf("role           : %s\n", user.Role)
	}
}
