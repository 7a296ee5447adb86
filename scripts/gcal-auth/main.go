// Command gcal-auth authorizes the Google Calendar mirror for installed-app
// credentials and saves the OAuth token where the planner reads it.
//
// Usage:
//
//	go run ./scripts/gcal-auth -credentials google-credentials.json -token token.json
//
// Service account credentials need no token; skip this step for them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"

	"daily-planner/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop-app credentials file")
	tokenPath := flag.String("token", gcalendar.DefaultTokenPath, "where to save the token (google_calendar.token_path)")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	cfg, err := gcalendar.InstalledAppConfig(data)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	fmt.Println("1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(cfg.AuthCodeURL("planner-auth", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := cfg.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}
	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nToken saved to %s. Restart the planner to enable the calendar mirror.\n", *tokenPath)
}
