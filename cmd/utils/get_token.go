package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"recharge-travels-service/internal/infrastructure/config"
	"recharge-travels-service/internal/infrastructure/oauth"
	"recharge-travels-service/pkg/logger"

	"github.com/google/uuid"
)

// Prints a refresh token for GMAIL_REFRESH_TOKEN after a browser consent flow
func main() {
	log.SetFlags(0)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GmailClientID == "" || cfg.GmailClientSecret == "" {
		log.Fatal("GMAIL_CLIENT_ID and GMAIL_CLIENT_SECRET must be set")
	}

	googleOAuth := oauth.NewGoogleOAuth(
		cfg.GmailClientID,
		cfg.GmailClientSecret,
		"",
		"http://localhost:8090/oauth2callback",
		logger.NewLogger(),
	)

	state := uuid.NewString()

	http.HandleFunc("/oauth2callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := googleOAuth.ExchangeCode(context.Background(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to exchange code: %v", err), http.StatusInternalServerError)
			return
		}

		fmt.Printf("\nRefresh Token: %s\n\n", token.RefreshToken)
		fmt.Fprintf(w, "Authentication successful! You can close this window.")
		os.Exit(0)
	})

	fmt.Printf("Open this URL in your browser:\n%s\n", googleOAuth.GenerateAuthURL(state))

	log.Fatal(http.ListenAndServe(":8090", nil))
}
