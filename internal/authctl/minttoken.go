package authctl

import (
	"flag"
	"fmt"
	"time"

	"github.com/Wilovy09/pgmq-test/internal/server/auth"
	"github.com/Wilovy09/pgmq-test/internal/server/models"
)

// MintToken signs an access token locally without talking to the server.
// It needs the same secret the server was started with.
func (a *App) MintToken(args []string) error {

	fs := flag.NewFlagSet("mint-token", flag.ContinueOnError)
	secret := fs.String("secret", "", "server signing secret (required)")
	userID := fs.String("user", "", "subject user id (required)")
	role := fs.String("role", models.DefaultRoleName, "subject role")
	issuer := fs.String("issuer", "pgmq", "iss claim value")
	minutes := fs.Int("minutes", 120, "token validity in minutes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *secret == "" {
		return fmt.Errorf("-secret is required")
	}
	if *userID == "" {
		return fmt.Errorf("-user is required")
	}

	token, err := auth.GenerateToken(*issuer, time.Duration(*minutes)*time.Minute,
		auth.TokenTypeAccess, *userID, *role, []byte(*secret))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}
