package authctl

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// Register prompts for credentials and creates the account through the
// server's public endpoint. On success the issued token is printed.
func (a *App) Register(ctx context.Context, args []string) error {

	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	addr := fs.String("addr", "http://localhost:8080", "server base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	body, err := json.Marshal(registerRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *addr+"/register", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("unexpected response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server rejected registration: %s", parsed.Error)
	}

	fmt.Fprintf(a.out, "Registered %s\nToken: %s\n", email, parsed.Token)
	return nil
}
