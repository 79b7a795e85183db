// Command smoke exercises a running API instance end to end: health,
// login, the public catalog reads and one guarded write. It exits
// non-zero when any check fails, so it can gate a deploy.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type check struct {
	Name       string
	Method     string
	Path       string
	Body       string
	WantStatus int
	Authorized bool
}

type result struct {
	Check    check
	Status   int
	Duration time.Duration
	Error    error
}

func main() {
	var (
		base     string
		username string
		password string
		timeout  time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&username, "username", "admin", "Admin username")
	flag.StringVar(&password, "password", "admin123", "Admin password")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}

	token, err := login(client, base, username, password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}

	checks := []check{
		{Name: "health", Method: http.MethodGet, Path: "/health", WantStatus: http.StatusOK},
		{Name: "ready", Method: http.MethodGet, Path: "/ready", WantStatus: http.StatusOK},
		{Name: "config", Method: http.MethodGet, Path: "/api/config", WantStatus: http.StatusOK},
		{Name: "collections", Method: http.MethodGet, Path: "/api/collections", WantStatus: http.StatusOK},
		{Name: "items", Method: http.MethodGet, Path: "/api/jewelry-items", WantStatus: http.StatusOK},
		{Name: "seed", Method: http.MethodPost, Path: "/api/init-demo-data", WantStatus: http.StatusOK},
		{Name: "config update", Method: http.MethodPut, Path: "/api/config", Body: `{}`, WantStatus: http.StatusOK, Authorized: true},
		{Name: "unauthorized write", Method: http.MethodPut, Path: "/api/config", Body: `{}`, WantStatus: http.StatusUnauthorized},
	}

	failed := 0
	var results []result
	for _, c := range checks {
		res := run(client, base, token, c)
		if res.Error != nil || res.Status != c.WantStatus {
			failed++
		}
		results = append(results, res)
	}

	printReport(results)
	fmt.Printf("Failed checks: %d/%d\n", failed, len(checks))
	if failed > 0 {
		os.Exit(1)
	}
}

func login(client *http.Client, base, username, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := client.Post(strings.TrimRight(base, "/")+"/api/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", err
	}
	if envelope.Data.Token == "" {
		return "", fmt.Errorf("no token in login response")
	}
	return envelope.Data.Token, nil
}

func run(client *http.Client, base, token string, c check) result {
	res := result{Check: c}

	var body io.Reader
	if c.Body != "" {
		body = strings.NewReader(c.Body)
	}
	req, err := http.NewRequest(c.Method, strings.TrimRight(base, "/")+c.Path, body)
	if err != nil {
		res.Error = err
		return res
	}
	if c.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Authorized {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err
		return res
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	res.Status = resp.StatusCode
	return res
}

func printReport(results []result) {
	for _, r := range results {
		status := "ok"
		detail := fmt.Sprintf("%d in %s", r.Status, r.Duration.Round(time.Millisecond))
		if r.Error != nil {
			status = "FAIL"
			detail = r.Error.Error()
		} else if r.Status != r.Check.WantStatus {
			status = "FAIL"
			detail = fmt.Sprintf("got %d, want %d", r.Status, r.Check.WantStatus)
		}
		fmt.Printf("%-20s %-4s %-25s %s (%s)\n", r.Check.Name, r.Check.Method, r.Check.Path, status, detail)
	}
}
