package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type predictionResponse struct {
	Prediction string `json:"prediction"`
	RiskLevel  string `json:"risk_level"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("CHURN_API_URL")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8000"
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Churn Predictor")
	action := prompt(reader, "login or register", "login")
	username := prompt(reader, "username", "")
	password := promptPassword()

	token, err := authenticate(baseURL, action, username, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Welcome, %s!\n", username)

	for {
		payload := collectCustomer(reader)
		result, err := predict(baseURL, token, payload)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Printf("\nPrediction: %s\nRisk level: %s\n\n", result.Prediction, result.RiskLevel)
		}

		if prompt(reader, "another prediction? (y/n)", "n") != "y" {
			return
		}
	}
}

// collectCustomer asks for the ten customer fields with the same defaults
// the original form used. Keys are the literal column names the API expects.
func collectCustomer(reader *bufio.Reader) map[string]any {
	payload := map[string]any{}
	payload["Age"] = promptInt(reader, "Age (3-110)", 20)
	payload["Gender"] = prompt(reader, "Gender (Male/Female)", "Male")
	payload["Tenure"] = promptFloat(reader, "Tenure in months (1-60)", 30)
	payload["Usage Frequency"] = promptFloat(reader, "Usage frequency (1-30)", 15)
	payload["Support Calls"] = promptFloat(reader, "Support calls (0-10)", 5)
	payload["Payment Delay"] = promptFloat(reader, "Payment delay (0-30)", 15)
	payload["Subscription Type"] = prompt(reader, "Subscription type (Standard/Basic/Premium)", "Standard")
	payload["Contract Length"] = prompt(reader, "Contract length (Annual/Monthly/Quarterly)", "Monthly")
	payload["Total Spend"] = promptFloat(reader, "Total spend (100-1000)", 550)
	payload["Last Interaction"] = promptFloat(reader, "Last interaction (1-30)", 15)
	return payload
}

func authenticate(baseURL, action, username, password string) (string, error) {
	path := "/login"
	if action == "register" {
		path = "/register"
	}

	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("connection failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s failed: %s", strings.TrimPrefix(path, "/"), readError(resp))
	}

	var tokens tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	return tokens.AccessToken, nil
}

func predict(baseURL, token string, payload map[string]any) (*predictionResponse, error) {
	body, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prediction failed: %s", readError(resp))
	}

	var result predictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}
	return &result, nil
}

func readError(resp *http.Response) string {
	var detail errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil && detail.Error != "" {
		return detail.Error
	}
	return resp.Status
}

func prompt(reader *bufio.Reader, label, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s [%s]: ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

func promptInt(reader *bufio.Reader, label string, fallback int) int {
	for {
		raw := prompt(reader, label, strconv.Itoa(fallback))
		value, err := strconv.Atoi(raw)
		if err == nil {
			return value
		}
		fmt.Println("please enter a whole number")
	}
}

func promptFloat(reader *bufio.Reader, label string, fallback float64) float64 {
	for {
		raw := prompt(reader, label, strconv.FormatFloat(fallback, 'f', -1, 64))
		value, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return value
		}
		fmt.Println("please enter a number")
	}
}

func promptPassword() string {
	fmt.Print("password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("failed to read password: %v", err)
	}
	return string(raw)
}
