package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http/dto"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hub-cli",
		Short: "Debt hub CLI tool",
		Long:  `A command line interface for inspecting debts, chains and reputation scores.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the hub API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	scoreCmd := &cobra.Command{
		Use:   "score <user-id>",
		Short: "Show a user's reputation score",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showScore(args[0])
		},
	}
	rootCmd.AddCommand(scoreCmd)

	chainCmd := &cobra.Command{
		Use:   "chain",
		Short: "Chain operations",
	}

	chainInspectCmd := &cobra.Command{
		Use:   "inspect <debt-id>",
		Short: "Fetch a debt's chain and verify its invariants",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			inspectChain(args[0])
		},
	}

	chainCmd.AddCommand(chainInspectCmd)
	rootCmd.AddCommand(chainCmd)

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Score rule set operations",
	}

	rulesGetCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the active score rule set",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/rules/")
		},
	}

	rulesSetCmd := &cobra.Command{
		Use:   "set <rules.json>",
		Short: "Replace the score rule set from a JSON file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setRules(args[0])
		},
	}

	rulesCmd.AddCommand(rulesGetCmd, rulesSetCmd)
	rootCmd.AddCommand(rulesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func showScore(userID string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/users/" + userID + "/score")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Score lookup FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var details domain.ScoreDetails
	if err := json.Unmarshal(body, &details); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User:           %s\n", details.UserID)
	fmt.Printf("Score:          %d\n", details.Score)
	fmt.Printf("Classification: %s\n", details.Classification)
	fmt.Printf("Base/Earned/Lost: %d / %+d / %+d\n",
		details.Breakdown.Base, details.Breakdown.Earned, details.Breakdown.Lost)
	fmt.Printf("Events:\n")
	for _, ev := range details.History {
		fmt.Printf("  %s  %-18s %+5d  debt=%s\n",
			ev.Date.Format("2006-01-02"), ev.Reason, ev.Points, ev.DebtID)
	}
}

func inspectChain(debtID string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/debts/" + debtID + "/chain")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Chain lookup FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var responses []*dto.DebtResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	records := make([]*domain.Debt, len(responses))
	for i, resp := range responses {
		records[i] = resp.ToDomain()

		parent := "-"
		if resp.ParentDebtID != nil {
			parent = *resp.ParentDebtID
		}
		fmt.Printf("%s  status=%-4s remaining=%-10s paid=%-10s parent=%s\n",
			resp.ID, resp.Status, resp.RemainingAmount, resp.TotalPaidInChain, parent)
	}

	if err := domain.VerifyChain(records); err != nil {
		fmt.Printf("Chain verification FAILED: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Chain verification PASSED")
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
		return
	}

	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}

func setRules(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Failed to read %s: %v\n", path, err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPut, baseURL+"/api/v1/rules/", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Rules update FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Println("Rules updated")
}
