package issues

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openbounty/bounty-api/cmd/cli/config"
	"github.com/openbounty/bounty-api/cmd/cli/output"
	"github.com/openbounty/bounty-api/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// Init Issues
// ==========================
func InitIssues(rootCmd *cobra.Command) {

	issuesCmd := &cobra.Command{
		Use:   "issues",
		Short: "Manage issues and bounties",
	}

	issuesCmd.AddCommand(
		listIssuesCmd(),
		createIssueCmd(),
		setStatusCmd(),
	)

	rootCmd.AddCommand(issuesCmd)
}

// ==========================
// LIST
// ==========================
func listIssuesCmd() *cobra.Command {
	var asJSON bool
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues",
		Run: func(cmd *cobra.Command, args []string) {

			url := config.APIURL() + "/issues"
			if project != "" {
				url += "?project_id=" + project
			}

			resp, err := http.Get(url)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var issues []models.Issue
			if err := json.NewDecoder(resp.Body).Decode(&issues); err != nil {
				fmt.Println(err)
				return
			}

			if asJSON {
				b, _ := json.MarshalIndent(issues, "", "  ")
				fmt.Println(string(b))
				return
			}

			rows := make([][]interface{}, 0, len(issues))
			for _, iss := range issues {
				rows = append(rows, []interface{}{
					iss.ID, iss.Title, iss.Status, iss.BountyValue, iss.CreatedAt.Format("2006-01-02"),
				})
			}
			output.RenderTable([]string{"ID", "Title", "Status", "Bounty", "Created"}, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	cmd.Flags().StringVar(&project, "project", "", "filter by project id")

	return cmd
}

// ==========================
// CREATE
// ==========================
func createIssueCmd() *cobra.Command {

	var project, title, description string
	var bounty float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create issue",
		Run: func(cmd *cobra.Command, args []string) {

			token, err := config.LoadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			payload := map[string]interface{}{
				"project_id":   project,
				"title":        title,
				"description":  description,
				"bounty_value": bounty,
			}

			body, _ := json.Marshal(payload)

			req, _ := http.NewRequest("POST", config.APIURL()+"/issues", bytes.NewBuffer(body))
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var out any
			json.NewDecoder(resp.Body).Decode(&out)
			b, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(b))
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "project id")
	cmd.Flags().StringVar(&title, "title", "", "issue title")
	cmd.Flags().StringVar(&description, "description", "", "issue description")
	cmd.Flags().Float64Var(&bounty, "bounty", 0, "bounty value")

	return cmd
}

// ==========================
// SET STATUS
// ==========================
func setStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <open|in_review|approved|disputed>",
		Short: "Set issue status",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {

			token, err := config.LoadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			body, _ := json.Marshal(map[string]string{"status": args[1]})

			req, _ := http.NewRequest("PATCH", config.APIURL()+"/issues/"+args[0]+"/status", bytes.NewBuffer(body))
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusNoContent {
				fmt.Println("Status updated.")
				return
			}
			var out any
			json.NewDecoder(resp.Body).Decode(&out)
			b, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(b))
		},
	}
}
