package projects

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/openbounty/bounty-api/cmd/cli/config"
	"github.com/openbounty/bounty-api/cmd/cli/output"
	"github.com/openbounty/bounty-api/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// Init Projects
// ==========================
func InitProjects(rootCmd *cobra.Command) {

	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
	}

	projectsCmd.AddCommand(
		listProjectsCmd(),
		createProjectCmd(),
		deleteProjectCmd(),
	)

	rootCmd.AddCommand(projectsCmd)
}

// ==========================
// LIST
// ==========================
func listProjectsCmd() *cobra.Command {
	var asJSON bool
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Run: func(cmd *cobra.Command, args []string) {

			url := config.APIURL() + "/projects"
			if owner != "" {
				url += "?owner_id=" + owner
			}

			resp, err := http.Get(url)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var projects []models.Project
			if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
				fmt.Println(err)
				return
			}

			if asJSON {
				b, _ := json.MarshalIndent(projects, "", "  ")
				fmt.Println(string(b))
				return
			}

			rows := make([][]interface{}, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []interface{}{
					p.ID, p.Name, p.Description, strings.Join(p.Tags, ","), p.CreatedAt.Format("2006-01-02"),
				})
			}
			output.RenderTable([]string{"ID", "Name", "Description", "Tags", "Created"}, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	cmd.Flags().StringVar(&owner, "owner", "", "filter by owner id")

	return cmd
}

// ==========================
// CREATE
// ==========================
func createProjectCmd() *cobra.Command {

	var name, description, githubLink string
	var tags []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create project",
		Run: func(cmd *cobra.Command, args []string) {

			token, err := config.LoadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			payload := map[string]interface{}{
				"name":        name,
				"description": description,
				"github_link": githubLink,
				"tags":        tags,
			}

			body, _ := json.Marshal(payload)

			req, _ := http.NewRequest("POST", config.APIURL()+"/projects", bytes.NewBuffer(body))
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

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&description, "description", "", "project description")
	cmd.Flags().StringVar(&githubLink, "github-link", "", "repository link")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "project tags")

	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete project",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {

			token, err := config.LoadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			req, _ := http.NewRequest("DELETE", config.APIURL()+"/projects/"+args[0], nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusNoContent {
				fmt.Println("Project deleted.")
				return
			}
			var out any
			json.NewDecoder(resp.Body).Decode(&out)
			b, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(b))
		},
	}
}
