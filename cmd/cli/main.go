package main

import (
	"fmt"
	"os"

	"github.com/openbounty/bounty-api/cmd/cli/issues"
	"github.com/openbounty/bounty-api/cmd/cli/projects"
	"github.com/openbounty/bounty-api/cmd/cli/root"
	"github.com/openbounty/bounty-api/cmd/cli/users"
)

func main() {
	rootCmd := root.GetRoot()
	users.InitUsers(rootCmd)
	projects.InitProjects(rootCmd)
	issues.InitIssues(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
