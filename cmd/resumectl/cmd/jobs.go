package cmd

import (
	"github.com/spf13/cobra"

	"resume-intel/internal/experience"
	"resume-intel/internal/jobrec"
	"resume-intel/internal/knowledge"
	"resume-intel/internal/skills"
)

var gapCmd = &cobra.Command{
	Use:   "gap <resume-file> <target-role>",
	Short: "Show the skill gap between a resume and a target role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, err := loadResume(args[0])
		if err != nil {
			return err
		}
		profile := skills.Analyze(resume)

		gap, err := jobrec.AnalyzeGap(&profile, args[1])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), gap)
	},
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <resume-file> <target-role>",
	Short: "Build a career roadmap toward a target role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, err := loadResume(args[0])
		if err != nil {
			return err
		}
		profile := skills.Analyze(resume)
		expProfile := experience.Analyze(resume)

		roadmap, err := jobrec.BuildRoadmap(&profile, expProfile, args[1])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), roadmap)
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the known job roles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		roles := make([]knowledge.Role, 0, len(knowledge.Roles))
		for _, id := range knowledge.RoleIDs() {
			roles = append(roles, knowledge.Roles[id])
		}
		return printJSON(cmd.OutOrStdout(), roles)
	},
}

func init() {
	rootCmd.AddCommand(gapCmd, roadmapCmd, rolesCmd)
}
