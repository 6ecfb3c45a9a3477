package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/withlaunch/bluectl/internal/awsapi"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the deployment artifacts without deploying",
	Long: `Render the transformed task definition and deployment descriptor to
disk without registering anything or creating a deployment. Useful for
inspecting what a deploy would submit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()
		if err := cfg.Validate(false); err != nil {
			return err
		}
		if _, err := cfg.ImageOverrides(); err != nil {
			return err
		}

		ctx := cmd.Context()

		clients, err := awsapi.New(ctx)
		if err != nil {
			return err
		}

		res, err := newPipeline(clients).Run(ctx, cfg, true)
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		if res.TaskDefPath != "" {
			fmt.Printf("%s wrote %s\n", green("✔"), res.TaskDefPath)
		}
		if res.AppSpecPath != "" {
			fmt.Printf("%s wrote %s\n", green("✔"), res.AppSpecPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addPipelineFlags(renderCmd)
}
