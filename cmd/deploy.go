package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/withlaunch/bluectl/internal/artifact"
	"github.com/withlaunch/bluectl/internal/awsapi"
	"github.com/withlaunch/bluectl/internal/config"
	"github.com/withlaunch/bluectl/internal/history"
	"github.com/withlaunch/bluectl/internal/logging"
	"github.com/withlaunch/bluectl/internal/pipeline"
)

var (
	cluster         string
	service         string
	images          []string
	codedeployApp   string
	codedeployGroup string
	containerPort   int32
	taskDefFile     string
	appSpecFile     string
	taskRole        string
	taskDefOut      string
	appSpecOut      string
	noRecord        bool
)

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy a new container image to an ECS service",
	Long: `Deploy a new container image to an ECS service via a blue/green
CodeDeploy rollout. The service's current task definition is fetched, its
container images are replaced, the new revision is registered, and a
deployment is created. The rollout itself is not polled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()
		if err := cfg.Validate(true); err != nil {
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

		p := newPipeline(clients)
		p.History = openJournal()
		if p.History != nil {
			defer p.History.Close()
		}

		res, err := p.Run(ctx, cfg, false)
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s deployment %s created for %s/%s (task definition %s)\n",
			green("✔"), res.DeploymentID, cfg.Cluster, cfg.Service, res.TaskDefinitionArn)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deployCmd)
	addPipelineFlags(deployCmd)
	deployCmd.Flags().StringVar(&codedeployApp, "codedeploy-application", "", "CodeDeploy application name")
	deployCmd.Flags().StringVar(&codedeployGroup, "codedeploy-deployment-group", "", "CodeDeploy deployment group name")
	deployCmd.Flags().BoolVar(&noRecord, "no-record", false, "skip the local deployment journal")
}

// addPipelineFlags registers the flags shared by deploy and render.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cluster, "cluster", "", "ECS cluster name")
	cmd.Flags().StringVar(&service, "service", "", "ECS service name")
	cmd.Flags().StringArrayVar(&images, "image", nil, "new image reference, or container=reference (repeatable)")
	cmd.Flags().Int32Var(&containerPort, "container-port", 0, "container port receiving load balancer traffic")
	cmd.Flags().StringVar(&taskDefFile, "task-definition-file", "", "submit this task definition file verbatim (skips resolve and image substitution)")
	cmd.Flags().StringVar(&appSpecFile, "appspec-file", "", "use this deployment descriptor instead of rendering one")
	cmd.Flags().StringVar(&taskRole, "iam-role", "", "override the task role ARN on the transformed definition")
	cmd.Flags().StringVar(&taskDefOut, "task-def-out", "", "path for the transformed task definition (default "+config.DefaultTaskDefPath+")")
	cmd.Flags().StringVar(&appSpecOut, "appspec-out", "", "path for the rendered deployment descriptor (default "+config.DefaultAppSpecPath+")")
}

// pipelineConfig assembles the run configuration once from flags. Every
// value not set on the command line falls back to the config file; the two
// output paths additionally fall back to their defaults.
func pipelineConfig() *config.Deploy {
	cfg := &config.Deploy{
		Cluster:            stringValue(cluster, "cluster"),
		Service:            stringValue(service, "service"),
		CodeDeployApp:      stringValue(codedeployApp, "codedeploy-application"),
		CodeDeployGroup:    stringValue(codedeployGroup, "codedeploy-deployment-group"),
		ContainerPort:      containerPort,
		Images:             images,
		TaskRole:           stringValue(taskRole, "iam-role"),
		TaskDefinitionFile: stringValue(taskDefFile, "task-definition-file"),
		AppSpecFile:        stringValue(appSpecFile, "appspec-file"),
		TaskDefPath:        stringValue(taskDefOut, "task-def-out"),
		AppSpecPath:        stringValue(appSpecOut, "appspec-out"),
	}
	if cfg.ContainerPort == 0 {
		cfg.ContainerPort = viper.GetInt32("container-port")
	}
	if len(cfg.Images) == 0 {
		cfg.Images = viper.GetStringSlice("image")
	}
	if cfg.TaskDefPath == "" {
		cfg.TaskDefPath = config.DefaultTaskDefPath
	}
	if cfg.AppSpecPath == "" {
		cfg.AppSpecPath = config.DefaultAppSpecPath
	}
	return cfg
}

// stringValue prefers the flag value over the config file.
func stringValue(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}

// newPipeline wires the pipeline onto the real filesystem and AWS clients.
func newPipeline(clients *awsapi.Clients) *pipeline.Pipeline {
	fs := afero.NewOsFs()
	return &pipeline.Pipeline{
		Resolver:  awsapi.NewResolver(clients.ECS),
		Deployer:  awsapi.NewDeployer(clients.ECS, clients.CodeDeploy),
		Fs:        fs,
		Artifacts: artifact.NewWriter(fs),
	}
}

// openJournal opens the local deployment journal. The journal is best
// effort: any failure is logged and the deploy proceeds without it.
func openJournal() *history.Store {
	if noRecord {
		return nil
	}

	path, err := history.DefaultPath()
	if err != nil {
		logging.Warn("Deployment journal unavailable", zap.Error(err))
		return nil
	}

	store := history.NewStore(&history.Options{Path: path})
	if err := store.Open(); err != nil {
		logging.Warn("Failed to open deployment journal", zap.Error(err))
		return nil
	}
	return store
}
