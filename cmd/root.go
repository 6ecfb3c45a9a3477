package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/withlaunch/bluectl/internal/logging"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bluectl",
	Short: "Blue/green deployments for Amazon ECS services",
	Long: `bluectl updates an Amazon ECS service's container image through a
blue/green CodeDeploy rollout. It resolves the service's current task
definition, patches the image, renders the deployment descriptor, and
creates the deployment.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		logging.Error("Command execution failed", zap.Error(err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/bluectl/bluectl.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")

	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home + "/.config/bluectl")
		viper.SetConfigType("yaml")
		viper.SetConfigName("bluectl")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := logging.Init(logLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := viper.ReadInConfig(); err == nil {
		logging.Info("Using config file", zap.String("file", viper.ConfigFileUsed()))
	}
}
