// Package pipeline runs the deployment sequence: resolve the task
// definition, transform it, emit the deployment descriptor, and invoke the
// rollout. Control flows strictly forward; the first failing stage aborts
// the run and files already written stay on disk.
package pipeline

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/withlaunch/bluectl/internal/appspec"
	"github.com/withlaunch/bluectl/internal/artifact"
	"github.com/withlaunch/bluectl/internal/awsapi"
	"github.com/withlaunch/bluectl/internal/config"
	"github.com/withlaunch/bluectl/internal/history"
	"github.com/withlaunch/bluectl/internal/logging"
	"github.com/withlaunch/bluectl/internal/taskdef"
)

// Resolver obtains the task definition a service currently runs.
type Resolver interface {
	CurrentDefinition(ctx context.Context, cluster, service string) (*taskdef.Definition, error)
}

// Deployer submits a deployment to the orchestration service.
type Deployer interface {
	CreateDeployment(ctx context.Context, req awsapi.DeploymentRequest) (*awsapi.DeploymentResult, error)
}

// Pipeline wires the stages together. History may be nil when no journal
// is available.
type Pipeline struct {
	Resolver  Resolver
	Deployer  Deployer
	Fs        afero.Fs
	Artifacts *artifact.Writer
	History   *history.Store
}

// Result reports what one run produced.
type Result struct {
	TaskDefinitionArn string
	DeploymentID      string
	ContainerName     string
	TaskDefPath       string
	AppSpecPath       string
}

// Run executes the pipeline. With renderOnly the artifacts are written and
// no deployment is created.
func (p *Pipeline) Run(ctx context.Context, cfg *config.Deploy, renderOnly bool) (*Result, error) {
	res := &Result{}

	def, err := p.taskDefinition(ctx, cfg, res)
	if err != nil {
		return nil, err
	}

	descriptor, err := p.descriptor(cfg, def, res)
	if err != nil {
		return nil, err
	}

	if renderOnly {
		logging.Info("Render complete, skipping deployment")
		return res, nil
	}

	dep, err := p.Deployer.CreateDeployment(ctx, awsapi.DeploymentRequest{
		Definition:      def,
		AppSpec:         descriptor,
		Application:     cfg.CodeDeployApp,
		DeploymentGroup: cfg.CodeDeployGroup,
	})
	if err != nil {
		return nil, err
	}
	res.TaskDefinitionArn = dep.TaskDefinitionArn
	res.DeploymentID = dep.DeploymentID

	p.record(cfg, res)

	return res, nil
}

// taskDefinition produces the definition to submit. A caller-supplied file
// is trusted as-is: no image substitution happens on that path.
func (p *Pipeline) taskDefinition(ctx context.Context, cfg *config.Deploy, res *Result) (*taskdef.Definition, error) {
	if cfg.TaskDefinitionFile != "" {
		logging.Info("Using local task definition", zap.String("file", cfg.TaskDefinitionFile))

		data, err := afero.ReadFile(p.Fs, cfg.TaskDefinitionFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read task definition file: %w", err)
		}
		def, err := taskdef.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("invalid task definition file %s: %w", cfg.TaskDefinitionFile, err)
		}
		res.ContainerName = def.ContainerDefinitions[0].Name
		return def, nil
	}

	src, err := p.Resolver.CurrentDefinition(ctx, cfg.Cluster, cfg.Service)
	if err != nil {
		return nil, err
	}

	overrides, err := cfg.ImageOverrides()
	if err != nil {
		return nil, err
	}

	def, err := taskdef.Transform(src, overrides, cfg.TaskRole)
	if err != nil {
		return nil, err
	}
	res.ContainerName = def.ContainerDefinitions[0].Name

	data, err := def.Encode()
	if err != nil {
		return nil, err
	}
	if err := p.Artifacts.Write(cfg.TaskDefPath, data); err != nil {
		return nil, err
	}
	res.TaskDefPath = cfg.TaskDefPath

	return def, nil
}

// descriptor produces the AppSpec bytes, either from the caller's file or
// by rendering one for the first container and the supplied port.
func (p *Pipeline) descriptor(cfg *config.Deploy, def *taskdef.Definition, res *Result) ([]byte, error) {
	if cfg.AppSpecFile != "" {
		logging.Info("Using local appspec", zap.String("file", cfg.AppSpecFile))

		data, err := afero.ReadFile(p.Fs, cfg.AppSpecFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read appspec file: %w", err)
		}
		return data, nil
	}

	spec := appspec.New(def.ContainerDefinitions[0].Name, cfg.ContainerPort)
	data, err := spec.Encode()
	if err != nil {
		return nil, err
	}
	if err := p.Artifacts.Write(cfg.AppSpecPath, data); err != nil {
		return nil, err
	}
	res.AppSpecPath = cfg.AppSpecPath

	return data, nil
}

// record appends to the local journal. Failures are logged and never abort
// a deployment that already succeeded.
func (p *Pipeline) record(cfg *config.Deploy, res *Result) {
	if p.History == nil {
		return
	}

	err := p.History.Append(&history.Record{
		Cluster:           cfg.Cluster,
		Service:           cfg.Service,
		Images:            cfg.Images,
		TaskDefinitionArn: res.TaskDefinitionArn,
		DeploymentID:      res.DeploymentID,
		Application:       cfg.CodeDeployApp,
		DeploymentGroup:   cfg.CodeDeployGroup,
	})
	if err != nil {
		logging.Warn("Failed to record deployment in journal", zap.Error(err))
	}
}
