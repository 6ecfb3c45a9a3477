package awsapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy"
	cdtypes "github.com/aws/aws-sdk-go-v2/service/codedeploy/types"
	"go.uber.org/zap"

	"github.com/withlaunch/bluectl/internal/appspec"
	"github.com/withlaunch/bluectl/internal/logging"
	"github.com/withlaunch/bluectl/internal/taskdef"
)

// DeploymentRequest carries everything needed to start one blue/green
// rollout.
type DeploymentRequest struct {
	Definition      *taskdef.Definition
	AppSpec         []byte
	Application     string
	DeploymentGroup string
}

// DeploymentResult reports what the control planes created.
type DeploymentResult struct {
	TaskDefinitionArn string
	DeploymentID      string
}

// Deployer registers the task definition revision and creates the
// CodeDeploy deployment. Fire and forget: the rollout is not polled.
type Deployer struct {
	ecs        ECSAPI
	codedeploy CodeDeployAPI
}

// NewDeployer creates a deployer backed by the given clients.
func NewDeployer(ecsAPI ECSAPI, cdAPI CodeDeployAPI) *Deployer {
	return &Deployer{ecs: ecsAPI, codedeploy: cdAPI}
}

// CreateDeployment registers the task definition, substitutes the new
// revision's ARN into the AppSpec, and submits the deployment to the named
// application and deployment group.
func (d *Deployer) CreateDeployment(ctx context.Context, req DeploymentRequest) (*DeploymentResult, error) {
	regOut, err := d.ecs.RegisterTaskDefinition(ctx, toRegisterInput(req.Definition))
	if err != nil {
		return nil, fmt.Errorf("failed to register task definition %q: %w", req.Definition.Family, err)
	}
	if regOut.TaskDefinition == nil {
		return nil, fmt.Errorf("register task definition %q returned no revision", req.Definition.Family)
	}
	arn := aws.ToString(regOut.TaskDefinition.TaskDefinitionArn)

	logging.Info("Registered task definition revision", zap.String("arn", arn))

	content := strings.ReplaceAll(string(req.AppSpec), appspec.TaskDefinitionPlaceholder, arn)

	depOut, err := d.codedeploy.CreateDeployment(ctx, &codedeploy.CreateDeploymentInput{
		ApplicationName:     aws.String(req.Application),
		DeploymentGroupName: aws.String(req.DeploymentGroup),
		Revision: &cdtypes.RevisionLocation{
			RevisionType: cdtypes.RevisionLocationTypeAppSpecContent,
			AppSpecContent: &cdtypes.AppSpecContent{
				Content: aws.String(content),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create deployment in %s/%s: %w",
			req.Application, req.DeploymentGroup, err)
	}

	return &DeploymentResult{
		TaskDefinitionArn: arn,
		DeploymentID:      aws.ToString(depOut.DeploymentId),
	}, nil
}
