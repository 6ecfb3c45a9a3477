package awsapi

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy"
	cdtypes "github.com/aws/aws-sdk-go-v2/service/codedeploy/types"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/withlaunch/bluectl/internal/taskdef"
)

func deployRequest() DeploymentRequest {
	return DeploymentRequest{
		Definition: &taskdef.Definition{
			Family: "web-app",
			ContainerDefinitions: []taskdef.ContainerDefinition{
				{Name: "web", Image: "repo/img:2.0"},
			},
		},
		AppSpec:         []byte("version: 0.0\nTaskDefinition: <TASK_DEFINITION>\n"),
		Application:     "web-app",
		DeploymentGroup: "web-dg",
	}
}

func TestCreateDeployment(t *testing.T) {
	const arn = "arn:aws:ecs:us-east-1:123456789012:task-definition/web-app:4"

	ecsAPI := &fakeECS{
		registerOut: &ecs.RegisterTaskDefinitionOutput{
			TaskDefinition: &ecstypes.TaskDefinition{TaskDefinitionArn: aws.String(arn)},
		},
	}
	cdAPI := &fakeCodeDeploy{
		createOut: &codedeploy.CreateDeploymentOutput{
			DeploymentId: aws.String("d-ABCDEF123"),
		},
	}

	res, err := NewDeployer(ecsAPI, cdAPI).CreateDeployment(context.Background(), deployRequest())
	require.NoError(t, err)

	assert.Equal(t, arn, res.TaskDefinitionArn)
	assert.Equal(t, "d-ABCDEF123", res.DeploymentID)

	// The registered definition mirrors the document.
	require.NotNil(t, ecsAPI.registerIn)
	assert.Equal(t, "web-app", aws.ToString(ecsAPI.registerIn.Family))
	require.Len(t, ecsAPI.registerIn.ContainerDefinitions, 1)
	assert.Equal(t, "repo/img:2.0", aws.ToString(ecsAPI.registerIn.ContainerDefinitions[0].Image))

	// The submitted AppSpec carries the new ARN, not the placeholder.
	require.NotNil(t, cdAPI.createIn)
	assert.Equal(t, "web-app", aws.ToString(cdAPI.createIn.ApplicationName))
	assert.Equal(t, "web-dg", aws.ToString(cdAPI.createIn.DeploymentGroupName))
	require.Equal(t, cdtypes.RevisionLocationTypeAppSpecContent, cdAPI.createIn.Revision.RevisionType)
	content := aws.ToString(cdAPI.createIn.Revision.AppSpecContent.Content)
	assert.Contains(t, content, arn)
	assert.NotContains(t, content, "<TASK_DEFINITION>")
}

func TestCreateDeploymentRegisterFails(t *testing.T) {
	ecsAPI := &fakeECS{registerErr: fmt.Errorf("validation error")}
	cdAPI := &fakeCodeDeploy{}

	_, err := NewDeployer(ecsAPI, cdAPI).CreateDeployment(context.Background(), deployRequest())
	require.Error(t, err)
	assert.Nil(t, cdAPI.createIn, "CodeDeploy must not be called when registration fails")
}

func TestCreateDeploymentEmptyRegisterOutput(t *testing.T) {
	ecsAPI := &fakeECS{registerOut: &ecs.RegisterTaskDefinitionOutput{}}
	cdAPI := &fakeCodeDeploy{}

	_, err := NewDeployer(ecsAPI, cdAPI).CreateDeployment(context.Background(), deployRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no revision")
	assert.Nil(t, cdAPI.createIn, "CodeDeploy must not be called without a registered revision")
}

func TestCreateDeploymentCodeDeployFails(t *testing.T) {
	ecsAPI := &fakeECS{
		registerOut: &ecs.RegisterTaskDefinitionOutput{
			TaskDefinition: &ecstypes.TaskDefinition{
				TaskDefinitionArn: aws.String("arn:aws:ecs:us-east-1:123456789012:task-definition/web-app:4"),
			},
		},
	}
	cdAPI := &fakeCodeDeploy{createErr: fmt.Errorf("no such deployment group")}

	_, err := NewDeployer(ecsAPI, cdAPI).CreateDeployment(context.Background(), deployRequest())
	require.Error(t, err)
}

func TestToRegisterInputOnlySetsPresentFields(t *testing.T) {
	input := toRegisterInput(&taskdef.Definition{
		Family: "web-app",
		ContainerDefinitions: []taskdef.ContainerDefinition{
			{Name: "web", Image: "repo/img:2.0"},
		},
	})

	assert.Nil(t, input.ExecutionRoleArn)
	assert.Nil(t, input.TaskRoleArn)
	assert.Empty(t, input.NetworkMode)
	assert.Nil(t, input.Cpu)
	assert.Nil(t, input.Memory)
	assert.Nil(t, input.RequiresCompatibilities)
}
