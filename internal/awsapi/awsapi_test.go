package awsapi

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/codedeploy"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// fakeECS implements ECSAPI with canned responses.
type fakeECS struct {
	describeServicesOut       *ecs.DescribeServicesOutput
	describeServicesErr       error
	describeTaskDefinitionOut *ecs.DescribeTaskDefinitionOutput
	describeTaskDefinitionErr error
	registerOut               *ecs.RegisterTaskDefinitionOutput
	registerErr               error

	describeServicesIn       *ecs.DescribeServicesInput
	describeTaskDefinitionIn *ecs.DescribeTaskDefinitionInput
	registerIn               *ecs.RegisterTaskDefinitionInput
}

func (f *fakeECS) DescribeServices(ctx context.Context, params *ecs.DescribeServicesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error) {
	f.describeServicesIn = params
	return f.describeServicesOut, f.describeServicesErr
}

func (f *fakeECS) DescribeTaskDefinition(ctx context.Context, params *ecs.DescribeTaskDefinitionInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTaskDefinitionOutput, error) {
	f.describeTaskDefinitionIn = params
	return f.describeTaskDefinitionOut, f.describeTaskDefinitionErr
}

func (f *fakeECS) RegisterTaskDefinition(ctx context.Context, params *ecs.RegisterTaskDefinitionInput, optFns ...func(*ecs.Options)) (*ecs.RegisterTaskDefinitionOutput, error) {
	f.registerIn = params
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.registerOut == nil {
		return nil, fmt.Errorf("no canned register output")
	}
	return f.registerOut, nil
}

// fakeCodeDeploy implements CodeDeployAPI with canned responses.
type fakeCodeDeploy struct {
	createOut *codedeploy.CreateDeploymentOutput
	createErr error
	createIn  *codedeploy.CreateDeploymentInput
}

func (f *fakeCodeDeploy) CreateDeployment(ctx context.Context, params *codedeploy.CreateDeploymentInput, optFns ...func(*codedeploy.Options)) (*codedeploy.CreateDeploymentOutput, error) {
	f.createIn = params
	return f.createOut, f.createErr
}
