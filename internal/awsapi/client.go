// Package awsapi talks to the two AWS control planes this tool depends on:
// ECS for service and task definition state, CodeDeploy for the blue/green
// rollout itself.
package awsapi

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// ECSAPI is the subset of the ECS client this tool calls.
type ECSAPI interface {
	DescribeServices(ctx context.Context, params *ecs.DescribeServicesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error)
	DescribeTaskDefinition(ctx context.Context, params *ecs.DescribeTaskDefinitionInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTaskDefinitionOutput, error)
	RegisterTaskDefinition(ctx context.Context, params *ecs.RegisterTaskDefinitionInput, optFns ...func(*ecs.Options)) (*ecs.RegisterTaskDefinitionOutput, error)
}

// CodeDeployAPI is the subset of the CodeDeploy client this tool calls.
type CodeDeployAPI interface {
	CreateDeployment(ctx context.Context, params *codedeploy.CreateDeploymentInput, optFns ...func(*codedeploy.Options)) (*codedeploy.CreateDeploymentOutput, error)
}

// Clients bundles the service clients built from the default credential
// chain (environment, shared config, instance role).
type Clients struct {
	ECS        ECSAPI
	CodeDeploy CodeDeployAPI
}

// New loads the default AWS configuration and constructs the clients.
func New(ctx context.Context) (*Clients, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Clients{
		ECS:        ecs.NewFromConfig(cfg),
		CodeDeploy: codedeploy.NewFromConfig(cfg),
	}, nil
}
