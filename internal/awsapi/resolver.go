package awsapi

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"go.uber.org/zap"

	"github.com/withlaunch/bluectl/internal/logging"
	"github.com/withlaunch/bluectl/internal/taskdef"
)

// Resolver looks up the task definition a service is currently running.
type Resolver struct {
	api ECSAPI
}

// NewResolver creates a resolver backed by the given ECS client.
func NewResolver(api ECSAPI) *Resolver {
	return &Resolver{api: api}
}

// CurrentDefinition returns the live task definition for the named service:
// describe the service for its task definition ARN, then fetch the full
// document by ARN.
func (r *Resolver) CurrentDefinition(ctx context.Context, cluster, service string) (*taskdef.Definition, error) {
	logging.Debug("Describing service",
		zap.String("cluster", cluster),
		zap.String("service", service))

	svcOut, err := r.api.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(cluster),
		Services: []string{service},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe service %s/%s: %w", cluster, service, err)
	}
	if len(svcOut.Failures) > 0 {
		return nil, fmt.Errorf("failed to describe service %s/%s: %s",
			cluster, service, aws.ToString(svcOut.Failures[0].Reason))
	}
	if len(svcOut.Services) == 0 {
		return nil, fmt.Errorf("service %s not found in cluster %s", service, cluster)
	}

	arn := aws.ToString(svcOut.Services[0].TaskDefinition)
	if arn == "" {
		return nil, fmt.Errorf("service %s/%s has no task definition", cluster, service)
	}

	logging.Debug("Fetching task definition", zap.String("arn", arn))

	tdOut, err := r.api.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: aws.String(arn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe task definition %s: %w", arn, err)
	}
	if tdOut.TaskDefinition == nil {
		return nil, fmt.Errorf("task definition %s not found", arn)
	}

	return fromSDK(tdOut.TaskDefinition), nil
}
