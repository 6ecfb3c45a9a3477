// Package appspec renders the CodeDeploy AppSpec document that routes
// traffic to the replacement task set during a blue/green deployment.
package appspec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// SchemaVersion is the AppSpec schema version CodeDeploy expects for
	// ECS deployments.
	SchemaVersion = "0.0"

	// TaskDefinitionPlaceholder is substituted with the registered task
	// definition ARN before the deployment is created.
	TaskDefinitionPlaceholder = "<TASK_DEFINITION>"

	// DefaultPlatformVersion is pinned so Fargate services get a known
	// platform rather than whatever LATEST resolves to.
	DefaultPlatformVersion = "1.4.0"

	targetServiceType = "AWS::ECS::Service"
)

// AppSpec is the deployment descriptor submitted to CodeDeploy.
type AppSpec struct {
	Version   string     `yaml:"version"`
	Resources []Resource `yaml:"Resources"`
}

// Resource wraps the single target service entry.
type Resource struct {
	TargetService TargetService `yaml:"TargetService"`
}

// TargetService names the ECS service being replaced.
type TargetService struct {
	Type       string     `yaml:"Type"`
	Properties Properties `yaml:"Properties"`
}

// Properties carries the task definition reference and traffic routing.
type Properties struct {
	TaskDefinition   string           `yaml:"TaskDefinition"`
	LoadBalancerInfo LoadBalancerInfo `yaml:"LoadBalancerInfo"`
	PlatformVersion  string           `yaml:"PlatformVersion,omitempty"`
}

// LoadBalancerInfo names the container and port receiving traffic.
type LoadBalancerInfo struct {
	ContainerName string `yaml:"ContainerName"`
	ContainerPort int32  `yaml:"ContainerPort"`
}

// New builds an AppSpec for the named container and port with the task
// definition left as a placeholder.
func New(containerName string, containerPort int32) *AppSpec {
	return &AppSpec{
		Version: SchemaVersion,
		Resources: []Resource{
			{
				TargetService: TargetService{
					Type: targetServiceType,
					Properties: Properties{
						TaskDefinition: TaskDefinitionPlaceholder,
						LoadBalancerInfo: LoadBalancerInfo{
							ContainerName: containerName,
							ContainerPort: containerPort,
						},
						PlatformVersion: DefaultPlatformVersion,
					},
				},
			},
		},
	}
}

// Encode renders the AppSpec as YAML.
func (s *AppSpec) Encode() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode appspec: %w", err)
	}
	return data, nil
}
