// Package config holds the deploy configuration assembled once from flags
// and the config file, then threaded through each pipeline stage.
package config

import (
	"fmt"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"

	"github.com/withlaunch/bluectl/internal/taskdef"
)

const (
	// DefaultTaskDefPath is where the transformed task definition is written.
	DefaultTaskDefPath = "task_def.json"

	// DefaultAppSpecPath is where the rendered deployment descriptor is written.
	DefaultAppSpecPath = "appspec_ecs.yaml"
)

// Deploy is the full configuration for one deployment run.
type Deploy struct {
	Cluster         string
	Service         string
	CodeDeployApp   string
	CodeDeployGroup string
	ContainerPort   int32

	// Images holds the raw --image flag values, parsed by ImageOverrides.
	Images []string

	// TaskRole, when set, overrides taskRoleArn on the transformed definition.
	TaskRole string

	// TaskDefinitionFile bypasses the resolver and transformer: the file is
	// submitted as the task definition with no image substitution.
	TaskDefinitionFile string

	// AppSpecFile bypasses the descriptor emitter.
	AppSpecFile string

	TaskDefPath string
	AppSpecPath string
}

// Validate checks the required fields and reports the first one missing.
// The CodeDeploy identifiers are only required when a deployment will
// actually be created (render runs skip them).
func (c *Deploy) Validate(requireCodeDeploy bool) error {
	if c.Cluster == "" {
		return fmt.Errorf("cluster is required")
	}
	if c.Service == "" {
		return fmt.Errorf("service is required")
	}
	if len(c.Images) == 0 {
		return fmt.Errorf("at least one image is required")
	}
	if c.ContainerPort <= 0 || c.ContainerPort > 65535 {
		return fmt.Errorf("container port must be between 1 and 65535")
	}
	if requireCodeDeploy {
		if c.CodeDeployApp == "" {
			return fmt.Errorf("codedeploy application is required")
		}
		if c.CodeDeployGroup == "" {
			return fmt.Errorf("codedeploy deployment group is required")
		}
	}
	return nil
}

// ImageOverrides parses the --image flag values. A single bare reference
// applies to every container; repeated name=reference pairs target
// individual containers. The two forms cannot be mixed. Every reference is
// validated as an OCI image reference.
func (c *Deploy) ImageOverrides() (taskdef.ImageOverrides, error) {
	overrides := taskdef.ImageOverrides{}

	for _, raw := range c.Images {
		container, ref, isPair := strings.Cut(raw, "=")
		if !isPair {
			ref = raw
		}

		if _, err := name.ParseReference(ref); err != nil {
			return taskdef.ImageOverrides{}, fmt.Errorf("invalid image reference %q: %w", ref, err)
		}

		if isPair {
			if container == "" {
				return taskdef.ImageOverrides{}, fmt.Errorf("empty container name in image override %q", raw)
			}
			if overrides.PerContainer == nil {
				overrides.PerContainer = make(map[string]string)
			}
			if _, dup := overrides.PerContainer[container]; dup {
				return taskdef.ImageOverrides{}, fmt.Errorf("duplicate image override for container %q", container)
			}
			overrides.PerContainer[container] = ref
			continue
		}

		if overrides.Default != "" {
			return taskdef.ImageOverrides{}, fmt.Errorf("only one bare image reference may be supplied")
		}
		overrides.Default = ref
	}

	if overrides.Default != "" && overrides.PerContainer != nil {
		return taskdef.ImageOverrides{}, fmt.Errorf("cannot mix a bare image reference with container=reference overrides")
	}

	return overrides, nil
}
