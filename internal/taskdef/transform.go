package taskdef

import (
	"fmt"
)

// ImageOverrides selects the new image reference for each container.
// Default applies to every container; PerContainer entries are keyed by
// container name and take precedence. Exactly one of the two forms is
// populated by flag parsing.
type ImageOverrides struct {
	Default      string
	PerContainer map[string]string
}

// For returns the override for the named container, if any.
func (o ImageOverrides) For(container string) (string, bool) {
	if img, ok := o.PerContainer[container]; ok {
		return img, true
	}
	if o.Default != "" {
		return o.Default, true
	}
	return "", false
}

// Transform produces a new task definition ready for registration. The
// source is never mutated.
//
// The output always carries family, executionRoleArn, containerDefinitions
// (with images overwritten per the overrides), volumes and
// placementConstraints. networkMode and taskRoleArn are carried only when
// the source document has them; taskRole, when non-empty, overrides
// taskRoleArn regardless. When the source requires FARGATE compatibility
// the output additionally carries requiresCompatibilities, cpu and memory.
// Every other task-level field (ipcMode, pidMode, ephemeralStorage,
// runtimePlatform, proxyConfiguration, inference accelerators) is carried
// exactly when the source declares it. Nothing is ever fabricated: every
// value in the output comes from the source document or the caller.
func Transform(src *Definition, images ImageOverrides, taskRole string) (*Definition, error) {
	if len(src.ContainerDefinitions) == 0 {
		return nil, fmt.Errorf("task definition %q has no container definitions", src.Family)
	}
	if err := checkOverrides(src, images); err != nil {
		return nil, err
	}

	out := &Definition{
		Family:                src.Family,
		ExecutionRoleArn:      src.ExecutionRoleArn,
		Volumes:               src.Volumes,
		PlacementConstraints:  src.PlacementConstraints,
		IpcMode:               src.IpcMode,
		PidMode:               src.PidMode,
		EphemeralStorage:      src.EphemeralStorage,
		RuntimePlatform:       src.RuntimePlatform,
		ProxyConfiguration:    src.ProxyConfiguration,
		InferenceAccelerators: src.InferenceAccelerators,
		EnableFaultInjection:  src.EnableFaultInjection,
		Tags:                  src.Tags,
	}

	out.ContainerDefinitions = make([]ContainerDefinition, len(src.ContainerDefinitions))
	for i, c := range src.ContainerDefinitions {
		if img, ok := images.For(c.Name); ok {
			c.Image = img
		}
		out.ContainerDefinitions[i] = c
	}

	if src.NetworkMode != "" {
		out.NetworkMode = src.NetworkMode
	}
	switch {
	case taskRole != "":
		out.TaskRoleArn = taskRole
	case src.TaskRoleArn != "":
		out.TaskRoleArn = src.TaskRoleArn
	}

	if src.RequiresFargate() {
		out.RequiresCompatibilities = src.RequiresCompatibilities
		out.CPU = src.CPU
		out.Memory = src.Memory
	}

	return out, nil
}

// checkOverrides rejects per-container overrides that name a container the
// definition does not have.
func checkOverrides(src *Definition, images ImageOverrides) error {
	for name := range images.PerContainer {
		found := false
		for _, c := range src.ContainerDefinitions {
			if c.Name == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no container named %q in task definition %q", name, src.Family)
		}
	}
	return nil
}
