package taskdef

import (
	"bytes"
	"testing"
)

func sampleDefinition() *Definition {
	return &Definition{
		Family:           "web-app",
		ExecutionRoleArn: "arn:aws:iam::123456789012:role/ecsTaskExecutionRole",
		ContainerDefinitions: []ContainerDefinition{
			{
				Name:  "web",
				Image: "repo/img:1.0",
				PortMappings: []PortMapping{
					{ContainerPort: 8080},
				},
			},
		},
	}
}

func TestTransformReplacesAllImages(t *testing.T) {
	src := sampleDefinition()
	src.ContainerDefinitions = append(src.ContainerDefinitions, ContainerDefinition{
		Name:  "sidecar",
		Image: "repo/sidecar:1.0",
	})

	out, err := Transform(src, ImageOverrides{Default: "repo/img:2.0"}, "")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	if len(out.ContainerDefinitions) != 2 {
		t.Fatalf("Expected 2 containers, got %d", len(out.ContainerDefinitions))
	}
	for _, c := range out.ContainerDefinitions {
		if c.Image != "repo/img:2.0" {
			t.Errorf("Container %s image = %q, want %q", c.Name, c.Image, "repo/img:2.0")
		}
	}

	// Source must not be mutated.
	if src.ContainerDefinitions[0].Image != "repo/img:1.0" {
		t.Errorf("Source definition was mutated: image = %q", src.ContainerDefinitions[0].Image)
	}
}

func TestTransformPerContainerOverrides(t *testing.T) {
	src := sampleDefinition()
	src.ContainerDefinitions = append(src.ContainerDefinitions, ContainerDefinition{
		Name:  "sidecar",
		Image: "repo/sidecar:1.0",
	})

	out, err := Transform(src, ImageOverrides{
		PerContainer: map[string]string{"web": "repo/img:2.0"},
	}, "")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	if got := out.ContainerDefinitions[0].Image; got != "repo/img:2.0" {
		t.Errorf("web image = %q, want %q", got, "repo/img:2.0")
	}
	// Containers without an override keep their source image.
	if got := out.ContainerDefinitions[1].Image; got != "repo/sidecar:1.0" {
		t.Errorf("sidecar image = %q, want %q", got, "repo/sidecar:1.0")
	}
}

func TestTransformRejectsUnknownContainer(t *testing.T) {
	src := sampleDefinition()

	_, err := Transform(src, ImageOverrides{
		PerContainer: map[string]string{"nope": "repo/img:2.0"},
	}, "")
	if err == nil {
		t.Fatal("Expected error for unknown container override")
	}
}

func TestTransformConditionalFields(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*Definition)
		taskRole        string
		wantNetworkMode string
		wantTaskRole    string
	}{
		{
			name:   "absent fields stay absent",
			mutate: func(d *Definition) {},
		},
		{
			name:            "networkMode carried when present",
			mutate:          func(d *Definition) { d.NetworkMode = "awsvpc" },
			wantNetworkMode: "awsvpc",
		},
		{
			name:         "taskRoleArn carried when present",
			mutate:       func(d *Definition) { d.TaskRoleArn = "arn:aws:iam::123456789012:role/app" },
			wantTaskRole: "arn:aws:iam::123456789012:role/app",
		},
		{
			name:         "role override wins over source",
			mutate:       func(d *Definition) { d.TaskRoleArn = "arn:aws:iam::123456789012:role/app" },
			taskRole:     "arn:aws:iam::123456789012:role/other",
			wantTaskRole: "arn:aws:iam::123456789012:role/other",
		},
		{
			name:         "role override applies when source has none",
			mutate:       func(d *Definition) {},
			taskRole:     "arn:aws:iam::123456789012:role/other",
			wantTaskRole: "arn:aws:iam::123456789012:role/other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := sampleDefinition()
			tt.mutate(src)

			out, err := Transform(src, ImageOverrides{Default: "repo/img:2.0"}, tt.taskRole)
			if err != nil {
				t.Fatalf("Transform failed: %v", err)
			}

			if out.NetworkMode != tt.wantNetworkMode {
				t.Errorf("networkMode = %q, want %q", out.NetworkMode, tt.wantNetworkMode)
			}
			if out.TaskRoleArn != tt.wantTaskRole {
				t.Errorf("taskRoleArn = %q, want %q", out.TaskRoleArn, tt.wantTaskRole)
			}
		})
	}
}

func TestTransformFargateFields(t *testing.T) {
	src := sampleDefinition()
	src.RequiresCompatibilities = []string{"FARGATE"}
	src.CPU = "256"
	src.Memory = "512"

	out, err := Transform(src, ImageOverrides{Default: "repo/img:2.0"}, "")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	if out.CPU != "256" {
		t.Errorf("cpu = %q, want %q", out.CPU, "256")
	}
	if out.Memory != "512" {
		t.Errorf("memory = %q, want %q", out.Memory, "512")
	}
	if len(out.RequiresCompatibilities) != 1 || out.RequiresCompatibilities[0] != "FARGATE" {
		t.Errorf("requiresCompatibilities = %v, want [FARGATE]", out.RequiresCompatibilities)
	}
	if out.ExecutionRoleArn != src.ExecutionRoleArn {
		t.Errorf("executionRoleArn = %q, want %q", out.ExecutionRoleArn, src.ExecutionRoleArn)
	}
}

func TestTransformNonFargateOmitsSizing(t *testing.T) {
	src := sampleDefinition()
	src.RequiresCompatibilities = []string{"EC2"}
	src.CPU = "256"
	src.Memory = "512"

	out, err := Transform(src, ImageOverrides{Default: "repo/img:2.0"}, "")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	if out.CPU != "" || out.Memory != "" || out.RequiresCompatibilities != nil {
		t.Errorf("Non-Fargate output carried sizing fields: cpu=%q memory=%q compat=%v",
			out.CPU, out.Memory, out.RequiresCompatibilities)
	}
}

func TestTransformIsIdempotent(t *testing.T) {
	src := sampleDefinition()
	src.NetworkMode = "awsvpc"
	src.RequiresCompatibilities = []string{"FARGATE"}
	src.CPU = "256"
	src.Memory = "512"
	src.ContainerDefinitions[0].DockerLabels = map[string]string{"team": "platform", "app": "web"}

	first, err := Transform(src, ImageOverrides{Default: "repo/img:2.0"}, "")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	second, err := Transform(src, ImageOverrides{Default: "repo/img:2.0"}, "")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	a, err := first.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	b, err := second.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("Repeated transforms produced different bytes:\n%s\n---\n%s", a, b)
	}
}

func TestTransformRequiresContainers(t *testing.T) {
	src := &Definition{Family: "empty"}
	if _, err := Transform(src, ImageOverrides{Default: "repo/img:2.0"}, ""); err == nil {
		t.Fatal("Expected error for definition without containers")
	}
}
