package awsapi

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/withlaunch/bluectl/internal/taskdef"
)

// richContainer covers the container fields beyond the everyday ones. The
// SDK conversion must round-trip all of them: a field dropped in either
// direction would register a revision that differs from the service's
// current one.
func richContainer() taskdef.ContainerDefinition {
	return taskdef.ContainerDefinition{
		Name:  "web",
		Image: "repo/img:2.0",
		RepositoryCredentials: &taskdef.RepositoryCredentials{
			CredentialsParameter: "arn:aws:secretsmanager:eu-west-1:123456789012:secret:dockerhub",
		},
		User:             "1000:1000",
		WorkingDirectory: "/srv",
		StartTimeout:     aws.Int32(30),
		StopTimeout:      aws.Int32(120),
		HealthCheck: &taskdef.HealthCheck{
			Command:  []string{"CMD-SHELL", "curl -f http://localhost/ || exit 1"},
			Interval: aws.Int32(10),
			Retries:  aws.Int32(3),
		},
		Ulimits: []taskdef.Ulimit{
			{Name: "nofile", SoftLimit: 1024, HardLimit: 4096},
		},
		LinuxParameters: &taskdef.LinuxParameters{
			InitProcessEnabled: aws.Bool(true),
			Capabilities:       &taskdef.KernelCapabilities{Drop: []string{"NET_RAW"}},
			Tmpfs: []taskdef.Tmpfs{
				{ContainerPath: "/tmp", Size: 64},
			},
		},
		DependsOn: []taskdef.ContainerDependency{
			{ContainerName: "envoy", Condition: "HEALTHY"},
		},
		SystemControls: []taskdef.SystemControl{
			{Namespace: "net.core.somaxconn", Value: "1024"},
		},
	}
}

func TestContainerConversionRoundTrip(t *testing.T) {
	want := richContainer()

	got := containerFromSDK(containerToSDK(want))

	assert.Equal(t, want, got)
}

func TestVolumeConversionRoundTrip(t *testing.T) {
	want := taskdef.Volume{
		Name: "data",
		EFSVolumeConfiguration: &taskdef.EFSVolumeConfiguration{
			FileSystemID:          "fs-0123456789abcdef0",
			RootDirectory:         "/exports",
			TransitEncryption:     "ENABLED",
			TransitEncryptionPort: aws.Int32(2999),
			AuthorizationConfig: &taskdef.EFSAuthorizationConfig{
				AccessPointID: "fsap-0123456789abcdef0",
				IAM:           "ENABLED",
			},
		},
	}

	got := volumeFromSDK(volumeToSDK(want))

	assert.Equal(t, want, got)
}

func TestToRegisterInputTaskLevelFields(t *testing.T) {
	input := toRegisterInput(&taskdef.Definition{
		Family:               "web-app",
		ContainerDefinitions: []taskdef.ContainerDefinition{richContainer()},
		EphemeralStorage:     &taskdef.EphemeralStorage{SizeInGiB: 50},
		RuntimePlatform: &taskdef.RuntimePlatform{
			CPUArchitecture:       "ARM64",
			OperatingSystemFamily: "LINUX",
		},
		ProxyConfiguration: &taskdef.ProxyConfiguration{
			Type:          "APPMESH",
			ContainerName: "envoy",
			Properties:    []taskdef.KeyValuePair{{Name: "AppPorts", Value: "8080"}},
		},
		IpcMode: "task",
		PidMode: "task",
	})

	require.NotNil(t, input.EphemeralStorage)
	assert.Equal(t, int32(50), input.EphemeralStorage.SizeInGiB)
	require.NotNil(t, input.RuntimePlatform)
	assert.Equal(t, "ARM64", string(input.RuntimePlatform.CpuArchitecture))
	require.NotNil(t, input.ProxyConfiguration)
	assert.Equal(t, "envoy", aws.ToString(input.ProxyConfiguration.ContainerName))
	assert.Equal(t, "task", string(input.IpcMode))
	assert.Equal(t, "task", string(input.PidMode))

	require.Len(t, input.ContainerDefinitions, 1)
	c := input.ContainerDefinitions[0]
	require.NotNil(t, c.RepositoryCredentials)
	assert.Contains(t, aws.ToString(c.RepositoryCredentials.CredentialsParameter), "dockerhub")
	require.NotNil(t, c.HealthCheck)
	assert.Equal(t, int32(3), aws.ToInt32(c.HealthCheck.Retries))
	require.Len(t, c.Ulimits, 1)
	assert.Equal(t, int32(4096), c.Ulimits[0].HardLimit)
	require.NotNil(t, c.LinuxParameters)
	assert.Equal(t, []string{"NET_RAW"}, c.LinuxParameters.Capabilities.Drop)
	assert.Equal(t, "/srv", aws.ToString(c.WorkingDirectory))
}
