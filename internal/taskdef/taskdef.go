package taskdef

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CompatibilityFargate is the launch compatibility that requires explicit
// cpu/memory declarations on the task definition.
const CompatibilityFargate = "FARGATE"

// Definition is an ECS task definition document. Field names follow the ECS
// wire format so documents produced by the AWS CLI decode directly. A zero
// string or nil slice/pointer means the field was absent from the source
// document. The model covers the full register-task-definition field set;
// Decode rejects keys it does not know rather than dropping them.
type Definition struct {
	Family                  string                 `json:"family"`
	ExecutionRoleArn        string                 `json:"executionRoleArn,omitempty"`
	TaskRoleArn             string                 `json:"taskRoleArn,omitempty"`
	NetworkMode             string                 `json:"networkMode,omitempty"`
	CPU                     string                 `json:"cpu,omitempty"`
	Memory                  string                 `json:"memory,omitempty"`
	RequiresCompatibilities []string               `json:"requiresCompatibilities,omitempty"`
	ContainerDefinitions    []ContainerDefinition  `json:"containerDefinitions"`
	Volumes                 []Volume               `json:"volumes,omitempty"`
	PlacementConstraints    []PlacementConstraint  `json:"placementConstraints,omitempty"`
	IpcMode                 string                 `json:"ipcMode,omitempty"`
	PidMode                 string                 `json:"pidMode,omitempty"`
	EphemeralStorage        *EphemeralStorage      `json:"ephemeralStorage,omitempty"`
	RuntimePlatform         *RuntimePlatform       `json:"runtimePlatform,omitempty"`
	ProxyConfiguration      *ProxyConfiguration    `json:"proxyConfiguration,omitempty"`
	InferenceAccelerators   []InferenceAccelerator `json:"inferenceAccelerators,omitempty"`
	EnableFaultInjection    *bool                  `json:"enableFaultInjection,omitempty"`
	Tags                    []Tag                  `json:"tags,omitempty"`
}

// ContainerDefinition describes one container in a task definition.
type ContainerDefinition struct {
	Name                   string                 `json:"name"`
	Image                  string                 `json:"image"`
	RepositoryCredentials  *RepositoryCredentials `json:"repositoryCredentials,omitempty"`
	CPU                    int32                  `json:"cpu,omitempty"`
	Memory                 *int32                 `json:"memory,omitempty"`
	MemoryReservation      *int32                 `json:"memoryReservation,omitempty"`
	Essential              *bool                  `json:"essential,omitempty"`
	EntryPoint             []string               `json:"entryPoint,omitempty"`
	Command                []string               `json:"command,omitempty"`
	PortMappings           []PortMapping          `json:"portMappings,omitempty"`
	Environment            []KeyValuePair         `json:"environment,omitempty"`
	EnvironmentFiles       []EnvironmentFile      `json:"environmentFiles,omitempty"`
	Secrets                []Secret               `json:"secrets,omitempty"`
	MountPoints            []MountPoint           `json:"mountPoints,omitempty"`
	VolumesFrom            []VolumeFrom           `json:"volumesFrom,omitempty"`
	Links                  []string               `json:"links,omitempty"`
	Hostname               string                 `json:"hostname,omitempty"`
	User                   string                 `json:"user,omitempty"`
	WorkingDirectory       string                 `json:"workingDirectory,omitempty"`
	DisableNetworking      *bool                  `json:"disableNetworking,omitempty"`
	Privileged             *bool                  `json:"privileged,omitempty"`
	ReadonlyRootFilesystem *bool                  `json:"readonlyRootFilesystem,omitempty"`
	Interactive            *bool                  `json:"interactive,omitempty"`
	PseudoTerminal         *bool                  `json:"pseudoTerminal,omitempty"`
	DNSServers             []string               `json:"dnsServers,omitempty"`
	DNSSearchDomains       []string               `json:"dnsSearchDomains,omitempty"`
	ExtraHosts             []HostEntry            `json:"extraHosts,omitempty"`
	DockerSecurityOptions  []string               `json:"dockerSecurityOptions,omitempty"`
	DockerLabels           map[string]string      `json:"dockerLabels,omitempty"`
	Ulimits                []Ulimit               `json:"ulimits,omitempty"`
	LogConfiguration       *LogConfiguration      `json:"logConfiguration,omitempty"`
	HealthCheck            *HealthCheck           `json:"healthCheck,omitempty"`
	LinuxParameters        *LinuxParameters       `json:"linuxParameters,omitempty"`
	DependsOn              []ContainerDependency  `json:"dependsOn,omitempty"`
	StartTimeout           *int32                 `json:"startTimeout,omitempty"`
	StopTimeout            *int32                 `json:"stopTimeout,omitempty"`
	SystemControls         []SystemControl        `json:"systemControls,omitempty"`
	ResourceRequirements   []ResourceRequirement  `json:"resourceRequirements,omitempty"`
	FirelensConfiguration  *FirelensConfiguration `json:"firelensConfiguration,omitempty"`
	CredentialSpecs        []string               `json:"credentialSpecs,omitempty"`
	RestartPolicy          *RestartPolicy         `json:"restartPolicy,omitempty"`
	VersionConsistency     string                 `json:"versionConsistency,omitempty"`
}

// RepositoryCredentials references private registry credentials.
type RepositoryCredentials struct {
	CredentialsParameter string `json:"credentialsParameter"`
}

// PortMapping maps a container port to a host port.
type PortMapping struct {
	ContainerPort      int32  `json:"containerPort,omitempty"`
	HostPort           *int32 `json:"hostPort,omitempty"`
	Protocol           string `json:"protocol,omitempty"`
	Name               string `json:"name,omitempty"`
	AppProtocol        string `json:"appProtocol,omitempty"`
	ContainerPortRange string `json:"containerPortRange,omitempty"`
}

// KeyValuePair is a name/value environment entry.
type KeyValuePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EnvironmentFile references a file of environment variables.
type EnvironmentFile struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Secret references a value stored in Secrets Manager or SSM.
type Secret struct {
	Name      string `json:"name"`
	ValueFrom string `json:"valueFrom"`
}

// MountPoint mounts a task volume into a container.
type MountPoint struct {
	SourceVolume  string `json:"sourceVolume"`
	ContainerPath string `json:"containerPath"`
	ReadOnly      *bool  `json:"readOnly,omitempty"`
}

// VolumeFrom mounts another container's volumes.
type VolumeFrom struct {
	SourceContainer string `json:"sourceContainer"`
	ReadOnly        *bool  `json:"readOnly,omitempty"`
}

// HostEntry adds an /etc/hosts entry.
type HostEntry struct {
	Hostname  string `json:"hostname"`
	IPAddress string `json:"ipAddress"`
}

// Ulimit sets a kernel resource limit for a container.
type Ulimit struct {
	Name      string `json:"name"`
	SoftLimit int32  `json:"softLimit"`
	HardLimit int32  `json:"hardLimit"`
}

// LogConfiguration selects the log driver for a container.
type LogConfiguration struct {
	LogDriver     string            `json:"logDriver"`
	Options       map[string]string `json:"options,omitempty"`
	SecretOptions []Secret          `json:"secretOptions,omitempty"`
}

// HealthCheck is the container health probe.
type HealthCheck struct {
	Command     []string `json:"command"`
	Interval    *int32   `json:"interval,omitempty"`
	Timeout     *int32   `json:"timeout,omitempty"`
	Retries     *int32   `json:"retries,omitempty"`
	StartPeriod *int32   `json:"startPeriod,omitempty"`
}

// LinuxParameters carries Linux-specific container options.
type LinuxParameters struct {
	Capabilities       *KernelCapabilities `json:"capabilities,omitempty"`
	Devices            []Device            `json:"devices,omitempty"`
	InitProcessEnabled *bool               `json:"initProcessEnabled,omitempty"`
	MaxSwap            *int32              `json:"maxSwap,omitempty"`
	SharedMemorySize   *int32              `json:"sharedMemorySize,omitempty"`
	Swappiness         *int32              `json:"swappiness,omitempty"`
	Tmpfs              []Tmpfs             `json:"tmpfs,omitempty"`
}

// KernelCapabilities adds or drops Linux capabilities.
type KernelCapabilities struct {
	Add  []string `json:"add,omitempty"`
	Drop []string `json:"drop,omitempty"`
}

// Device exposes a host device to a container.
type Device struct {
	HostPath      string   `json:"hostPath"`
	ContainerPath string   `json:"containerPath,omitempty"`
	Permissions   []string `json:"permissions,omitempty"`
}

// Tmpfs mounts a tmpfs into a container.
type Tmpfs struct {
	ContainerPath string   `json:"containerPath"`
	Size          int32    `json:"size"`
	MountOptions  []string `json:"mountOptions,omitempty"`
}

// ContainerDependency orders container startup and shutdown.
type ContainerDependency struct {
	ContainerName string `json:"containerName"`
	Condition     string `json:"condition"`
}

// SystemControl sets a kernel namespace parameter.
type SystemControl struct {
	Namespace string `json:"namespace,omitempty"`
	Value     string `json:"value,omitempty"`
}

// ResourceRequirement attaches a GPU or inference accelerator.
type ResourceRequirement struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// FirelensConfiguration routes container logs through a log router.
type FirelensConfiguration struct {
	Type    string            `json:"type"`
	Options map[string]string `json:"options,omitempty"`
}

// RestartPolicy restarts a container without replacing the task.
type RestartPolicy struct {
	Enabled              *bool   `json:"enabled,omitempty"`
	IgnoredExitCodes     []int32 `json:"ignoredExitCodes,omitempty"`
	RestartAttemptPeriod *int32  `json:"restartAttemptPeriod,omitempty"`
}

// Volume is a data volume declared at the task level.
type Volume struct {
	Name                      string                     `json:"name"`
	Host                      *HostVolumeProperties      `json:"host,omitempty"`
	EFSVolumeConfiguration    *EFSVolumeConfiguration    `json:"efsVolumeConfiguration,omitempty"`
	DockerVolumeConfiguration *DockerVolumeConfiguration `json:"dockerVolumeConfiguration,omitempty"`

	FSxWindowsFileServerVolumeConfiguration *FSxWindowsFileServerVolumeConfiguration `json:"fsxWindowsFileServerVolumeConfiguration,omitempty"`

	ConfiguredAtLaunch *bool `json:"configuredAtLaunch,omitempty"`
}

// HostVolumeProperties binds a volume to a host path.
type HostVolumeProperties struct {
	SourcePath string `json:"sourcePath,omitempty"`
}

// EFSVolumeConfiguration binds a volume to an EFS file system.
type EFSVolumeConfiguration struct {
	FileSystemID          string                  `json:"fileSystemId"`
	RootDirectory         string                  `json:"rootDirectory,omitempty"`
	TransitEncryption     string                  `json:"transitEncryption,omitempty"`
	TransitEncryptionPort *int32                  `json:"transitEncryptionPort,omitempty"`
	AuthorizationConfig   *EFSAuthorizationConfig `json:"authorizationConfig,omitempty"`
}

// EFSAuthorizationConfig authorizes access to an EFS access point.
type EFSAuthorizationConfig struct {
	AccessPointID string `json:"accessPointId,omitempty"`
	IAM           string `json:"iam,omitempty"`
}

// DockerVolumeConfiguration configures a Docker-managed volume.
type DockerVolumeConfiguration struct {
	Autoprovision *bool             `json:"autoprovision,omitempty"`
	Driver        string            `json:"driver,omitempty"`
	DriverOpts    map[string]string `json:"driverOpts,omitempty"`
	Labels        map[string]string `json:"labels,omitempty"`
	Scope         string            `json:"scope,omitempty"`
}

// FSxWindowsFileServerVolumeConfiguration binds a volume to an FSx for
// Windows file share.
type FSxWindowsFileServerVolumeConfiguration struct {
	FileSystemID  string `json:"fileSystemId"`
	RootDirectory string `json:"rootDirectory"`

	AuthorizationConfig *FSxWindowsFileServerAuthorizationConfig `json:"authorizationConfig,omitempty"`
}

// FSxWindowsFileServerAuthorizationConfig authorizes access to the share.
type FSxWindowsFileServerAuthorizationConfig struct {
	CredentialsParameter string `json:"credentialsParameter"`
	Domain               string `json:"domain"`
}

// PlacementConstraint restricts task placement.
type PlacementConstraint struct {
	Type       string `json:"type,omitempty"`
	Expression string `json:"expression,omitempty"`
}

// EphemeralStorage sizes the task's ephemeral volume.
type EphemeralStorage struct {
	SizeInGiB int32 `json:"sizeInGiB"`
}

// RuntimePlatform selects the CPU architecture and OS family.
type RuntimePlatform struct {
	CPUArchitecture       string `json:"cpuArchitecture,omitempty"`
	OperatingSystemFamily string `json:"operatingSystemFamily,omitempty"`
}

// ProxyConfiguration configures an App Mesh proxy container.
type ProxyConfiguration struct {
	Type          string         `json:"type,omitempty"`
	ContainerName string         `json:"containerName"`
	Properties    []KeyValuePair `json:"properties,omitempty"`
}

// InferenceAccelerator attaches an Elastic Inference accelerator.
type InferenceAccelerator struct {
	DeviceName string `json:"deviceName"`
	DeviceType string `json:"deviceType"`
}

// Tag is a resource tag applied at registration.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RequiresFargate reports whether the definition declares the FARGATE
// launch compatibility.
func (d *Definition) RequiresFargate() bool {
	for _, c := range d.RequiresCompatibilities {
		if c == CompatibilityFargate {
			return true
		}
	}
	return false
}

// readOnlyKeys appear in describe-task-definition output but are not part
// of a register request; they are stripped before strict decoding.
var readOnlyKeys = []string{
	"taskDefinitionArn",
	"revision",
	"status",
	"registeredAt",
	"registeredBy",
	"deregisteredAt",
	"compatibilities",
	"requiresAttributes",
}

// Decode parses a task definition document. Documents wrapping the
// definition under a top-level "taskDefinition" key (the shape returned by
// describe-task-definition) are unwrapped, and the read-only keys that
// output carries are ignored. Any other unknown key is an error: a field
// this tool cannot represent must never be dropped silently.
func Decode(data []byte) (*Definition, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse task definition: %w", err)
	}

	if wrapped, ok := raw["taskDefinition"]; ok {
		inner := map[string]json.RawMessage{}
		if err := json.Unmarshal(wrapped, &inner); err != nil {
			return nil, fmt.Errorf("failed to parse task definition: %w", err)
		}
		raw = inner
	}
	for _, key := range readOnlyKeys {
		delete(raw, key)
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse task definition: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.DisallowUnknownFields()

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse task definition: %w", err)
	}
	if def.Family == "" {
		return nil, fmt.Errorf("task definition has no family")
	}
	if len(def.ContainerDefinitions) == 0 {
		return nil, fmt.Errorf("task definition %q has no container definitions", def.Family)
	}
	return &def, nil
}

// Encode renders the definition as indented JSON. Encoding is deterministic:
// the same definition always yields the same bytes.
func (d *Definition) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode task definition: %w", err)
	}
	return buf.Bytes(), nil
}
