package awsapi

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"

	"github.com/withlaunch/bluectl/internal/taskdef"
)

// fromSDK converts a described task definition into the local document
// model. Absent optional fields stay zero so the transformer's structural
// presence checks see exactly what the source declared. The mapping covers
// every registrable field; losing one here would silently change what gets
// registered.
func fromSDK(td *ecstypes.TaskDefinition) *taskdef.Definition {
	def := &taskdef.Definition{
		Family:               aws.ToString(td.Family),
		ExecutionRoleArn:     aws.ToString(td.ExecutionRoleArn),
		TaskRoleArn:          aws.ToString(td.TaskRoleArn),
		NetworkMode:          string(td.NetworkMode),
		CPU:                  aws.ToString(td.Cpu),
		Memory:               aws.ToString(td.Memory),
		IpcMode:              string(td.IpcMode),
		PidMode:              string(td.PidMode),
		EnableFaultInjection: td.EnableFaultInjection,
	}

	for _, c := range td.RequiresCompatibilities {
		def.RequiresCompatibilities = append(def.RequiresCompatibilities, string(c))
	}
	for _, c := range td.ContainerDefinitions {
		def.ContainerDefinitions = append(def.ContainerDefinitions, containerFromSDK(c))
	}
	for _, v := range td.Volumes {
		def.Volumes = append(def.Volumes, volumeFromSDK(v))
	}
	for _, pc := range td.PlacementConstraints {
		def.PlacementConstraints = append(def.PlacementConstraints, taskdef.PlacementConstraint{
			Type:       string(pc.Type),
			Expression: aws.ToString(pc.Expression),
		})
	}
	if td.EphemeralStorage != nil {
		def.EphemeralStorage = &taskdef.EphemeralStorage{SizeInGiB: td.EphemeralStorage.SizeInGiB}
	}
	if td.RuntimePlatform != nil {
		def.RuntimePlatform = &taskdef.RuntimePlatform{
			CPUArchitecture:       string(td.RuntimePlatform.CpuArchitecture),
			OperatingSystemFamily: string(td.RuntimePlatform.OperatingSystemFamily),
		}
	}
	if td.ProxyConfiguration != nil {
		def.ProxyConfiguration = &taskdef.ProxyConfiguration{
			Type:          string(td.ProxyConfiguration.Type),
			ContainerName: aws.ToString(td.ProxyConfiguration.ContainerName),
			Properties:    keyValuePairsFromSDK(td.ProxyConfiguration.Properties),
		}
	}
	for _, ia := range td.InferenceAccelerators {
		def.InferenceAccelerators = append(def.InferenceAccelerators, taskdef.InferenceAccelerator{
			DeviceName: aws.ToString(ia.DeviceName),
			DeviceType: aws.ToString(ia.DeviceType),
		})
	}

	return def
}

func containerFromSDK(c ecstypes.ContainerDefinition) taskdef.ContainerDefinition {
	out := taskdef.ContainerDefinition{
		Name:                   aws.ToString(c.Name),
		Image:                  aws.ToString(c.Image),
		CPU:                    c.Cpu,
		Memory:                 c.Memory,
		MemoryReservation:      c.MemoryReservation,
		Essential:              c.Essential,
		EntryPoint:             c.EntryPoint,
		Command:                c.Command,
		Environment:            keyValuePairsFromSDK(c.Environment),
		Links:                  c.Links,
		Hostname:               aws.ToString(c.Hostname),
		User:                   aws.ToString(c.User),
		WorkingDirectory:       aws.ToString(c.WorkingDirectory),
		DisableNetworking:      c.DisableNetworking,
		Privileged:             c.Privileged,
		ReadonlyRootFilesystem: c.ReadonlyRootFilesystem,
		Interactive:            c.Interactive,
		PseudoTerminal:         c.PseudoTerminal,
		DNSServers:             c.DnsServers,
		DNSSearchDomains:       c.DnsSearchDomains,
		DockerSecurityOptions:  c.DockerSecurityOptions,
		DockerLabels:           c.DockerLabels,
		StartTimeout:           c.StartTimeout,
		StopTimeout:            c.StopTimeout,
		CredentialSpecs:        c.CredentialSpecs,
		VersionConsistency:     string(c.VersionConsistency),
	}

	if c.RepositoryCredentials != nil {
		out.RepositoryCredentials = &taskdef.RepositoryCredentials{
			CredentialsParameter: aws.ToString(c.RepositoryCredentials.CredentialsParameter),
		}
	}
	for _, pm := range c.PortMappings {
		out.PortMappings = append(out.PortMappings, taskdef.PortMapping{
			ContainerPort:      aws.ToInt32(pm.ContainerPort),
			HostPort:           pm.HostPort,
			Protocol:           string(pm.Protocol),
			Name:               aws.ToString(pm.Name),
			AppProtocol:        string(pm.AppProtocol),
			ContainerPortRange: aws.ToString(pm.ContainerPortRange),
		})
	}
	for _, ef := range c.EnvironmentFiles {
		out.EnvironmentFiles = append(out.EnvironmentFiles, taskdef.EnvironmentFile{
			Type:  string(ef.Type),
			Value: aws.ToString(ef.Value),
		})
	}
	for _, s := range c.Secrets {
		out.Secrets = append(out.Secrets, secretFromSDK(s))
	}
	for _, mp := range c.MountPoints {
		out.MountPoints = append(out.MountPoints, taskdef.MountPoint{
			SourceVolume:  aws.ToString(mp.SourceVolume),
			ContainerPath: aws.ToString(mp.ContainerPath),
			ReadOnly:      mp.ReadOnly,
		})
	}
	for _, vf := range c.VolumesFrom {
		out.VolumesFrom = append(out.VolumesFrom, taskdef.VolumeFrom{
			SourceContainer: aws.ToString(vf.SourceContainer),
			ReadOnly:        vf.ReadOnly,
		})
	}
	for _, he := range c.ExtraHosts {
		out.ExtraHosts = append(out.ExtraHosts, taskdef.HostEntry{
			Hostname:  aws.ToString(he.Hostname),
			IPAddress: aws.ToString(he.IpAddress),
		})
	}
	for _, u := range c.Ulimits {
		out.Ulimits = append(out.Ulimits, taskdef.Ulimit{
			Name:      string(u.Name),
			SoftLimit: u.SoftLimit,
			HardLimit: u.HardLimit,
		})
	}
	if c.LogConfiguration != nil {
		lc := &taskdef.LogConfiguration{
			LogDriver: string(c.LogConfiguration.LogDriver),
			Options:   c.LogConfiguration.Options,
		}
		for _, s := range c.LogConfiguration.SecretOptions {
			lc.SecretOptions = append(lc.SecretOptions, secretFromSDK(s))
		}
		out.LogConfiguration = lc
	}
	if c.HealthCheck != nil {
		out.HealthCheck = &taskdef.HealthCheck{
			Command:     c.HealthCheck.Command,
			Interval:    c.HealthCheck.Interval,
			Timeout:     c.HealthCheck.Timeout,
			Retries:     c.HealthCheck.Retries,
			StartPeriod: c.HealthCheck.StartPeriod,
		}
	}
	if c.LinuxParameters != nil {
		out.LinuxParameters = linuxParametersFromSDK(c.LinuxParameters)
	}
	for _, dep := range c.DependsOn {
		out.DependsOn = append(out.DependsOn, taskdef.ContainerDependency{
			ContainerName: aws.ToString(dep.ContainerName),
			Condition:     string(dep.Condition),
		})
	}
	for _, sc := range c.SystemControls {
		out.SystemControls = append(out.SystemControls, taskdef.SystemControl{
			Namespace: aws.ToString(sc.Namespace),
			Value:     aws.ToString(sc.Value),
		})
	}
	for _, rr := range c.ResourceRequirements {
		out.ResourceRequirements = append(out.ResourceRequirements, taskdef.ResourceRequirement{
			Type:  string(rr.Type),
			Value: aws.ToString(rr.Value),
		})
	}
	if c.FirelensConfiguration != nil {
		out.FirelensConfiguration = &taskdef.FirelensConfiguration{
			Type:    string(c.FirelensConfiguration.Type),
			Options: c.FirelensConfiguration.Options,
		}
	}
	if c.RestartPolicy != nil {
		out.RestartPolicy = &taskdef.RestartPolicy{
			Enabled:              c.RestartPolicy.Enabled,
			IgnoredExitCodes:     c.RestartPolicy.IgnoredExitCodes,
			RestartAttemptPeriod: c.RestartPolicy.RestartAttemptPeriod,
		}
	}

	return out
}

func linuxParametersFromSDK(lp *ecstypes.LinuxParameters) *taskdef.LinuxParameters {
	out := &taskdef.LinuxParameters{
		InitProcessEnabled: lp.InitProcessEnabled,
		MaxSwap:            lp.MaxSwap,
		SharedMemorySize:   lp.SharedMemorySize,
		Swappiness:         lp.Swappiness,
	}
	if lp.Capabilities != nil {
		out.Capabilities = &taskdef.KernelCapabilities{
			Add:  lp.Capabilities.Add,
			Drop: lp.Capabilities.Drop,
		}
	}
	for _, d := range lp.Devices {
		dev := taskdef.Device{
			HostPath:      aws.ToString(d.HostPath),
			ContainerPath: aws.ToString(d.ContainerPath),
		}
		for _, p := range d.Permissions {
			dev.Permissions = append(dev.Permissions, string(p))
		}
		out.Devices = append(out.Devices, dev)
	}
	for _, t := range lp.Tmpfs {
		out.Tmpfs = append(out.Tmpfs, taskdef.Tmpfs{
			ContainerPath: aws.ToString(t.ContainerPath),
			Size:          t.Size,
			MountOptions:  t.MountOptions,
		})
	}
	return out
}

func keyValuePairsFromSDK(pairs []ecstypes.KeyValuePair) []taskdef.KeyValuePair {
	var out []taskdef.KeyValuePair
	for _, kv := range pairs {
		out = append(out, taskdef.KeyValuePair{
			Name:  aws.ToString(kv.Name),
			Value: aws.ToString(kv.Value),
		})
	}
	return out
}

func secretFromSDK(s ecstypes.Secret) taskdef.Secret {
	return taskdef.Secret{
		Name:      aws.ToString(s.Name),
		ValueFrom: aws.ToString(s.ValueFrom),
	}
}

func volumeFromSDK(v ecstypes.Volume) taskdef.Volume {
	out := taskdef.Volume{
		Name:               aws.ToString(v.Name),
		ConfiguredAtLaunch: v.ConfiguredAtLaunch,
	}
	if v.Host != nil {
		out.Host = &taskdef.HostVolumeProperties{SourcePath: aws.ToString(v.Host.SourcePath)}
	}
	if v.EfsVolumeConfiguration != nil {
		efs := &taskdef.EFSVolumeConfiguration{
			FileSystemID:          aws.ToString(v.EfsVolumeConfiguration.FileSystemId),
			RootDirectory:         aws.ToString(v.EfsVolumeConfiguration.RootDirectory),
			TransitEncryption:     string(v.EfsVolumeConfiguration.TransitEncryption),
			TransitEncryptionPort: v.EfsVolumeConfiguration.TransitEncryptionPort,
		}
		if v.EfsVolumeConfiguration.AuthorizationConfig != nil {
			efs.AuthorizationConfig = &taskdef.EFSAuthorizationConfig{
				AccessPointID: aws.ToString(v.EfsVolumeConfiguration.AuthorizationConfig.AccessPointId),
				IAM:           string(v.EfsVolumeConfiguration.AuthorizationConfig.Iam),
			}
		}
		out.EFSVolumeConfiguration = efs
	}
	if v.DockerVolumeConfiguration != nil {
		out.DockerVolumeConfiguration = &taskdef.DockerVolumeConfiguration{
			Autoprovision: v.DockerVolumeConfiguration.Autoprovision,
			Driver:        aws.ToString(v.DockerVolumeConfiguration.Driver),
			DriverOpts:    v.DockerVolumeConfiguration.DriverOpts,
			Labels:        v.DockerVolumeConfiguration.Labels,
			Scope:         string(v.DockerVolumeConfiguration.Scope),
		}
	}
	if v.FsxWindowsFileServerVolumeConfiguration != nil {
		fsx := &taskdef.FSxWindowsFileServerVolumeConfiguration{
			FileSystemID:  aws.ToString(v.FsxWindowsFileServerVolumeConfiguration.FileSystemId),
			RootDirectory: aws.ToString(v.FsxWindowsFileServerVolumeConfiguration.RootDirectory),
		}
		if ac := v.FsxWindowsFileServerVolumeConfiguration.AuthorizationConfig; ac != nil {
			fsx.AuthorizationConfig = &taskdef.FSxWindowsFileServerAuthorizationConfig{
				CredentialsParameter: aws.ToString(ac.CredentialsParameter),
				Domain:               aws.ToString(ac.Domain),
			}
		}
		out.FSxWindowsFileServerVolumeConfiguration = fsx
	}
	return out
}

// toRegisterInput converts the document model into a RegisterTaskDefinition
// request. Only fields present in the document are set.
func toRegisterInput(def *taskdef.Definition) *ecs.RegisterTaskDefinitionInput {
	input := &ecs.RegisterTaskDefinitionInput{
		Family:               aws.String(def.Family),
		EnableFaultInjection: def.EnableFaultInjection,
	}

	if def.ExecutionRoleArn != "" {
		input.ExecutionRoleArn = aws.String(def.ExecutionRoleArn)
	}
	if def.TaskRoleArn != "" {
		input.TaskRoleArn = aws.String(def.TaskRoleArn)
	}
	if def.NetworkMode != "" {
		input.NetworkMode = ecstypes.NetworkMode(def.NetworkMode)
	}
	if def.CPU != "" {
		input.Cpu = aws.String(def.CPU)
	}
	if def.Memory != "" {
		input.Memory = aws.String(def.Memory)
	}
	if def.IpcMode != "" {
		input.IpcMode = ecstypes.IpcMode(def.IpcMode)
	}
	if def.PidMode != "" {
		input.PidMode = ecstypes.PidMode(def.PidMode)
	}
	for _, c := range def.RequiresCompatibilities {
		input.RequiresCompatibilities = append(input.RequiresCompatibilities, ecstypes.Compatibility(c))
	}
	for _, c := range def.ContainerDefinitions {
		input.ContainerDefinitions = append(input.ContainerDefinitions, containerToSDK(c))
	}
	for _, v := range def.Volumes {
		input.Volumes = append(input.Volumes, volumeToSDK(v))
	}
	for _, pc := range def.PlacementConstraints {
		sdkPC := ecstypes.TaskDefinitionPlacementConstraint{
			Type: ecstypes.TaskDefinitionPlacementConstraintType(pc.Type),
		}
		if pc.Expression != "" {
			sdkPC.Expression = aws.String(pc.Expression)
		}
		input.PlacementConstraints = append(input.PlacementConstraints, sdkPC)
	}
	if def.EphemeralStorage != nil {
		input.EphemeralStorage = &ecstypes.EphemeralStorage{SizeInGiB: def.EphemeralStorage.SizeInGiB}
	}
	if def.RuntimePlatform != nil {
		input.RuntimePlatform = &ecstypes.RuntimePlatform{
			CpuArchitecture:       ecstypes.CPUArchitecture(def.RuntimePlatform.CPUArchitecture),
			OperatingSystemFamily: ecstypes.OSFamily(def.RuntimePlatform.OperatingSystemFamily),
		}
	}
	if def.ProxyConfiguration != nil {
		input.ProxyConfiguration = &ecstypes.ProxyConfiguration{
			Type:          ecstypes.ProxyConfigurationType(def.ProxyConfiguration.Type),
			ContainerName: aws.String(def.ProxyConfiguration.ContainerName),
			Properties:    keyValuePairsToSDK(def.ProxyConfiguration.Properties),
		}
	}
	for _, ia := range def.InferenceAccelerators {
		input.InferenceAccelerators = append(input.InferenceAccelerators, ecstypes.InferenceAccelerator{
			DeviceName: aws.String(ia.DeviceName),
			DeviceType: aws.String(ia.DeviceType),
		})
	}
	for _, tag := range def.Tags {
		input.Tags = append(input.Tags, ecstypes.Tag{
			Key:   aws.String(tag.Key),
			Value: aws.String(tag.Value),
		})
	}

	return input
}

func containerToSDK(c taskdef.ContainerDefinition) ecstypes.ContainerDefinition {
	out := ecstypes.ContainerDefinition{
		Name:                   aws.String(c.Name),
		Image:                  aws.String(c.Image),
		Cpu:                    c.CPU,
		Memory:                 c.Memory,
		MemoryReservation:      c.MemoryReservation,
		Essential:              c.Essential,
		EntryPoint:             c.EntryPoint,
		Command:                c.Command,
		Environment:            keyValuePairsToSDK(c.Environment),
		Links:                  c.Links,
		DisableNetworking:      c.DisableNetworking,
		Privileged:             c.Privileged,
		ReadonlyRootFilesystem: c.ReadonlyRootFilesystem,
		Interactive:            c.Interactive,
		PseudoTerminal:         c.PseudoTerminal,
		DnsServers:             c.DNSServers,
		DnsSearchDomains:       c.DNSSearchDomains,
		DockerSecurityOptions:  c.DockerSecurityOptions,
		DockerLabels:           c.DockerLabels,
		StartTimeout:           c.StartTimeout,
		StopTimeout:            c.StopTimeout,
		CredentialSpecs:        c.CredentialSpecs,
	}

	if c.Hostname != "" {
		out.Hostname = aws.String(c.Hostname)
	}
	if c.User != "" {
		out.User = aws.String(c.User)
	}
	if c.WorkingDirectory != "" {
		out.WorkingDirectory = aws.String(c.WorkingDirectory)
	}
	if c.VersionConsistency != "" {
		out.VersionConsistency = ecstypes.VersionConsistency(c.VersionConsistency)
	}
	if c.RepositoryCredentials != nil {
		out.RepositoryCredentials = &ecstypes.RepositoryCredentials{
			CredentialsParameter: aws.String(c.RepositoryCredentials.CredentialsParameter),
		}
	}
	for _, pm := range c.PortMappings {
		sdkPM := ecstypes.PortMapping{
			HostPort: pm.HostPort,
		}
		if pm.ContainerPort != 0 {
			sdkPM.ContainerPort = aws.Int32(pm.ContainerPort)
		}
		if pm.Protocol != "" {
			sdkPM.Protocol = ecstypes.TransportProtocol(pm.Protocol)
		}
		if pm.Name != "" {
			sdkPM.Name = aws.String(pm.Name)
		}
		if pm.AppProtocol != "" {
			sdkPM.AppProtocol = ecstypes.ApplicationProtocol(pm.AppProtocol)
		}
		if pm.ContainerPortRange != "" {
			sdkPM.ContainerPortRange = aws.String(pm.ContainerPortRange)
		}
		out.PortMappings = append(out.PortMappings, sdkPM)
	}
	for _, ef := range c.EnvironmentFiles {
		out.EnvironmentFiles = append(out.EnvironmentFiles, ecstypes.EnvironmentFile{
			Type:  ecstypes.EnvironmentFileType(ef.Type),
			Value: aws.String(ef.Value),
		})
	}
	for _, s := range c.Secrets {
		out.Secrets = append(out.Secrets, secretToSDK(s))
	}
	for _, mp := range c.MountPoints {
		out.MountPoints = append(out.MountPoints, ecstypes.MountPoint{
			SourceVolume:  aws.String(mp.SourceVolume),
			ContainerPath: aws.String(mp.ContainerPath),
			ReadOnly:      mp.ReadOnly,
		})
	}
	for _, vf := range c.VolumesFrom {
		out.VolumesFrom = append(out.VolumesFrom, ecstypes.VolumeFrom{
			SourceContainer: aws.String(vf.SourceContainer),
			ReadOnly:        vf.ReadOnly,
		})
	}
	for _, he := range c.ExtraHosts {
		out.ExtraHosts = append(out.ExtraHosts, ecstypes.HostEntry{
			Hostname:  aws.String(he.Hostname),
			IpAddress: aws.String(he.IPAddress),
		})
	}
	for _, u := range c.Ulimits {
		out.Ulimits = append(out.Ulimits, ecstypes.Ulimit{
			Name:      ecstypes.UlimitName(u.Name),
			SoftLimit: u.SoftLimit,
			HardLimit: u.HardLimit,
		})
	}
	if c.LogConfiguration != nil {
		lc := &ecstypes.LogConfiguration{
			LogDriver: ecstypes.LogDriver(c.LogConfiguration.LogDriver),
			Options:   c.LogConfiguration.Options,
		}
		for _, s := range c.LogConfiguration.SecretOptions {
			lc.SecretOptions = append(lc.SecretOptions, secretToSDK(s))
		}
		out.LogConfiguration = lc
	}
	if c.HealthCheck != nil {
		out.HealthCheck = &ecstypes.HealthCheck{
			Command:     c.HealthCheck.Command,
			Interval:    c.HealthCheck.Interval,
			Timeout:     c.HealthCheck.Timeout,
			Retries:     c.HealthCheck.Retries,
			StartPeriod: c.HealthCheck.StartPeriod,
		}
	}
	if c.LinuxParameters != nil {
		out.LinuxParameters = linuxParametersToSDK(c.LinuxParameters)
	}
	for _, dep := range c.DependsOn {
		out.DependsOn = append(out.DependsOn, ecstypes.ContainerDependency{
			ContainerName: aws.String(dep.ContainerName),
			Condition:     ecstypes.ContainerCondition(dep.Condition),
		})
	}
	for _, sc := range c.SystemControls {
		sdkSC := ecstypes.SystemControl{}
		if sc.Namespace != "" {
			sdkSC.Namespace = aws.String(sc.Namespace)
		}
		if sc.Value != "" {
			sdkSC.Value = aws.String(sc.Value)
		}
		out.SystemControls = append(out.SystemControls, sdkSC)
	}
	for _, rr := range c.ResourceRequirements {
		out.ResourceRequirements = append(out.ResourceRequirements, ecstypes.ResourceRequirement{
			Type:  ecstypes.ResourceType(rr.Type),
			Value: aws.String(rr.Value),
		})
	}
	if c.FirelensConfiguration != nil {
		out.FirelensConfiguration = &ecstypes.FirelensConfiguration{
			Type:    ecstypes.FirelensConfigurationType(c.FirelensConfiguration.Type),
			Options: c.FirelensConfiguration.Options,
		}
	}
	if c.RestartPolicy != nil {
		out.RestartPolicy = &ecstypes.ContainerRestartPolicy{
			Enabled:              c.RestartPolicy.Enabled,
			IgnoredExitCodes:     c.RestartPolicy.IgnoredExitCodes,
			RestartAttemptPeriod: c.RestartPolicy.RestartAttemptPeriod,
		}
	}

	return out
}

func linuxParametersToSDK(lp *taskdef.LinuxParameters) *ecstypes.LinuxParameters {
	out := &ecstypes.LinuxParameters{
		InitProcessEnabled: lp.InitProcessEnabled,
		MaxSwap:            lp.MaxSwap,
		SharedMemorySize:   lp.SharedMemorySize,
		Swappiness:         lp.Swappiness,
	}
	if lp.Capabilities != nil {
		out.Capabilities = &ecstypes.KernelCapabilities{
			Add:  lp.Capabilities.Add,
			Drop: lp.Capabilities.Drop,
		}
	}
	for _, d := range lp.Devices {
		dev := ecstypes.Device{
			HostPath: aws.String(d.HostPath),
		}
		if d.ContainerPath != "" {
			dev.ContainerPath = aws.String(d.ContainerPath)
		}
		for _, p := range d.Permissions {
			dev.Permissions = append(dev.Permissions, ecstypes.DeviceCgroupPermission(p))
		}
		out.Devices = append(out.Devices, dev)
	}
	for _, t := range lp.Tmpfs {
		out.Tmpfs = append(out.Tmpfs, ecstypes.Tmpfs{
			ContainerPath: aws.String(t.ContainerPath),
			Size:          t.Size,
			MountOptions:  t.MountOptions,
		})
	}
	return out
}

func keyValuePairsToSDK(pairs []taskdef.KeyValuePair) []ecstypes.KeyValuePair {
	var out []ecstypes.KeyValuePair
	for _, kv := range pairs {
		out = append(out, ecstypes.KeyValuePair{
			Name:  aws.String(kv.Name),
			Value: aws.String(kv.Value),
		})
	}
	return out
}

func secretToSDK(s taskdef.Secret) ecstypes.Secret {
	return ecstypes.Secret{
		Name:      aws.String(s.Name),
		ValueFrom: aws.String(s.ValueFrom),
	}
}

func volumeToSDK(v taskdef.Volume) ecstypes.Volume {
	out := ecstypes.Volume{
		Name:               aws.String(v.Name),
		ConfiguredAtLaunch: v.ConfiguredAtLaunch,
	}
	if v.Host != nil {
		host := &ecstypes.HostVolumeProperties{}
		if v.Host.SourcePath != "" {
			host.SourcePath = aws.String(v.Host.SourcePath)
		}
		out.Host = host
	}
	if v.EFSVolumeConfiguration != nil {
		efs := &ecstypes.EFSVolumeConfiguration{
			FileSystemId:          aws.String(v.EFSVolumeConfiguration.FileSystemID),
			TransitEncryptionPort: v.EFSVolumeConfiguration.TransitEncryptionPort,
		}
		if v.EFSVolumeConfiguration.RootDirectory != "" {
			efs.RootDirectory = aws.String(v.EFSVolumeConfiguration.RootDirectory)
		}
		if v.EFSVolumeConfiguration.TransitEncryption != "" {
			efs.TransitEncryption = ecstypes.EFSTransitEncryption(v.EFSVolumeConfiguration.TransitEncryption)
		}
		if ac := v.EFSVolumeConfiguration.AuthorizationConfig; ac != nil {
			sdkAC := &ecstypes.EFSAuthorizationConfig{}
			if ac.AccessPointID != "" {
				sdkAC.AccessPointId = aws.String(ac.AccessPointID)
			}
			if ac.IAM != "" {
				sdkAC.Iam = ecstypes.EFSAuthorizationConfigIAM(ac.IAM)
			}
			efs.AuthorizationConfig = sdkAC
		}
		out.EfsVolumeConfiguration = efs
	}
	if v.DockerVolumeConfiguration != nil {
		dvc := &ecstypes.DockerVolumeConfiguration{
			Autoprovision: v.DockerVolumeConfiguration.Autoprovision,
			DriverOpts:    v.DockerVolumeConfiguration.DriverOpts,
			Labels:        v.DockerVolumeConfiguration.Labels,
		}
		if v.DockerVolumeConfiguration.Driver != "" {
			dvc.Driver = aws.String(v.DockerVolumeConfiguration.Driver)
		}
		if v.DockerVolumeConfiguration.Scope != "" {
			dvc.Scope = ecstypes.Scope(v.DockerVolumeConfiguration.Scope)
		}
		out.DockerVolumeConfiguration = dvc
	}
	if v.FSxWindowsFileServerVolumeConfiguration != nil {
		fsx := &ecstypes.FSxWindowsFileServerVolumeConfiguration{
			FileSystemId:  aws.String(v.FSxWindowsFileServerVolumeConfiguration.FileSystemID),
			RootDirectory: aws.String(v.FSxWindowsFileServerVolumeConfiguration.RootDirectory),
		}
		if ac := v.FSxWindowsFileServerVolumeConfiguration.AuthorizationConfig; ac != nil {
			fsx.AuthorizationConfig = &ecstypes.FSxWindowsFileServerAuthorizationConfig{
				CredentialsParameter: aws.String(ac.CredentialsParameter),
				Domain:               aws.String(ac.Domain),
			}
		}
		out.FsxWindowsFileServerVolumeConfiguration = fsx
	}
	return out
}
