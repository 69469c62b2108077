package tests

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationBinaryNameConstant       = "promptpath"
	integrationBuildTimeout             = 2 * time.Minute
	integrationEnvironmentTemplate      = "%s=%s"
	integrationGitMarkerNameConstant    = ".git"
	integrationRepositoryNameConstant   = "promptpath"
	integrationNestedDirectoryConstant  = "internal"
	integrationSubtestNameTemplate      = "%d_%s"
	integrationCommandTimeout           = 10 * time.Second
	integrationNoColorEnvironmentKey    = "NO_COLOR"
	integrationLogLevelEnvironmentKey   = "PROMPTPATH_COMMON_LOG_LEVEL"
	integrationColorEnvironmentKey      = "PROMPTPATH_PROMPT_COLOR"
	integrationHomeEnvironmentKey       = "HOME"
	integrationConfigHomeEnvironmentKey = "XDG_CONFIG_HOME"
)

func buildIntegrationBinary(testInstance *testing.T, repositoryRoot string) string {
	testInstance.Helper()

	binaryPath := filepath.Join(testInstance.TempDir(), integrationBinaryNameConstant)
	executionContext, cancel := context.WithTimeout(context.Background(), integrationBuildTimeout)
	defer cancel()

	command := exec.CommandContext(executionContext, "go", "build", "-o", binaryPath, ".")
	command.Dir = repositoryRoot
	outputBytes, buildError := command.CombinedOutput()
	require.NoError(testInstance, buildError, string(outputBytes))
	return binaryPath
}

type integrationResult struct {
	stdout string
	stderr string
}

func runBinaryIntegrationCommand(testInstance *testing.T, binaryPath string, workingDirectory string, environmentOverrides map[string]string, arguments []string) (integrationResult, error) {
	testInstance.Helper()

	executionContext, cancel := context.WithTimeout(context.Background(), integrationCommandTimeout)
	defer cancel()

	command := exec.CommandContext(executionContext, binaryPath, arguments...)
	command.Dir = workingDirectory
	command.Env = mergeEnvironment(environmentOverrides)

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr
	runError := command.Run()
	return integrationResult{stdout: stdout.String(), stderr: stderr.String()}, runError
}

func createIntegrationRepository(testInstance *testing.T) (string, string) {
	testInstance.Helper()

	containingDirectory := testInstance.TempDir()
	repositoryPath := filepath.Join(containingDirectory, integrationRepositoryNameConstant)
	nestedPath := filepath.Join(repositoryPath, integrationNestedDirectoryConstant)
	require.NoError(testInstance, os.MkdirAll(filepath.Join(repositoryPath, integrationGitMarkerNameConstant), 0o755))
	require.NoError(testInstance, os.MkdirAll(nestedPath, 0o755))
	return containingDirectory, nestedPath
}

func repositoryRootDirectory(testInstance *testing.T) string {
	testInstance.Helper()

	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	return filepath.Dir(currentWorkingDirectory)
}
