package tests

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	integrationConfiguredMessageConstant = "\"msg\":\"configuration initialized\""
	integrationFormattedMessageConstant  = "\"msg\":\"prompt path formatted\""
	integrationBlueEscapeConstant        = "\x1b[34m"
	integrationBrightWhiteEscapeConstant = "\x1b[37;1m"
	integrationResetEscapeConstant       = "\x1b[0m"
	integrationHomeReferenceConstant     = "~"
	integrationFormatCommandConstant     = "format"
)

func TestCLIIntegrationRendersPrompt(testInstance *testing.T) {
	binaryPath := buildIntegrationBinary(testInstance, repositoryRootDirectory(testInstance))
	containingDirectory, nestedPath := createIntegrationRepository(testInstance)
	isolatedConfigHome := testInstance.TempDir()

	colouredOutput := integrationBlueEscapeConstant + containingDirectory +
		integrationBrightWhiteEscapeConstant + "/" + integrationRepositoryNameConstant +
		integrationBlueEscapeConstant + "/" + integrationNestedDirectoryConstant +
		integrationResetEscapeConstant + "\n"
	plainOutput := nestedPath + "\n"

	testCases := []struct {
		name             string
		workingDirectory string
		environment      map[string]string
		arguments        []string
		expectedStdout   string
	}{
		{
			name:             "working_directory_default_color",
			workingDirectory: nestedPath,
			arguments:        []string{integrationFormatCommandConstant},
			expectedStdout:   colouredOutput,
		},
		{
			name:             "auto_color_without_terminal",
			workingDirectory: containingDirectory,
			arguments:        []string{integrationFormatCommandConstant, "--color", "auto", nestedPath},
			expectedStdout:   plainOutput,
		},
		{
			name:             "environment_disables_color",
			workingDirectory: containingDirectory,
			environment:      map[string]string{integrationColorEnvironmentKey: "never"},
			arguments:        []string{integrationFormatCommandConstant, nestedPath},
			expectedStdout:   plainOutput,
		},
		{
			name:             "trailing_whitespace_kept",
			workingDirectory: containingDirectory,
			arguments:        []string{integrationFormatCommandConstant, "--color", "never", nestedPath + " "},
			expectedStdout:   nestedPath + " \n",
		},
		{
			name:             "home_expansion",
			workingDirectory: containingDirectory,
			environment:      map[string]string{integrationHomeEnvironmentKey: containingDirectory},
			arguments:        []string{integrationFormatCommandConstant, "--color=never", filepath.Join(integrationHomeReferenceConstant, integrationRepositoryNameConstant, integrationNestedDirectoryConstant)},
			expectedStdout:   plainOutput,
		},
		{
			name:             "outside_repository",
			workingDirectory: containingDirectory,
			arguments:        []string{integrationFormatCommandConstant, containingDirectory},
			expectedStdout:   containingDirectory + "\n",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(integrationSubtestNameTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			environment := map[string]string{integrationConfigHomeEnvironmentKey: isolatedConfigHome}
			for key, value := range testCase.environment {
				environment[key] = value
			}

			result, runError := runBinaryIntegrationCommand(testInstance, binaryPath, testCase.workingDirectory, environment, testCase.arguments)
			require.NoError(testInstance, runError, result.stderr)
			require.Equal(testInstance, testCase.expectedStdout, result.stdout)
			require.Empty(testInstance, result.stderr)
		})
	}
}

func TestCLIIntegrationLogLevels(testInstance *testing.T) {
	binaryPath := buildIntegrationBinary(testInstance, repositoryRootDirectory(testInstance))
	containingDirectory, nestedPath := createIntegrationRepository(testInstance)

	testCases := []struct {
		name                 string
		environment          map[string]string
		arguments            []string
		expectedInfoVisible  bool
		expectedDebugVisible bool
	}{
		{
			name:      "default_error",
			arguments: []string{integrationFormatCommandConstant, "--color", "never", nestedPath},
		},
		{
			name:                "environment_info",
			environment:         map[string]string{integrationLogLevelEnvironmentKey: "info"},
			arguments:           []string{integrationFormatCommandConstant, "--color", "never", nestedPath},
			expectedInfoVisible: true,
		},
		{
			name:                 "flag_debug",
			environment:          map[string]string{integrationLogLevelEnvironmentKey: "error"},
			arguments:            []string{"--log-level", "debug", integrationFormatCommandConstant, "--color", "never", nestedPath},
			expectedInfoVisible:  true,
			expectedDebugVisible: true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(integrationSubtestNameTemplate, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			environment := map[string]string{integrationConfigHomeEnvironmentKey: testInstance.TempDir()}
			for key, value := range testCase.environment {
				environment[key] = value
			}

			result, runError := runBinaryIntegrationCommand(testInstance, binaryPath, containingDirectory, environment, testCase.arguments)
			require.NoError(testInstance, runError, result.stderr)
			require.Equal(testInstance, nestedPath+"\n", result.stdout)

			if testCase.expectedInfoVisible {
				require.Contains(testInstance, result.stderr, integrationConfiguredMessageConstant)
			} else {
				require.NotContains(testInstance, result.stderr, integrationConfiguredMessageConstant)
			}

			if testCase.expectedDebugVisible {
				require.Contains(testInstance, result.stderr, integrationFormattedMessageConstant)
			} else {
				require.NotContains(testInstance, result.stderr, integrationFormattedMessageConstant)
			}
		})
	}
}

func TestCLIIntegrationRejectsExtraArguments(testInstance *testing.T) {
	binaryPath := buildIntegrationBinary(testInstance, repositoryRootDirectory(testInstance))
	workingDirectory := testInstance.TempDir()

	result, runError := runBinaryIntegrationCommand(testInstance, binaryPath, workingDirectory, nil, []string{integrationFormatCommandConstant, "first", "second"})
	require.Error(testInstance, runError)

	var exitError *exec.ExitError
	require.ErrorAs(testInstance, runError, &exitError)
	require.NotEqual(testInstance, 0, exitError.ExitCode())
	require.Empty(testInstance, result.stdout)
	require.NotEmpty(testInstance, result.stderr)
}
