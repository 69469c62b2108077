package prompt

import (
	"fmt"

	"github.com/temirov/promptpath/internal/pathformat"
	"github.com/temirov/promptpath/internal/repos/discovery"
	"github.com/temirov/promptpath/internal/repos/filesystem"
	pathutils "github.com/temirov/promptpath/internal/utils/path"
)

const (
	workingDirectoryErrorTemplateConstant = "unable to resolve working directory: %w"
	formatErrorTemplateConstant           = "unable to format %q: %w"
)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	FileSystem    filesystem.FileSystem
	PathSanitizer *pathutils.PromptPathSanitizer
}

// Options configure a single render.
type Options struct {
	Path          string
	SegmentStyle  pathformat.SegmentStyle
	ColourEnabled bool
}

// Result captures the outcome of a render.
type Result struct {
	Path   string
	Output string
}

// Service renders prompt paths.
type Service struct {
	fileSystem    filesystem.FileSystem
	pathSanitizer *pathutils.PromptPathSanitizer
}

// NewService constructs a Service, substituting operating system collaborators for missing dependencies.
func NewService(dependencies ServiceDependencies) *Service {
	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	pathSanitizer := dependencies.PathSanitizer
	if pathSanitizer == nil {
		pathSanitizer = pathutils.NewPromptPathSanitizer(nil)
	}
	return &Service{fileSystem: fileSystem, pathSanitizer: pathSanitizer}
}

// Render formats options.Path, or the working directory when no path is supplied.
// Formatting failures wrap the pathformat error types.
func (service *Service) Render(options Options) (Result, error) {
	candidatePath, pathProvided := service.pathSanitizer.Sanitize(options.Path)
	if !pathProvided {
		workingDirectory, workingDirectoryError := service.fileSystem.Getwd()
		if workingDirectoryError != nil {
			return Result{}, fmt.Errorf(workingDirectoryErrorTemplateConstant, workingDirectoryError)
		}
		candidatePath = workingDirectory
	}

	locator := discovery.NewEnclosingRepositoryLocator(discovery.NewFilesystemMarkerProbe(service.fileSystem))
	formatter, formatterError := pathformat.NewFormatter(locator, pathformat.Options{
		SegmentStyle:  options.SegmentStyle,
		ColourEnabled: options.ColourEnabled,
	})
	if formatterError != nil {
		return Result{Path: candidatePath}, formatterError
	}

	rendered, formatError := formatter.Format(candidatePath)
	if formatError != nil {
		return Result{Path: candidatePath}, fmt.Errorf(formatErrorTemplateConstant, candidatePath, formatError)
	}

	return Result{Path: candidatePath, Output: rendered}, nil
}
