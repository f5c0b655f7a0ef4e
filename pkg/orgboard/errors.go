package orgboard

import "errors"

var (
	// ErrGeneratorNotConfigured indicates that no text generator was supplied,
	// typically because the API key is absent from the environment.
	ErrGeneratorNotConfigured = errors.New("orgboard: text generator is not configured")
	// ErrEmptyGeneration indicates that the text generation service returned
	// no usable content.
	ErrEmptyGeneration = errors.New("orgboard: text generation returned no content")
	// ErrContainerClosed indicates use of a disposed state container.
	ErrContainerClosed = errors.New("orgboard: container is closed")
	// ErrAlreadyInitialized indicates a repeated container Init call.
	ErrAlreadyInitialized = errors.New("orgboard: container already initialized")
	// ErrSettingsRowNotFound indicates a remote settings row lookup miss.
	ErrSettingsRowNotFound = errors.New("orgboard: settings row not found")
	// ErrMemberCompanyNotFound indicates a remote member company lookup miss.
	ErrMemberCompanyNotFound = errors.New("orgboard: member company not found")
)
