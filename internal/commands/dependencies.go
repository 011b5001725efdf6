package commands

import (
	"github.com/diogo/streamchat/internal/api"
	"github.com/diogo/streamchat/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(client api.ClientInterface) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Client overrides the API client built from configuration when set.
	Client api.ClientInterface

	// TUI is the terminal user interface.
	TUI TUIInterface
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(client api.ClientInterface) error {
	return tui.RunChat(client)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI: &DefaultTUI{},
	}
}

// deps is the active dependency set; tests swap it out.
var deps = NewDependencies()

// newClient returns the injected client or builds one from configuration.
func newClient() (api.ClientInterface, error) {
	if deps.Client != nil {
		return deps.Client, nil
	}
	return api.NewClientFromConfig(loadConfig())
}
