package opts

import (
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	ConfigPath string
	Logger     *log.Logger
	UserLogger *status.UserLogger
}
