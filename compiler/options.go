package compiler

import "github.com/rs/zerolog"

// Option describes a function used to configure a Generator.
type Option func(*config)

type config struct {
	logger        zerolog.Logger
	registerLimit int
}

func defaultConfig() *config {
	return &config{
		logger:        zerolog.Nop(),
		registerLimit: MaxRegister,
	}
}

// WithLogger sets the logger that receives debug events about generated
// functions and modules. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithRegisterLimit sets the highest register index the generator may use.
// Programs that need a deeper register window fail with E2007. The default
// is MaxRegister, the full range of a register operand byte; a lower limit
// is useful for VMs with a smaller register file.
func WithRegisterLimit(limit uint8) Option {
	return func(cfg *config) {
		cfg.registerLimit = int(limit)
	}
}
