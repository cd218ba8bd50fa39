package exec

// outputMode selects how the child's output streams are handled.
type outputMode int

const (
	// modeCapture captures output into the Result only.
	modeCapture outputMode = iota
	// modePassthrough captures output and copies it to the configured writers.
	modePassthrough
	// modeAttach hands the configured streams to the child as-is.
	modeAttach
)

// config holds the configuration for command execution.
// It distinguishes between global settings (set at creation time) and local
// settings (set per-execution).
type config struct {
	globalEnv        map[string]string
	globalDir        string
	globalInheritEnv bool
	globalMode       outputMode

	localEnv        map[string]string
	localDir        string
	localInheritEnv *bool
	localMode       *outputMode
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone creates a deep copy of the configuration.
func (c *config) clone() *config {
	clone := &config{
		globalEnv:        make(map[string]string, len(c.globalEnv)),
		globalDir:        c.globalDir,
		globalInheritEnv: c.globalInheritEnv,
		globalMode:       c.globalMode,
		localEnv:         make(map[string]string, len(c.localEnv)),
		localDir:         c.localDir,
	}

	for k, v := range c.globalEnv {
		clone.globalEnv[k] = v
	}
	for k, v := range c.localEnv {
		clone.localEnv[k] = v
	}

	if c.localInheritEnv != nil {
		val := *c.localInheritEnv
		clone.localInheritEnv = &val
	}
	if c.localMode != nil {
		val := *c.localMode
		clone.localMode = &val
	}

	return clone
}

// effectiveEnv merges global and local environment variables.
// Local settings override global settings.
func (c *config) effectiveEnv() map[string]string {
	env := make(map[string]string, len(c.globalEnv)+len(c.localEnv))
	for k, v := range c.globalEnv {
		env[k] = v
	}
	for k, v := range c.localEnv {
		env[k] = v
	}
	return env
}

func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveInheritEnv() bool {
	if c.localInheritEnv != nil {
		return *c.localInheritEnv
	}
	return c.globalInheritEnv
}

func (c *config) effectiveMode() outputMode {
	if c.localMode != nil {
		return *c.localMode
	}
	return c.globalMode
}

// resetLocal resets all local settings.
// It is called after each Run so local settings don't carry over.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
	c.localMode = nil
}
