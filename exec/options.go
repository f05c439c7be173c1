package exec

// Option configures a Command.
type Option func(*Command)

// WithEnv adds environment variables to every run. Later calls override
// earlier ones for the same key.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.env[k] = v
		}
	}
}

// WithInheritEnv passes the parent process environment to every run.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.inheritEnv = true
	}
}

// WithDisableColors sets NO_COLOR, TERM=dumb and the related variables so
// that output can be parsed.
func WithDisableColors() Option {
	return func(c *Command) {
		c.disableColors = true
	}
}
