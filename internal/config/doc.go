// Package config loads svcctl's layered configuration: built-in defaults,
// overridden by a user-level file, overridden by a project-level file. The
// configuration carries the environment-name to context-suffix mapping used
// by the switch-context flow and the namespace filter policy, so pointing
// svcctl at a new fleet is a config change, not a code change.
package config
