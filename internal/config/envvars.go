// ABOUTME: ${VAR} expansion in settings strings and THEMESWITCH_* environment overrides
// ABOUTME: Lookup is injected so tests never touch the process environment

package config

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "THEMESWITCH_"

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(string) (string, bool)

// expandEnv replaces ${VAR} with its value. Unset vars become "".
func expandEnv(s string, lookup LookupFunc) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		v, _ := lookup(envVarPattern.FindStringSubmatch(match)[1])
		return v
	})
}

// resolveEnvVars expands ${VAR} in every string field of s.
func resolveEnvVars(s *Settings, lookup LookupFunc) {
	for _, p := range []*string{
		&s.BaseURL, &s.Proxy, &s.UserAgent, &s.StateFile, &s.LogLevel,
		&s.SSH.Addr, &s.SSH.HostKeyPath,
	} {
		*p = expandEnv(*p, lookup)
	}
}

// applyEnvOverrides sets fields from THEMESWITCH_* variables.
func applyEnvOverrides(s *Settings, lookup LookupFunc) error {
	strs := map[string]*string{
		"BASE_URL":          &s.BaseURL,
		"PROXY":             &s.Proxy,
		"USER_AGENT":        &s.UserAgent,
		"STATE_FILE":        &s.StateFile,
		"LOG_LEVEL":         &s.LogLevel,
		"SSH_ADDR":          &s.SSH.Addr,
		"SSH_HOST_KEY_PATH": &s.SSH.HostKeyPath,
	}
	for name, p := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*p = v
		}
	}

	ints := map[string]*int{
		"FEATURED_LIMIT": &s.FeaturedLimit,
		"TRANSITION_MS":  &s.TransitionMS,
	}
	for name, p := range ints {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*p = n
	}

	if v, ok := lookup(EnvPrefix + "SSH_IDLE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSSH_IDLE_TIMEOUT: %w", EnvPrefix, err)
		}
		s.SSH.IdleTimeout = d
	}
	return nil
}
