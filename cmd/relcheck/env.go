package main

import (
	"fmt"
	"strings"

	"github.com/ochairo/relcheck/internal/domain/entities"
)

// Environment variables read by the commands
const (
	envArtifactsConfig = "ARTIFACTS_CONFIG"
	envPublishConfig   = "PUBLISH_PACKAGES_CONFIG"
	envSignatureConfig = "SIGNATURE_CHECK_CONFIG"
	envChecksumConfig  = "CHECK_SUM_CONFIG"
	envAuditConfig     = "SVN_CHECK_CONFIG"
	envDistPath        = "DIST_PATH"
	envSourcePath      = "SOURCE_PATH"
	envRepoPath        = "REPO_PATH"
	envMode            = "MODE"
	envLogLevel        = "RELCHECK_LOG_LEVEL"
)

func envOr(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}

// requireEnv returns the value of key or a configuration error when unset
func (a *app) requireEnv(key string) (string, error) {
	v := strings.TrimSpace(a.getenv(key))
	if v == "" {
		return "", fmt.Errorf("%s not set: you must set the `%s` environment variable to run this command", key, key)
	}
	return v, nil
}

// workDir resolves the directory to operate on: --dir, then pathKey, then "."
func (a *app) workDir(pathKey string) string {
	if a.dir != "" {
		return a.dir
	}
	if pathKey != "" {
		return envOr(a.getenv, pathKey, ".")
	}
	return "."
}

func (a *app) mode() (entities.Mode, error) {
	mode := entities.Mode(strings.ToUpper(envOr(a.getenv, envMode, string(entities.ModeVerify))))
	switch mode {
	case entities.ModeVerify, entities.ModeRelease:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid %s %q (want %s or %s)", envMode, mode, entities.ModeVerify, entities.ModeRelease)
	}
}

// printSelection prints the closing message for the selected mode and the packages
func (a *app) printSelection(mode entities.Mode, packages []string) {
	if mode == entities.ModeVerify {
		a.printf("ℹ️  To publish these packages to PyPI, set the mode=RELEASE in workflow and run\n")
	} else {
		a.printf("📦 Following packages will be published to PyPI\n")
	}
	for _, p := range packages {
		a.printf("  %s\n", p)
	}
}
