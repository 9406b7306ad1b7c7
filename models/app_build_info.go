// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// notAvailable is printed for build metadata that was not injected.
const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=...".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are replaced
// with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// IsSet reports whether a build version was injected.
func (a AppBuildInfo) IsSet() bool {
	return a.buildVersion != "" && a.buildVersion != notAvailable
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
