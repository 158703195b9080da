// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build metadata injected with -ldflags. Empty values
// are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) Version() string { return orNA(a.version) }
func (a AppBuildInfo) Date() string    { return orNA(a.date) }
func (a AppBuildInfo) Commit() string  { return orNA(a.commit) }

// String formats the info for `vault --version` and the about overlay.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", a.Version(), a.Commit(), a.Date())
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
