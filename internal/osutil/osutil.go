// Package osutil holds platform names and process exit codes.
package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1

// Code returns the exit code as an int for os.Exit.
func (c exitCode) Code() int {
	return int(c)
}
