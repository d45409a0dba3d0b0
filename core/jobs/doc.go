// Package jobs holds the settings of the bootstrap and synchronize jobs and the
// ticker that drives the scheduled synchronize run of the server.
package jobs
