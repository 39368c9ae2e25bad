// Package cli is the interactive terminal frontend of champs-cli: a small
// REPL over the session store, the tournament cache and the creation
// workflow. Command handlers print their own errors as notifications and
// the loop keeps running after any failure.
package cli
