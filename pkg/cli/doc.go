// Package cli implements the framesight command tree: observe (drive a
// synthetic frame loop through the pipeline), capture (one-shot
// snapshot), and policy (show the level table).
package cli
